package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a numeric field cannot be parsed.
var ErrInvalidAmount = errors.New("the amount is not a valid number")

// ParseAmount parses a decimal amount. Surrounding whitespace is ignored,
// an empty string is not a valid amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: the amount must not be empty", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: '%s'", ErrInvalidAmount, s)
	}

	return d, nil
}
