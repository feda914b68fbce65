package httputil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/eventbudget/backend/internal/ledger"
	"github.com/shopspring/decimal"
)

// Amount is a decimal amount in a request body.
//
// It accepts JSON numbers and strings containing a number. Anything
// else fails with ledger.ErrInvalidAmount when the body is bound.
type Amount struct {
	decimal.Decimal
	set bool
}

// NewAmount returns an Amount that is set to d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d, set: true}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "null" {
		return fmt.Errorf("%w: the amount must not be null", ledger.ErrInvalidAmount)
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return fmt.Errorf("%w: %s", ledger.ErrInvalidAmount, s)
		}
		s = str
	}

	d, err := ledger.ParseAmount(s)
	if err != nil {
		return err
	}

	a.Decimal = d
	a.set = true
	return nil
}

// Value returns the amount. If the amount was not part of the request,
// the error wraps ledger.ErrInvalidAmount.
func (a Amount) Value() (decimal.Decimal, error) {
	if !a.set {
		return decimal.Zero, fmt.Errorf("%w: the amount must be set", ledger.ErrInvalidAmount)
	}

	return a.Decimal, nil
}

// OptionalID is a resource ID that may be empty.
//
// null, an empty string and 0 are all the empty ID. Numbers and strings
// containing a number are accepted.
type OptionalID uint

func (o *OptionalID) UnmarshalJSON(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "null" {
		*o = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return ErrInvalidID
		}
		s = strings.TrimSpace(str)
	}

	if s == "" {
		*o = 0
		return nil
	}

	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return ErrInvalidID
	}

	*o = OptionalID(id)
	return nil
}

// Pointer returns nil for the empty ID and a pointer to the ID otherwise.
func (o OptionalID) Pointer() *uint {
	if o == 0 {
		return nil
	}

	id := uint(o)
	return &id
}
