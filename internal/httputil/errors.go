package httputil

import "errors"

// Errors for requests that cannot be mapped to a ledger operation.
var (
	ErrInvalidBody      = errors.New("the request body is not valid JSON for this event budget endpoint. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidID        = errors.New("event and expenditure IDs must be positive integers")
)
