package domain

import (
	"errors"
	"fmt"
)

var (
	// Common domain errors
	ErrAmountTooSmall    = errors.New("amount below minimum chargeable value")
	ErrMissingFields     = errors.New("missing required fields")
	ErrSignatureMismatch = errors.New("signature mismatch")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// UpstreamError carries a non-2xx answer from the payment provider so the
// handler can forward the provider's own status code to the client.
type UpstreamError struct {
	StatusCode  int
	Description string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Description)
}
