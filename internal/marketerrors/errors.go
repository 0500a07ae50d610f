package marketerrors

import (
	"errors"
	"fmt"
)

// Store-level errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrItemNotFound = errors.New("item not found")
)

// Business logic errors
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError rejects a malformed or missing input field. Reason is the
// user-facing message naming the field or rule.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidation builds a ValidationError with the given message.
func NewValidation(reason string) error {
	return &ValidationError{Reason: reason}
}

// BidTooLowError rejects a bid below a listing's declared minimum.
type BidTooLowError struct {
	Minimum float64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("Bid must be at least %g", e.Minimum)
}
