package booking

import (
	"errors"
	"fmt"
)

// Error codes for the booking path. NotFound and InvalidInterval are
// permanent caller errors; Conflict is the expected lost-race signal and is
// retryable after re-fetching slots.
const (
	CodeNotFound        = "notFound"
	CodeInvalidInterval = "invalidInterval"
	CodeConflict        = "conflict"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewInvalidIntervalError(msg string) error {
	return &BookingError{Code: CodeInvalidInterval, Message: msg}
}

func NewConflictError(msg string) error {
	return &BookingError{Code: CodeConflict, Message: msg}
}

func hasCode(err error, code string) bool {
	var be *BookingError
	return errors.As(err, &be) && be.Code == code
}

// IsNotFound reports whether err is a missing-resource error.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsInvalidInterval reports whether err is a malformed-interval error.
func IsInvalidInterval(err error) bool { return hasCode(err, CodeInvalidInterval) }

// IsConflict reports whether err signals a lost booking race.
func IsConflict(err error) bool { return hasCode(err, CodeConflict) }
