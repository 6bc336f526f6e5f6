package ledger

import (
	"errors"
	"fmt"
)

// Code classifies a ledger error.
type Code string

const (
	CodeValidation    Code = "VALIDATION"
	CodeNotFound      Code = "NOT_FOUND"
	CodeInvalidState  Code = "INVALID_STATE"
	CodeOverpayment   Code = "OVERPAYMENT"
	CodeMissingRating Code = "MISSING_RATING"
	CodeConcurrency   Code = "CONCURRENCY"
)

// Error is a ledger failure carrying a machine-readable code and a message that is safe to show to a user.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error with the same code, so errors.Is(err, ErrOverpayment) works on wrapped values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Retryable reports whether the caller may repeat the operation unchanged.
func (e *Error) Retryable() bool {
	return e.Code == CodeConcurrency
}

// Sentinels for errors.Is.
var (
	ErrValidation    = &Error{Code: CodeValidation, Message: "validation failed"}
	ErrNotFound      = &Error{Code: CodeNotFound, Message: "not found"}
	ErrInvalidState  = &Error{Code: CodeInvalidState, Message: "invalid state"}
	ErrOverpayment   = &Error{Code: CodeOverpayment, Message: "payment exceeds remaining balance"}
	ErrMissingRating = &Error{Code: CodeMissingRating, Message: "a rating is required to close a debt"}
	ErrConcurrency   = &Error{Code: CodeConcurrency, Message: "concurrent modification, retry"}
)

func ValidationError(format string, args ...any) error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(kind, id string) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("%s %s not found", kind, id)}
}

func InvalidStateError(format string, args ...any) error {
	return &Error{Code: CodeInvalidState, Message: fmt.Sprintf(format, args...)}
}

func OverpaymentError(paid, remaining int64) error {
	return &Error{
		Code:    CodeOverpayment,
		Message: fmt.Sprintf("payment of %s exceeds remaining balance of %s", FormatMinor(paid), FormatMinor(remaining)),
	}
}

func MissingRatingError() error {
	return &Error{Code: CodeMissingRating, Message: ErrMissingRating.Message}
}

func ConcurrencyError(format string, args ...any) error {
	return &Error{Code: CodeConcurrency, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) Code {
	var le *Error
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}

// FormatMinor renders minor units as a two-decimal amount.
func FormatMinor(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
