package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures so the HTTP boundary and tests can react
// to the failure class instead of matching on message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindRetrieval
	KindGeneration
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRetrieval:
		return "retrieval"
	case KindGeneration:
		return "generation"
	default:
		return "internal"
	}
}

// Error carries a failure kind, a caller-facing message and the wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Retrieval(err error) *Error {
	return &Error{Kind: KindRetrieval, Message: "retrieval failed", Err: err}
}

func Generation(err error) *Error {
	return &Error{Kind: KindGeneration, Message: "generation failed", Err: err}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the failure kind from an error chain (KindInternal when the
// error is not an *Error).
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
