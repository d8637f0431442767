// Package apperr defines the error type shared by the gesture packages
package apperr

import (
	"fmt"
)

// Error is an application error. Package-level values act as templates: Fmt
// and Wrap derive new errors that still match the template with errors.Is.
type Error struct {
	Err     error
	base    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

// Unwrap returns the wrapped error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is this error or the template it was derived
// from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t == e || t == e.root()
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// Fmt formats the error message with the provided values.
func (e *Error) Fmt(v ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, v...),
		Err:     e.Err,
		base:    e.root(),
	}
}

// Wrap attaches an underlying cause to the error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
		base:    e.root(),
	}
}
