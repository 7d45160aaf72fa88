// Package errors provides the categorized error types of the shared kernel.
//
// Two channels exist. Expected validation failures travel inside a
// functional.Result as a stable Key. Contract violations (nil where a value
// is required, out-of-range construction, misuse of an accessor) are reported
// as *Error values carrying a Kind, either returned or panicked.
package errors

import (
	"errors"
	"fmt"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// Kind classifies a contract violation.
type Kind string

// Contract violation kinds.
const (
	KindArgumentNull     Kind = "ARGUMENT_NULL"
	KindOutOfRange       Kind = "OUT_OF_RANGE"
	KindInvalidOperation Kind = "INVALID_OPERATION"
	KindInvalidCast      Kind = "INVALID_CAST"
)

// Error implements the error interface so a bare Kind can be used as an
// errors.Is target.
func (k Kind) Error() string {
	return string(k)
}

// Error is the kernel error type.
type Error struct {
	Kind     Kind   `json:"kind"`
	Key      Key    `json:"key,omitempty"`
	Argument string `json:"argument,omitempty"`
	Message  string `json:"message,omitempty"`
	cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Key != "" {
		msg += " (" + string(e.Key) + ")"
	}
	if e.Argument != "" {
		msg += ": " + e.Argument
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// Is matches another *Error of the same kind (and key, when the target sets
// one) or a bare Kind sentinel.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		if t.Key != "" && t.Key != e.Key {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// KindOf returns the Kind of the first *Error in the chain, or "" when there
// is none.
func KindOf(err error) Kind {
	if e, ok := AsType[*Error](err); ok {
		return e.Kind
	}
	return ""
}

// KeyOf returns the Key of the first *Error in the chain, or "" when there
// is none.
func KeyOf(err error) Key {
	if e, ok := AsType[*Error](err); ok {
		return e.Key
	}
	return ""
}
