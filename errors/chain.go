package errors

import "errors"

// Wrap wraps an error with additional context, preserving kind and key when
// err is already an *Error.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return &Error{
			Kind:     e.Kind,
			Key:      e.Key,
			Argument: e.Argument,
			Message:  message,
			cause:    err,
		}
	}
	return InvalidOperation(message).WithCause(err)
}

// RootCause traverses the error chain to find the root cause.
func RootCause(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

// Is checks if any error in the chain matches the target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in the chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
