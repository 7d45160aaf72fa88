package errors

import "fmt"

// New creates a new Error with the given kind and key.
func New(kind Kind, key Key, argument string) *Error {
	return &Error{Kind: kind, Key: key, Argument: argument}
}

// ArgumentNull creates an error for a nil argument.
func ArgumentNull(argument string) *Error {
	return New(KindArgumentNull, KeyArgumentIsNull, argument)
}

// ArgumentDefault creates an error for an argument holding its zero value.
func ArgumentDefault(argument string) *Error {
	return New(KindArgumentNull, KeyArgumentIsDefault, argument)
}

// OutOfRange creates an out-of-range error.
func OutOfRange(key Key, argument string, value, min, max int) *Error {
	e := New(KindOutOfRange, key, argument)
	e.Message = fmt.Sprintf("%d is outside [%d, %d]", value, min, max)
	return e
}

// InvalidOperation creates an invalid-operation error.
func InvalidOperation(message string) *Error {
	return &Error{Kind: KindInvalidOperation, Message: message}
}

// InvalidCast creates an invalid-cast error.
func InvalidCast(message string) *Error {
	return &Error{Kind: KindInvalidCast, Message: message}
}
