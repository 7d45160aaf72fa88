package functional

import (
	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/guard"
)

// NotNull holds a value guaranteed not to be nil.
type NotNull[T any] struct {
	value T
}

// NewNotNull wraps value, failing with an argument-null error when value is
// nil.
func NewNotNull[T any](value T) (NotNull[T], error) {
	if guard.IsNil(value) {
		return NotNull[T]{}, errors.ArgumentNull("value")
	}
	return NotNull[T]{value: value}, nil
}

// MustNotNull wraps value, panicking when it is nil.
func MustNotNull[T any](value T) NotNull[T] {
	return errors.Must(NewNotNull(value))
}

// Value returns the wrapped value.
func (n NotNull[T]) Value() T {
	return n.value
}

// Equal compares the wrapped value with other, which may be a NotNull[T] or
// a T. A nil other is never equal.
func (n NotNull[T]) Equal(other any) bool {
	if guard.IsNil(other) {
		return false
	}
	switch o := other.(type) {
	case NotNull[T]:
		return valuesEqual(n.value, o.value)
	case T:
		return valuesEqual(n.value, o)
	}
	return false
}

// String delegates to the wrapped value.
func (n NotNull[T]) String() string {
	return stringOf(n.value)
}
