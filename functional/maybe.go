package functional

import (
	"fmt"
	"reflect"

	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/guard"
)

// Maybe represents a value that may legitimately be absent.
// The zero Maybe is empty.
type Maybe[T any] struct {
	value   T
	present bool
}

// Wrap creates a Maybe that holds value unless value is nil.
func Wrap[T any](value T) Maybe[T] {
	if guard.IsNil(value) {
		return Maybe[T]{}
	}
	return Maybe[T]{value: value, present: true}
}

// FromPtr creates a Maybe from a pointer, dereferencing it when non-nil.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return Maybe[T]{}
	}
	return Wrap(*ptr)
}

// Empty creates an empty Maybe.
func Empty[T any]() Maybe[T] {
	return Maybe[T]{}
}

// HasValue returns true if the Maybe contains a value.
func (m Maybe[T]) HasValue() bool {
	return m.present
}

// HasNoValue returns true if the Maybe is empty.
func (m Maybe[T]) HasNoValue() bool {
	return !m.present
}

// Value returns the contained value or panics if empty.
func (m Maybe[T]) Value() T {
	if !m.present {
		panic(errors.InvalidOperation("no value in an empty Maybe"))
	}
	return m.value
}

// ValueOr returns the contained value or a default.
func (m Maybe[T]) ValueOr(defaultValue T) T {
	if m.present {
		return m.value
	}
	return defaultValue
}

// ToResult converts the Maybe to a Result failing with err when empty.
func (m Maybe[T]) ToResult(err string) Result[T] {
	if m.present {
		return Ok(m.value)
	}
	return Fail[T](err)
}

// Equal reports whether both Maybes are empty or both hold equal values.
func (m Maybe[T]) Equal(other Maybe[T]) bool {
	if m.present != other.present {
		return false
	}
	if !m.present {
		return true
	}
	return valuesEqual(m.value, other.value)
}

// String renders the Maybe with the wrapped type name.
func (m Maybe[T]) String() string {
	name := typeName[T]()
	if !m.present {
		return fmt.Sprintf("Maybe<%s>: no value", name)
	}
	return fmt.Sprintf("Maybe<%s>: %s", name, stringOf(m.value))
}

// MapMaybe applies fn to the contained value if present.
func MapMaybe[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.present {
		return Wrap(fn(m.value))
	}
	return Maybe[U]{}
}

// equaler is implemented by types that define their own equality.
type equaler[T any] interface {
	Equal(T) bool
}

// valuesEqual compares with the type's own Equal method when it has one.
func valuesEqual[T any](a, b T) bool {
	if guard.IsNil(a) && guard.IsNil(b) {
		return true
	}
	if e, ok := any(a).(equaler[T]); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

func stringOf(v any) string {
	if s, ok := v.(fmt.Stringer); ok && !guard.IsNil(v) {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
