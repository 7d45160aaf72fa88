package domain

import (
	"reflect"

	"github.com/authcorp/sharedkernel/guard"
)

// ValueObject is implemented by immutable types compared by their fields.
// EqualsCore is only called with a value of the exact same concrete type.
type ValueObject[T any] interface {
	EqualsCore(other T) bool
	HashCore() uint64
}

// ValueEquals reports whether b has exactly the concrete type of a and is
// structurally equal to it. A nil on either side is not equal.
func ValueEquals[T ValueObject[T]](a T, b any) bool {
	if guard.IsNil(a) || guard.IsNil(b) {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.EqualsCore(b.(T))
}

// SameValue is the == operator for value objects: two nils are equal, exactly
// one nil is not, anything else defers to ValueEquals.
func SameValue[T ValueObject[T]](a, b T) bool {
	aNil, bNil := guard.IsNil(a), guard.IsNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	return ValueEquals(a, b)
}

// DifferentValue is the != operator for value objects.
func DifferentValue[T ValueObject[T]](a, b T) bool {
	return !SameValue(a, b)
}

// ValueHash returns the structural hash of v, zero for nil.
func ValueHash[T ValueObject[T]](v T) uint64 {
	if guard.IsNil(v) {
		return 0
	}
	return v.HashCore()
}
