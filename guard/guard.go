// Package guard provides fail-fast argument checks run at the start of every
// constructor and factory in the kernel.
//
// Each check returns nil on success or an *errors.Error describing the
// violation. Checks never have side effects.
package guard

import (
	"reflect"
	"strings"

	"github.com/authcorp/sharedkernel/errors"
)

// Integer is the set of integer types NotNegative accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// NotNil rejects nil values, including typed nil pointers, maps, slices,
// channels and funcs held in an interface.
func NotNil(value any, argument string) error {
	if IsNil(value) {
		return errors.ArgumentNull(argument)
	}
	return nil
}

// NotDefault rejects the zero value of T.
func NotDefault[T comparable](value T, argument string) error {
	var zero T
	if value == zero {
		return errors.ArgumentDefault(argument)
	}
	return nil
}

// NotNullOrEmpty rejects the empty string.
func NotNullOrEmpty(value, argument string) error {
	if value == "" {
		return errors.New(errors.KindArgumentNull, errors.KeyArgumentIsNotNullOrEmpty, argument)
	}
	return nil
}

// NotNullEmptyOrWhiteSpace rejects strings that are empty after trimming.
func NotNullEmptyOrWhiteSpace(value, argument string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(errors.KindArgumentNull, errors.KeyArgumentIsNullEmptyOrWhiteSpace, argument)
	}
	return nil
}

// NotNegative rejects values below zero.
func NotNegative[N Integer](value N, argument string) error {
	if value < 0 {
		return errors.OutOfRange(errors.KeyIsLessThanMinimum, argument, int(value), 0, int(^uint(0)>>1))
	}
	return nil
}

// NotInvalidOperation fails when condition is true.
func NotInvalidOperation(condition bool, message string) error {
	if condition {
		return errors.InvalidOperation(message)
	}
	return nil
}

// NotInvalidOperationFunc fails when predicate reports true.
func NotInvalidOperationFunc(predicate func() bool, message string) error {
	return NotInvalidOperation(predicate(), message)
}

// NotInvalidCast fails when condition is true.
func NotInvalidCast(condition bool, message string) error {
	if condition {
		return errors.InvalidCast(message)
	}
	return nil
}

// NotInvalidCastFunc fails when predicate reports true. The message is only
// built on failure.
func NotInvalidCastFunc(predicate func() bool, message func() string) error {
	if predicate() {
		return errors.InvalidCast(message())
	}
	return nil
}

// True fails with an invalid-operation error unless predicate reports true.
func True(predicate func() bool, message string) error {
	return NotInvalidOperation(!predicate(), message)
}

// False fails with an invalid-operation error unless predicate reports false.
func False(predicate func() bool, message string) error {
	return NotInvalidOperation(predicate(), message)
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Must panics with err when it is not nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// IsNil reports whether value is nil or an interface wrapping a nil
// reference.
func IsNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
