package functional

import (
	"iter"

	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/guard"
)

// Result represents the outcome of an operation that may fail.
// It contains either a success value or an error message.
type Result[T any] struct {
	value T
	err   string
	ok    bool
}

// Ok creates a successful Result. It panics when value is nil.
func Ok[T any](value T) Result[T] {
	if guard.IsNil(value) {
		panic(errors.ArgumentNull("value"))
	}
	return Result[T]{value: value, ok: true}
}

// Fail creates a failed Result. It panics when err is blank.
func Fail[T any](err string) Result[T] {
	requireMessage(err)
	return Result[T]{err: err}
}

// FailKey creates a failed Result whose message is a stable error key.
func FailKey[T any](key errors.Key) Result[T] {
	return Fail[T](key.String())
}

// FromError creates a Result from a (value, error) pair. A non-nil error
// becomes a failure carrying its key when it has one, else its message.
func FromError[T any](value T, err error) Result[T] {
	if err != nil {
		if key := errors.KeyOf(err); key != "" {
			return FailKey[T](key)
		}
		return Fail[T](err.Error())
	}
	return Ok(value)
}

// IsSuccess returns true if the Result is successful.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure returns true if the Result failed.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the success value or panics on failure.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(errors.InvalidOperation("no value for a failed result: " + r.err))
	}
	return r.value
}

// Err returns the error message or panics on success.
func (r Result[T]) Err() string {
	if r.ok {
		panic(errors.InvalidOperation("no error message for a successful result"))
	}
	return r.err
}

// ValueOr returns the success value or a default.
func (r Result[T]) ValueOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// OnFailure runs fn when the Result failed.
func (r Result[T]) OnFailure(fn func()) Result[T] {
	if !r.ok {
		fn()
	}
	return r
}

// OnFailureWith runs fn with the error message when the Result failed.
func (r Result[T]) OnFailureWith(fn func(string)) Result[T] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// Outcome drops the value, keeping success state and error message.
func (r Result[T]) Outcome() Outcome {
	if r.ok {
		return Success()
	}
	return Outcome{err: r.err, failed: true}
}

// Match executes one of two functions based on Result state.
func (r Result[T]) Match(onOk func(T), onFail func(string)) {
	if r.ok {
		onOk(r.value)
	} else {
		onFail(r.err)
	}
}

// ToMaybe converts Result to Maybe, discarding the error.
func (r Result[T]) ToMaybe() Maybe[T] {
	if r.ok {
		return Wrap(r.value)
	}
	return Empty[T]()
}

// All returns an iterator over the Result (0 or 1 element).
func (r Result[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// String returns "Ok(<value>)" or "Fail(<err>)".
func (r Result[T]) String() string {
	if r.ok {
		return "Ok(" + stringOf(r.value) + ")"
	}
	return "Fail(" + r.err + ")"
}

// MapResult applies a transformation function to a successful Result.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return Result[U]{err: r.err}
}

// Bind applies a function that returns a Result.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.ok {
		return fn(r.value)
	}
	return Result[U]{err: r.err}
}

// MatchResult executes one of two functions and returns the result.
func MatchResult[T, U any](r Result[T], onOk func(T) U, onFail func(string) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onFail(r.err)
}
