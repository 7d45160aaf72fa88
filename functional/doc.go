// Package functional provides the kernel's amplifier types.
//
//   - Result[T]: a success carrying a non-nil value, or a failure carrying a
//     non-empty error message.
//   - Outcome: the value-less form of Result.
//   - Maybe[T]: zero or one value; the zero Maybe is empty.
//   - NotNull[T]: a value guaranteed not to be nil.
//
// Misusing an accessor (reading Value of a failure, Err of a success, Value
// of an empty Maybe) panics with an *errors.Error of kind
// KindInvalidOperation. These are programming errors, not expected states.
package functional
