// Package domain provides the shared kernel's domain primitives.
//
// Equality kernel:
//
//   - Entity: equality by runtime type and non-zero identifier
//     (EntityEquals, SameEntity, EntityHash).
//   - ValueObject: structural equality supplied by the concrete type
//     (ValueEquals, SameValue, ValueHash).
//
// Bounded integers: PositiveInteger, and the LimitedPositiveInteger types
// Hours (0..24), Minutes (0..59) and MinutesPastAnHour (0..59).
//
// Duration is an (Hours, MinutesPastAnHour) pair. Add and Subtract pick an
// AdditionStrategy or SubtractionStrategy per call and carry or borrow an
// hour when the minute component leaves [0, 59]. Constructing any component
// outside its range is an error; nothing is clamped.
//
// Example usage:
//
//	a := domain.MustDuration(1, 59)
//	b := domain.MustDuration(1, 2)
//	sum, err := a.Add(b) // 3h01m
//
//	diff, err := domain.MustDuration(2, 10).Subtract(domain.MustDuration(1, 12), domain.Borrow) // 0h58m
package domain
