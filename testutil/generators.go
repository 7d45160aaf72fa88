// Package testutil provides rapid generators for property-based tests of
// kernel types.
package testutil

import (
	"pgregory.net/rapid"

	"github.com/authcorp/sharedkernel/domain"
	"github.com/authcorp/sharedkernel/functional"
)

// HoursGen generates valid Hours in [0, max].
func HoursGen(max int) *rapid.Generator[domain.Hours] {
	return rapid.Custom(func(t *rapid.T) domain.Hours {
		return domain.MustHours(rapid.IntRange(0, max).Draw(t, "hours"))
	})
}

// MinutesPastAnHourGen generates valid MinutesPastAnHour.
func MinutesPastAnHourGen() *rapid.Generator[domain.MinutesPastAnHour] {
	return rapid.Custom(func(t *rapid.T) domain.MinutesPastAnHour {
		return domain.MustMinutesPastAnHour(rapid.IntRange(0, domain.MinutesPastAnHourUpperBoundary).Draw(t, "minutes"))
	})
}

// DurationGen generates Durations whose hour component is at most maxHours.
func DurationGen(maxHours int) *rapid.Generator[domain.Duration] {
	return rapid.Custom(func(t *rapid.T) domain.Duration {
		return domain.NewDuration(HoursGen(maxHours).Draw(t, "h"), MinutesPastAnHourGen().Draw(t, "m"))
	})
}

// AddablePairGen generates two Durations whose sum stays within 24 hours.
func AddablePairGen() *rapid.Generator[[2]domain.Duration] {
	return rapid.Custom(func(t *rapid.T) [2]domain.Duration {
		a := DurationGen(domain.HoursUpperBoundary).Draw(t, "a")
		// Leave room for a carried hour.
		room := domain.HoursUpperBoundary - a.Hours().Value() - 1
		if room < 0 {
			return [2]domain.Duration{a, domain.ZeroDuration()}
		}
		b := DurationGen(room).Draw(t, "b")
		return [2]domain.Duration{a, b}
	})
}

// OrderedPairGen generates two Durations with the first not smaller than
// the second.
func OrderedPairGen() *rapid.Generator[[2]domain.Duration] {
	return rapid.Custom(func(t *rapid.T) [2]domain.Duration {
		a := DurationGen(domain.HoursUpperBoundary).Draw(t, "a")
		b := DurationGen(domain.HoursUpperBoundary).Draw(t, "b")
		if a.Compare(b) < 0 {
			a, b = b, a
		}
		return [2]domain.Duration{a, b}
	})
}

// NameGen generates valid Name input strings.
func NameGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,40}[A-Za-z]`)
}

// MaybeGen generates Maybe[T] values.
func MaybeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Maybe[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Maybe[T] {
		if rapid.Bool().Draw(t, "hasValue") {
			return functional.Wrap(valueGen.Draw(t, "value"))
		}
		return functional.Empty[T]()
	})
}

// ResultGen generates Result[T] values with messages from ErrorKeyGen.
func ResultGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Result[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Result[T] {
		if rapid.Bool().Draw(t, "isOk") {
			return functional.Ok(valueGen.Draw(t, "value"))
		}
		return functional.Fail[T](ErrorKeyGen().Draw(t, "err"))
	})
}

// ErrorKeyGen generates non-blank error messages.
func ErrorKeyGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Z][A-Za-z]{2,30}`)
}
