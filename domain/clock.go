package domain

import (
	"strconv"

	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/functional"
)

// Upper boundaries of the clock quantities.
const (
	HoursUpperBoundary             = 24
	MinutesUpperBoundary           = 59
	MinutesPastAnHourUpperBoundary = 59
)

// Hours is a whole number of hours in [0, 24].
type Hours struct {
	value int
}

// NewHours creates Hours, failing with an out-of-range error outside [0, 24].
func NewHours(value int) (Hours, error) {
	if err := checkLimited(value, HoursUpperBoundary, "hours"); err != nil {
		return Hours{}, err
	}
	return Hours{value: value}, nil
}

// MustHours creates Hours, panicking on invalid input.
func MustHours(value int) Hours {
	return errors.Must(NewHours(value))
}

// ParseHours is the validating factory for Hours.
func ParseHours(value int) functional.Result[Hours] {
	return functional.FromError(NewHours(value))
}

func (h Hours) Value() int                  { return h.value }
func (h Hours) UpperBoundary() int          { return HoursUpperBoundary }
func (h Hours) Equal(other Hours) bool      { return h.value == other.value }
func (h Hours) EqualsCore(other Hours) bool { return h.value == other.value }
func (h Hours) HashCore() uint64            { return HashOf("Hours", h.value) }
func (h Hours) String() string              { return strconv.Itoa(h.value) + "h" }

// Minutes is a whole number of minutes in [0, 59].
type Minutes struct {
	value int
}

// NewMinutes creates Minutes, failing with an out-of-range error outside
// [0, 59].
func NewMinutes(value int) (Minutes, error) {
	if err := checkLimited(value, MinutesUpperBoundary, "minutes"); err != nil {
		return Minutes{}, err
	}
	return Minutes{value: value}, nil
}

// MustMinutes creates Minutes, panicking on invalid input.
func MustMinutes(value int) Minutes {
	return errors.Must(NewMinutes(value))
}

// ParseMinutes is the validating factory for Minutes.
func ParseMinutes(value int) functional.Result[Minutes] {
	return functional.FromError(NewMinutes(value))
}

func (m Minutes) Value() int                    { return m.value }
func (m Minutes) UpperBoundary() int            { return MinutesUpperBoundary }
func (m Minutes) Equal(other Minutes) bool      { return m.value == other.value }
func (m Minutes) EqualsCore(other Minutes) bool { return m.value == other.value }
func (m Minutes) HashCore() uint64              { return HashOf("Minutes", m.value) }
func (m Minutes) String() string                { return strconv.Itoa(m.value) + "m" }

// MinutesPastAnHour is the minute component of a clock reading, in [0, 59].
type MinutesPastAnHour struct {
	value int
}

// NewMinutesPastAnHour creates MinutesPastAnHour, failing with an
// out-of-range error outside [0, 59].
func NewMinutesPastAnHour(value int) (MinutesPastAnHour, error) {
	if err := checkLimited(value, MinutesPastAnHourUpperBoundary, "minutesPastAnHour"); err != nil {
		return MinutesPastAnHour{}, err
	}
	return MinutesPastAnHour{value: value}, nil
}

// MustMinutesPastAnHour creates MinutesPastAnHour, panicking on invalid input.
func MustMinutesPastAnHour(value int) MinutesPastAnHour {
	return errors.Must(NewMinutesPastAnHour(value))
}

// ParseMinutesPastAnHour is the validating factory for MinutesPastAnHour.
func ParseMinutesPastAnHour(value int) functional.Result[MinutesPastAnHour] {
	return functional.FromError(NewMinutesPastAnHour(value))
}

func (m MinutesPastAnHour) Value() int         { return m.value }
func (m MinutesPastAnHour) UpperBoundary() int { return MinutesPastAnHourUpperBoundary }

// CanAdd reports whether other can be added without passing 59.
func (m MinutesPastAnHour) CanAdd(other MinutesPastAnHour) bool {
	return m.value+other.value <= MinutesPastAnHourUpperBoundary
}

// CanSubtract reports whether other can be subtracted without going below 0.
func (m MinutesPastAnHour) CanSubtract(other MinutesPastAnHour) bool {
	return m.value >= other.value
}

// Add returns the sum, or a CalculatedValueIsGreaterThanMax failure.
func (m MinutesPastAnHour) Add(other MinutesPastAnHour) functional.Result[MinutesPastAnHour] {
	if !m.CanAdd(other) {
		return functional.FailKey[MinutesPastAnHour](errors.KeyCalculatedValueIsGreaterThanMax)
	}
	return functional.Ok(MinutesPastAnHour{value: m.value + other.value})
}

// Subtract returns the difference, or a CalculatedValueIsNegative failure.
func (m MinutesPastAnHour) Subtract(other MinutesPastAnHour) functional.Result[MinutesPastAnHour] {
	if !m.CanSubtract(other) {
		return functional.FailKey[MinutesPastAnHour](errors.KeyCalculatedValueIsNegative)
	}
	return functional.Ok(MinutesPastAnHour{value: m.value - other.value})
}

func (m MinutesPastAnHour) Equal(other MinutesPastAnHour) bool      { return m.value == other.value }
func (m MinutesPastAnHour) EqualsCore(other MinutesPastAnHour) bool { return m.value == other.value }
func (m MinutesPastAnHour) HashCore() uint64                        { return HashOf("MinutesPastAnHour", m.value) }
func (m MinutesPastAnHour) String() string                          { return strconv.Itoa(m.value) + "m" }
