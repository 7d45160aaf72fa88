package domain

import (
	"fmt"
	"strings"

	"github.com/authcorp/sharedkernel/errors"
)

// AdditionStrategy is one of the interchangeable algorithms for adding two
// Durations.
type AdditionStrategy uint8

const (
	// AddBasic sums both components; valid when the minutes fit in an hour.
	AddBasic AdditionStrategy = iota
	// AddCarryOver sums both components and carries one hour out of the
	// minutes.
	AddCarryOver
)

// SubtractionStrategy is one of the interchangeable algorithms for
// subtracting two Durations.
type SubtractionStrategy uint8

const (
	// SubtractBasic subtracts both components; valid when no borrow is needed.
	SubtractBasic SubtractionStrategy = iota
	// SubtractBorrow borrows one hour into the minutes.
	SubtractBorrow
	// SubtractZero yields the zero Duration for any operands.
	SubtractZero
)

// SubtractionPolicy decides what happens when a subtraction would produce a
// negative Duration.
type SubtractionPolicy uint8

const (
	// Borrow fails with an out-of-range error on a negative difference.
	Borrow SubtractionPolicy = iota
	// FloorAtZero returns the zero Duration on a negative difference.
	FloorAtZero
)

type arithmetic func(a, b Duration) (Duration, error)

var additionTable = [...]arithmetic{
	AddBasic:     addBasic,
	AddCarryOver: addCarryOver,
}

var subtractionTable = [...]arithmetic{
	SubtractBasic:  subtractBasic,
	SubtractBorrow: subtractBorrow,
	SubtractZero:   subtractZero,
}

// SelectAdditionStrategy picks AddBasic when the minutes of b fit into the
// minutes of a, AddCarryOver otherwise.
func SelectAdditionStrategy(a, b Duration) AdditionStrategy {
	if a.minutes.CanAdd(b.minutes) {
		return AddBasic
	}
	return AddCarryOver
}

// SelectSubtractionStrategy picks SubtractZero when policy is FloorAtZero and
// b exceeds a, then SubtractBasic when no borrow is needed, else
// SubtractBorrow.
func SelectSubtractionStrategy(a, b Duration, policy SubtractionPolicy) SubtractionStrategy {
	if policy == FloorAtZero && a.Compare(b) < 0 {
		return SubtractZero
	}
	if a.minutes.CanSubtract(b.minutes) {
		return SubtractBasic
	}
	return SubtractBorrow
}

// Apply adds b to a.
func (s AdditionStrategy) Apply(a, b Duration) (Duration, error) {
	if int(s) >= len(additionTable) {
		return Duration{}, errors.InvalidOperation("unknown addition strategy " + s.String())
	}
	return additionTable[s](a, b)
}

// Apply subtracts b from a.
func (s SubtractionStrategy) Apply(a, b Duration) (Duration, error) {
	if int(s) >= len(subtractionTable) {
		return Duration{}, errors.InvalidOperation("unknown subtraction strategy " + s.String())
	}
	return subtractionTable[s](a, b)
}

func (s AdditionStrategy) String() string {
	switch s {
	case AddBasic:
		return "basic"
	case AddCarryOver:
		return "carry-over"
	default:
		return fmt.Sprintf("AdditionStrategy(%d)", uint8(s))
	}
}

func (s SubtractionStrategy) String() string {
	switch s {
	case SubtractBasic:
		return "basic"
	case SubtractBorrow:
		return "borrow"
	case SubtractZero:
		return "zero"
	default:
		return fmt.Sprintf("SubtractionStrategy(%d)", uint8(s))
	}
}

func (p SubtractionPolicy) String() string {
	switch p {
	case Borrow:
		return "borrow"
	case FloorAtZero:
		return "floor"
	default:
		return fmt.Sprintf("SubtractionPolicy(%d)", uint8(p))
	}
}

// ParseSubtractionPolicy parses "borrow" or "floor".
func ParseSubtractionPolicy(s string) (SubtractionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "borrow", "":
		return Borrow, nil
	case "floor", "floor-at-zero", "zero":
		return FloorAtZero, nil
	}
	return Borrow, errors.InvalidCast("unknown subtraction policy: " + s)
}

func addBasic(a, b Duration) (Duration, error) {
	return durationFromCalculated(
		a.hours.value+b.hours.value,
		a.minutes.value+b.minutes.value,
	)
}

func addCarryOver(a, b Duration) (Duration, error) {
	modulus := Modulus(a.minutes)
	return durationFromCalculated(
		a.hours.value+b.hours.value+1,
		a.minutes.value+b.minutes.value-modulus,
	)
}

func subtractBasic(a, b Duration) (Duration, error) {
	return durationFromCalculated(
		a.hours.value-b.hours.value,
		a.minutes.value-b.minutes.value,
	)
}

func subtractBorrow(a, b Duration) (Duration, error) {
	modulus := Modulus(a.minutes)
	return durationFromCalculated(
		a.hours.value-b.hours.value-1,
		a.minutes.value-b.minutes.value+modulus,
	)
}

func subtractZero(Duration, Duration) (Duration, error) {
	return ZeroDuration(), nil
}

// durationFromCalculated builds a Duration from arithmetic results, reporting
// a value below zero as CalculatedValueIsNegative.
func durationFromCalculated(hours, minutes int) (Duration, error) {
	if err := checkCalculated(minutes, MinutesPastAnHourUpperBoundary, "minutesPastAnHour"); err != nil {
		return Duration{}, err
	}
	if err := checkCalculated(hours, HoursUpperBoundary, "hours"); err != nil {
		return Duration{}, err
	}
	return Duration{hours: Hours{value: hours}, minutes: MinutesPastAnHour{value: minutes}}, nil
}
