package domain

import (
	"strconv"

	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/functional"
	"github.com/authcorp/sharedkernel/guard"
)

// PositiveInteger is an integer guaranteed to be >= 0.
type PositiveInteger struct {
	value int
}

// NewPositiveInteger creates a PositiveInteger, failing when value < 0.
func NewPositiveInteger(value int) (PositiveInteger, error) {
	if err := guard.NotNegative(value, "value"); err != nil {
		return PositiveInteger{}, err
	}
	return PositiveInteger{value: value}, nil
}

// ParsePositiveInteger is the validating factory for PositiveInteger.
func ParsePositiveInteger(value int) functional.Result[PositiveInteger] {
	return functional.FromError(NewPositiveInteger(value))
}

// Value returns the integer.
func (p PositiveInteger) Value() int { return p.value }

// EqualsCore implements ValueObject.
func (p PositiveInteger) EqualsCore(other PositiveInteger) bool { return p.value == other.value }

// HashCore implements ValueObject.
func (p PositiveInteger) HashCore() uint64 { return HashOf("PositiveInteger", p.value) }

func (p PositiveInteger) String() string { return strconv.Itoa(p.value) }

// LimitedPositiveInteger is a PositiveInteger with an inclusive upper
// boundary fixed by the concrete type.
type LimitedPositiveInteger interface {
	Value() int
	UpperBoundary() int
}

// checkLimited validates a value supplied by a caller.
func checkLimited(value, upper int, argument string) error {
	if value < 0 {
		return errors.OutOfRange(errors.KeyIsLessThanMinimum, argument, value, 0, upper)
	}
	if value > upper {
		return errors.OutOfRange(errors.KeyCalculatedValueIsGreaterThanMax, argument, value, 0, upper)
	}
	return nil
}

// checkCalculated validates a value produced by arithmetic.
func checkCalculated(value, upper int, argument string) error {
	if value < 0 {
		return errors.OutOfRange(errors.KeyCalculatedValueIsNegative, argument, value, 0, upper)
	}
	if value > upper {
		return errors.OutOfRange(errors.KeyCalculatedValueIsGreaterThanMax, argument, value, 0, upper)
	}
	return nil
}

// Modulus is the number of distinct values of a limited integer.
func Modulus(l LimitedPositiveInteger) int {
	return l.UpperBoundary() + 1
}
