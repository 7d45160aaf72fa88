package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/authcorp/sharedkernel/domain"
)

type address struct {
	street string
	number int
}

func (a *address) EqualsCore(other *address) bool {
	return a.street == other.street && a.number == other.number
}

func (a *address) HashCore() uint64 {
	return domain.HashOf(a.street, a.number)
}

type postalAddress struct {
	address
}

// Property: a == b iff fields are pairwise equal.
func TestValueObjectStructuralEquality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := &address{
			street: rapid.SampledFrom([]string{"Main", "Elm"}).Draw(t, "streetA"),
			number: rapid.IntRange(1, 3).Draw(t, "numberA"),
		}
		b := &address{
			street: rapid.SampledFrom([]string{"Main", "Elm"}).Draw(t, "streetB"),
			number: rapid.IntRange(1, 3).Draw(t, "numberB"),
		}
		fieldsEqual := a.street == b.street && a.number == b.number

		if domain.SameValue(a, b) != fieldsEqual {
			t.Fatalf("SameValue(%v, %v) disagrees with field equality", a, b)
		}
		if fieldsEqual && domain.ValueHash(a) != domain.ValueHash(b) {
			t.Fatalf("equal values must hash equal")
		}
	})
}

func TestValueObjectNil(t *testing.T) {
	var nilAddress *address
	a := &address{street: "Main", number: 1}

	assert.False(t, domain.SameValue(a, nilAddress))
	assert.False(t, domain.SameValue(nilAddress, a))
	assert.True(t, domain.SameValue(nilAddress, nilAddress))
	assert.True(t, domain.DifferentValue(a, nilAddress))
	assert.False(t, domain.ValueEquals(a, nil))
	assert.Zero(t, domain.ValueHash(nilAddress))
}

func TestValueObjectExactType(t *testing.T) {
	a := &address{street: "Main", number: 1}
	p := &postalAddress{address: address{street: "Main", number: 1}}

	assert.False(t, domain.ValueEquals(a, p))
	assert.True(t, domain.ValueEquals(a, &address{street: "Main", number: 1}))
}

func TestDurationIsValueObject(t *testing.T) {
	a := domain.MustDuration(1, 30)
	assert.True(t, domain.SameValue(a, domain.MustDuration(1, 30)))
	assert.False(t, domain.SameValue(a, domain.MustDuration(1, 31)))
	assert.False(t, domain.ValueEquals(a, domain.MustHours(1)))
	assert.Equal(t, domain.ValueHash(a), domain.ValueHash(domain.MustDuration(1, 30)))
}
