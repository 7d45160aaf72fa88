package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/authcorp/sharedkernel/domain"
	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/testutil"
)

func TestBoundedText(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (string, string)
		max   int
	}{
		{"Name", func(s string) (string, string) {
			r := domain.ParseName(s)
			if r.IsFailure() {
				return "", r.Err()
			}
			return r.Value().String(), ""
		}, domain.NameMaxLength},
		{"ArgumentName", func(s string) (string, string) {
			r := domain.ParseArgumentName(s)
			if r.IsFailure() {
				return "", r.Err()
			}
			return r.Value().String(), ""
		}, domain.ArgumentNameMaxLength},
		{"ShortDescription", func(s string) (string, string) {
			r := domain.ParseShortDescription(s)
			if r.IsFailure() {
				return "", r.Err()
			}
			return r.Value().String(), ""
		}, domain.ShortDescriptionMaxLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := tt.parse("  trimmed  ")
			assert.Empty(t, err)
			assert.Equal(t, "trimmed", value)

			value, err = tt.parse(strings.Repeat("é", tt.max))
			assert.Empty(t, err)
			assert.Equal(t, tt.max, len([]rune(value)))

			_, err = tt.parse(strings.Repeat("a", tt.max+1))
			assert.Equal(t, errors.KeyIsTooLong.String(), err)

			_, err = tt.parse(" \t ")
			assert.Equal(t, errors.KeyIsNullEmptyOrWhiteSpace.String(), err)
		})
	}
}

func TestNameEquality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := testutil.NameGen().Draw(t, "name")
		a := domain.MustName(raw)
		b := domain.MustName("  " + raw + "  ")
		if !a.Equal(b) || !domain.SameValue(a, b) {
			t.Fatalf("%q and its padded form differ", raw)
		}
		if domain.ValueHash(a) != domain.ValueHash(b) {
			t.Fatalf("hash mismatch for %q", raw)
		}
	})
}

func TestMustTextPanics(t *testing.T) {
	testutil.RequirePanicKind(t, errors.KindInvalidCast, func() { domain.MustName("") })
	testutil.RequirePanicKind(t, errors.KindInvalidCast, func() {
		domain.MustArgumentName(strings.Repeat("x", domain.ArgumentNameMaxLength+1))
	})
	testutil.RequirePanicKind(t, errors.KindInvalidCast, func() { domain.MustShortDescription("   ") })
}

func TestTextTypesDoNotMix(t *testing.T) {
	name := domain.MustName("amount")
	arg := domain.MustArgumentName("amount")
	assert.False(t, domain.ValueEquals(name, arg))
	assert.NotEqual(t, domain.ValueHash(name), domain.ValueHash(arg))
}
