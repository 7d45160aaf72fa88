package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/functional"
)

// Maximum lengths, in runes, of the bounded string values.
const (
	NameMaxLength             = 100
	ArgumentNameMaxLength     = 50
	ShortDescriptionMaxLength = 250
)

// parseBounded trims value and checks it is non-blank and at most max runes.
func parseBounded(value string, max int) functional.Result[string] {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return functional.FailKey[string](errors.KeyIsNullEmptyOrWhiteSpace)
	}
	if utf8.RuneCountInString(trimmed) > max {
		return functional.FailKey[string](errors.KeyIsTooLong)
	}
	return functional.Ok(trimmed)
}

// Name is a non-blank display name of at most NameMaxLength runes.
type Name struct {
	value string
}

// ParseName validates and trims value.
func ParseName(value string) functional.Result[Name] {
	return functional.MapResult(parseBounded(value, NameMaxLength), func(s string) Name {
		return Name{value: s}
	})
}

// MustName creates a Name, panicking on invalid input.
func MustName(value string) Name {
	return mustText(ParseName(value))
}

func (n Name) String() string             { return n.value }
func (n Name) Equal(other Name) bool      { return n.value == other.value }
func (n Name) EqualsCore(other Name) bool { return n.value == other.value }
func (n Name) HashCore() uint64           { return HashOf("Name", n.value) }

// ArgumentName names a parameter in an error report.
type ArgumentName struct {
	value string
}

// ParseArgumentName validates and trims value.
func ParseArgumentName(value string) functional.Result[ArgumentName] {
	return functional.MapResult(parseBounded(value, ArgumentNameMaxLength), func(s string) ArgumentName {
		return ArgumentName{value: s}
	})
}

// MustArgumentName creates an ArgumentName, panicking on invalid input.
func MustArgumentName(value string) ArgumentName {
	return mustText(ParseArgumentName(value))
}

func (a ArgumentName) String() string                     { return a.value }
func (a ArgumentName) Equal(other ArgumentName) bool      { return a.value == other.value }
func (a ArgumentName) EqualsCore(other ArgumentName) bool { return a.value == other.value }
func (a ArgumentName) HashCore() uint64                   { return HashOf("ArgumentName", a.value) }

// ShortDescription is a non-blank description of at most
// ShortDescriptionMaxLength runes.
type ShortDescription struct {
	value string
}

// ParseShortDescription validates and trims value.
func ParseShortDescription(value string) functional.Result[ShortDescription] {
	return functional.MapResult(parseBounded(value, ShortDescriptionMaxLength), func(s string) ShortDescription {
		return ShortDescription{value: s}
	})
}

// MustShortDescription creates a ShortDescription, panicking on invalid input.
func MustShortDescription(value string) ShortDescription {
	return mustText(ParseShortDescription(value))
}

func (s ShortDescription) String() string                         { return s.value }
func (s ShortDescription) Equal(other ShortDescription) bool      { return s.value == other.value }
func (s ShortDescription) EqualsCore(other ShortDescription) bool { return s.value == other.value }
func (s ShortDescription) HashCore() uint64                       { return HashOf("ShortDescription", s.value) }

func mustText[T any](r functional.Result[T]) T {
	if r.IsFailure() {
		panic(errors.New(errors.KindInvalidCast, errors.Key(r.Err()), "value"))
	}
	return r.Value()
}
