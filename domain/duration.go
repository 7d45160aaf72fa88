package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/functional"
	"github.com/authcorp/sharedkernel/guard"
)

// Duration is a non-negative span of time expressed as whole hours and the
// minutes past the last hour.
type Duration struct {
	hours   Hours
	minutes MinutesPastAnHour
}

// clockRegex matches "H:MM", "HH:MM" and "1h02m" style durations.
var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$|^(\d{1,2})h(?:(\d{1,2})m)?$|^(\d{1,2})m$`)

// NewDuration creates a Duration from validated components.
func NewDuration(hours Hours, minutes MinutesPastAnHour) Duration {
	return Duration{hours: hours, minutes: minutes}
}

// DurationOf creates a Duration from raw components.
func DurationOf(hours, minutes int) (Duration, error) {
	h, err := NewHours(hours)
	if err != nil {
		return Duration{}, err
	}
	m, err := NewMinutesPastAnHour(minutes)
	if err != nil {
		return Duration{}, err
	}
	return NewDuration(h, m), nil
}

// MustDuration creates a Duration, panicking on invalid input.
func MustDuration(hours, minutes int) Duration {
	return errors.Must(DurationOf(hours, minutes))
}

// ZeroDuration returns 0h00m.
func ZeroDuration() Duration {
	return Duration{}
}

// ParseDuration is the validating factory for raw components.
func ParseDuration(hours, minutes int) functional.Result[Duration] {
	return functional.FromError(DurationOf(hours, minutes))
}

// ParseClock parses "H:MM", "HH:MM", "1h", "1h02m" or "45m".
func ParseClock(value string) functional.Result[Duration] {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if err := guard.NotNullEmptyOrWhiteSpace(trimmed, "value"); err != nil {
		return functional.FailKey[Duration](errors.KeyIsNullEmptyOrWhiteSpace)
	}
	match := clockRegex.FindStringSubmatch(trimmed)
	if match == nil {
		return functional.Fail[Duration]("invalid duration format: " + value)
	}

	var h, m int
	switch {
	case match[1] != "":
		h, _ = strconv.Atoi(match[1])
		m, _ = strconv.Atoi(match[2])
	case match[3] != "":
		h, _ = strconv.Atoi(match[3])
		if match[4] != "" {
			m, _ = strconv.Atoi(match[4])
		}
	default:
		m, _ = strconv.Atoi(match[5])
	}
	return ParseDuration(h, m)
}

// Hours returns the hour component.
func (d Duration) Hours() Hours { return d.hours }

// Minutes returns the minute component.
func (d Duration) Minutes() MinutesPastAnHour { return d.minutes }

// Add returns d + other, carrying an hour when the minutes overflow. The
// result fails with an out-of-range error above 24 hours.
func (d Duration) Add(other Duration) (Duration, error) {
	return SelectAdditionStrategy(d, other).Apply(d, other)
}

// Subtract returns d - other, borrowing an hour when the minutes underflow.
// A negative difference fails under Borrow and is zero under FloorAtZero.
func (d Duration) Subtract(other Duration, policy SubtractionPolicy) (Duration, error) {
	return SelectSubtractionStrategy(d, other, policy).Apply(d, other)
}

// TotalMinutes returns the duration in minutes.
func (d Duration) TotalMinutes() int {
	return d.hours.value*Modulus(d.minutes) + d.minutes.value
}

// Compare returns -1, 0 or +1.
func (d Duration) Compare(other Duration) int {
	a, b := d.TotalMinutes(), other.TotalMinutes()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// IsZero returns true for 0h00m.
func (d Duration) IsZero() bool {
	return d.hours.value == 0 && d.minutes.value == 0
}

// ToTimeDuration converts to a time.Duration.
func (d Duration) ToTimeDuration() time.Duration {
	return time.Duration(d.TotalMinutes()) * time.Minute
}

// Equal checks if two durations are equal.
func (d Duration) Equal(other Duration) bool {
	return d.EqualsCore(other)
}

// EqualsCore implements ValueObject.
func (d Duration) EqualsCore(other Duration) bool {
	return d.hours.EqualsCore(other.hours) && d.minutes.EqualsCore(other.minutes)
}

// HashCore implements ValueObject.
func (d Duration) HashCore() uint64 {
	return HashOf("Duration", d.hours, d.minutes)
}

// String returns the duration as "1h02m".
func (d Duration) String() string {
	return fmt.Sprintf("%dh%02dm", d.hours.value, d.minutes.value)
}

// Clock returns the duration as "01:02".
func (d Duration) Clock() string {
	return fmt.Sprintf("%02d:%02d", d.hours.value, d.minutes.value)
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Clock()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(data []byte) error {
	return d.set(string(data))
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Clock())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.set(s)
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.Clock(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.InvalidCast(fmt.Sprintf("duration must be a scalar, line %d", node.Line))
	}
	return d.set(node.Value)
}

func (d *Duration) set(s string) error {
	parsed := ParseClock(s)
	if parsed.IsFailure() {
		return errors.InvalidCast(parsed.Err())
	}
	*d = parsed.Value()
	return nil
}
