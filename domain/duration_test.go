package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/authcorp/sharedkernel/domain"
	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/testutil"
)

func TestDurationAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     domain.Duration
		expected domain.Duration
	}{
		{"basic", domain.MustDuration(1, 0), domain.MustDuration(2, 0), domain.MustDuration(3, 0)},
		{"carry over", domain.MustDuration(1, 59), domain.MustDuration(1, 2), domain.MustDuration(3, 1)},
		{"exact hour", domain.MustDuration(0, 30), domain.MustDuration(0, 30), domain.MustDuration(1, 0)},
		{"up to boundary", domain.MustDuration(23, 30), domain.MustDuration(0, 30), domain.MustDuration(24, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := tt.a.Add(tt.b)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(sum), "expected %s, got %s", tt.expected, sum)
		})
	}
}

func TestDurationAddOverflow(t *testing.T) {
	_, err := domain.MustDuration(20, 0).Add(domain.MustDuration(5, 0))
	testutil.RequireKind(t, err, errors.KindOutOfRange)
	assert.Equal(t, errors.KeyCalculatedValueIsGreaterThanMax, errors.KeyOf(err))

	_, err = domain.MustDuration(24, 30).Add(domain.MustDuration(0, 30))
	assert.Equal(t, errors.KeyCalculatedValueIsGreaterThanMax, errors.KeyOf(err))
}

func TestDurationSubtract(t *testing.T) {
	tests := []struct {
		name     string
		a, b     domain.Duration
		policy   domain.SubtractionPolicy
		expected domain.Duration
	}{
		{"basic", domain.MustDuration(10, 0), domain.MustDuration(2, 0), domain.Borrow, domain.MustDuration(8, 0)},
		{"borrow", domain.MustDuration(2, 10), domain.MustDuration(1, 12), domain.Borrow, domain.MustDuration(0, 58)},
		{"to zero", domain.MustDuration(3, 15), domain.MustDuration(3, 15), domain.Borrow, domain.ZeroDuration()},
		{"floor positive", domain.MustDuration(2, 10), domain.MustDuration(1, 12), domain.FloorAtZero, domain.MustDuration(0, 58)},
		{"floor negative", domain.MustDuration(1, 0), domain.MustDuration(2, 30), domain.FloorAtZero, domain.ZeroDuration()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff, err := tt.a.Subtract(tt.b, tt.policy)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(diff), "expected %s, got %s", tt.expected, diff)
		})
	}
}

func TestDurationSubtractNegative(t *testing.T) {
	for _, pair := range [][2]domain.Duration{
		{domain.MustDuration(1, 0), domain.MustDuration(2, 0)},
		{domain.MustDuration(1, 0), domain.MustDuration(1, 30)},
		{domain.MustDuration(0, 10), domain.MustDuration(0, 20)},
	} {
		_, err := pair[0].Subtract(pair[1], domain.Borrow)
		testutil.RequireKind(t, err, errors.KindOutOfRange)
		assert.Equal(t, errors.KeyCalculatedValueIsNegative, errors.KeyOf(err))
	}
}

// Property: addition within range preserves total minutes.
func TestDurationAddProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pair := testutil.AddablePairGen().Draw(t, "pair")
		sum, err := pair[0].Add(pair[1])
		if err != nil {
			t.Fatalf("%s + %s: %v", pair[0], pair[1], err)
		}
		if sum.TotalMinutes() != pair[0].TotalMinutes()+pair[1].TotalMinutes() {
			t.Fatalf("%s + %s = %s", pair[0], pair[1], sum)
		}
		if sum.Minutes().Value() > domain.MinutesPastAnHourUpperBoundary {
			t.Fatalf("minutes not normalized: %s", sum)
		}
	})
}

// Property: a - b + b == a whenever a >= b.
func TestDurationSubtractProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pair := testutil.OrderedPairGen().Draw(t, "pair")
		diff, err := pair[0].Subtract(pair[1], domain.Borrow)
		if err != nil {
			t.Fatalf("%s - %s: %v", pair[0], pair[1], err)
		}
		if diff.TotalMinutes() != pair[0].TotalMinutes()-pair[1].TotalMinutes() {
			t.Fatalf("%s - %s = %s", pair[0], pair[1], diff)
		}
		back, err := diff.Add(pair[1])
		if err != nil || !back.Equal(pair[0]) {
			t.Fatalf("(%s - %s) + %s = %s, %v", pair[0], pair[1], pair[1], back, err)
		}
	})
}

// Property: FloorAtZero never fails and never goes below zero.
func TestDurationFloorProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := testutil.DurationGen(domain.HoursUpperBoundary).Draw(t, "a")
		b := testutil.DurationGen(domain.HoursUpperBoundary).Draw(t, "b")
		diff, err := a.Subtract(b, domain.FloorAtZero)
		if err != nil {
			t.Fatalf("%s - %s: %v", a, b, err)
		}
		expected := max(a.TotalMinutes()-b.TotalMinutes(), 0)
		if diff.TotalMinutes() != expected {
			t.Fatalf("%s - %s = %s, want %d minutes", a, b, diff, expected)
		}
	})
}

func TestDurationOf(t *testing.T) {
	_, err := domain.DurationOf(25, 0)
	assert.Equal(t, errors.KeyCalculatedValueIsGreaterThanMax, errors.KeyOf(err))

	_, err = domain.DurationOf(1, 60)
	assert.Equal(t, errors.KeyCalculatedValueIsGreaterThanMax, errors.KeyOf(err))

	r := domain.ParseDuration(-1, 0)
	assert.Equal(t, errors.KeyIsLessThanMinimum.String(), r.Err())

	testutil.RequirePanicKind(t, errors.KindOutOfRange, func() { domain.MustDuration(0, 75) })

	d := domain.NewDuration(domain.MustHours(2), domain.MustMinutesPastAnHour(5))
	assert.Equal(t, 2, d.Hours().Value())
	assert.Equal(t, 5, d.Minutes().Value())
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Duration
	}{
		{"1:05", domain.MustDuration(1, 5)},
		{"01:05", domain.MustDuration(1, 5)},
		{" 24:00 ", domain.MustDuration(24, 0)},
		{"1h", domain.MustDuration(1, 0)},
		{"1h2m", domain.MustDuration(1, 2)},
		{"1H02M", domain.MustDuration(1, 2)},
		{"45m", domain.MustDuration(0, 45)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := domain.ParseClock(tt.input)
			require.True(t, r.IsSuccess(), r.String())
			assert.True(t, tt.expected.Equal(r.Value()))
		})
	}
}

func TestParseClockFailures(t *testing.T) {
	tests := []struct {
		input string
		err   string
	}{
		{"", errors.KeyIsNullEmptyOrWhiteSpace.String()},
		{"   ", errors.KeyIsNullEmptyOrWhiteSpace.String()},
		{"25:00", errors.KeyCalculatedValueIsGreaterThanMax.String()},
		{"1:60", errors.KeyCalculatedValueIsGreaterThanMax.String()},
		{"90m", errors.KeyCalculatedValueIsGreaterThanMax.String()},
		{"abc", "invalid duration format: abc"},
		{"1:5", "invalid duration format: 1:5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.err, domain.ParseClock(tt.input).Err())
		})
	}
}

func TestDurationFormatting(t *testing.T) {
	d := domain.MustDuration(1, 2)
	assert.Equal(t, "1h02m", d.String())
	assert.Equal(t, "01:02", d.Clock())
	assert.Equal(t, 62, d.TotalMinutes())
	assert.Equal(t, 62*time.Minute, d.ToTimeDuration())
	assert.True(t, domain.ZeroDuration().IsZero())
	assert.False(t, d.IsZero())
}

func TestDurationCompare(t *testing.T) {
	a := domain.MustDuration(1, 30)
	b := domain.MustDuration(2, 0)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(domain.MustDuration(1, 30)))
}

type shift struct {
	Name   string          `json:"name" yaml:"name"`
	Length domain.Duration `json:"length" yaml:"length"`
}

// Property: JSON and YAML encodings round-trip.
func TestDurationEncodingRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := shift{Name: "night", Length: testutil.DurationGen(domain.HoursUpperBoundary).Draw(t, "d")}

		data, err := json.Marshal(in)
		if err != nil {
			t.Fatal(err)
		}
		var fromJSON shift
		if err := json.Unmarshal(data, &fromJSON); err != nil {
			t.Fatal(err)
		}
		if !fromJSON.Length.Equal(in.Length) {
			t.Fatalf("json: %s != %s", fromJSON.Length, in.Length)
		}

		data, err = yaml.Marshal(in)
		if err != nil {
			t.Fatal(err)
		}
		var fromYAML shift
		if err := yaml.Unmarshal(data, &fromYAML); err != nil {
			t.Fatal(err)
		}
		if !fromYAML.Length.Equal(in.Length) {
			t.Fatalf("yaml: %s != %s", fromYAML.Length, in.Length)
		}
	})
}

func TestDurationJSON(t *testing.T) {
	data, err := json.Marshal(shift{Name: "day", Length: domain.MustDuration(8, 30)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"day","length":"08:30"}`, string(data))

	var s shift
	require.NoError(t, json.Unmarshal([]byte(`{"length":"1h15m"}`), &s))
	assert.Equal(t, "1h15m", s.Length.String())

	err = json.Unmarshal([]byte(`{"length":"30:00"}`), &s)
	assert.ErrorIs(t, err, errors.KindInvalidCast)
}

func TestDurationYAMLInvalid(t *testing.T) {
	var s shift
	err := yaml.Unmarshal([]byte("length: [1, 2]\n"), &s)
	assert.ErrorIs(t, err, errors.KindInvalidCast)

	err = yaml.Unmarshal([]byte("length: soon\n"), &s)
	assert.ErrorIs(t, err, errors.KindInvalidCast)
}

func TestDurationText(t *testing.T) {
	var d domain.Duration
	require.NoError(t, d.UnmarshalText([]byte("2:45")))
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "02:45", string(text))
}
