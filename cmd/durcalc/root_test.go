package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcorp/sharedkernel/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"add carry over", []string{"add", "1:59", "1:02"}, "03:01\n"},
		{"add basic", []string{"add", "1h", "2h"}, "03:00\n"},
		{"add many", []string{"add", "0:20", "0:20", "0:20"}, "01:00\n"},
		{"sub borrow", []string{"sub", "2:10", "1:12"}, "00:58\n"},
		{"sub basic", []string{"sub", "10:00", "2:00"}, "08:00\n"},
		{"sub floor", []string{"sub", "1:00", "2:00", "--policy", "floor"}, "00:00\n"},
		{"parse", []string{"parse", "1h2m"}, "01:02\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "sub", "1:00", "2:00")
	assert.Equal(t, errors.KindOutOfRange, errors.KindOf(err))
	assert.Equal(t, errors.KeyCalculatedValueIsNegative, errors.KeyOf(err))

	_, err = run(t, "add", "20:00", "5:00")
	assert.Equal(t, errors.KeyCalculatedValueIsGreaterThanMax, errors.KeyOf(err))

	_, err = run(t, "add", "1:00", "nope")
	assert.Equal(t, errors.KindInvalidCast, errors.KindOf(err))
	assert.ErrorContains(t, err, "operand nope")

	_, err = run(t, "parse", "25:00")
	assert.Equal(t, errors.KindInvalidCast, errors.KindOf(err))

	_, err = run(t, "sub", "1:00", "0:30", "--policy", "sideways")
	assert.Equal(t, errors.KindInvalidCast, errors.KindOf(err))

	_, err = run(t, "add", "1:00")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "durcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: text\nsubtraction:\n  policy: floor\n"), 0o600))

	out, err := run(t, "--config", path, "sub", "1:00", "2:00")
	require.NoError(t, err)
	assert.Equal(t, "0h00m\n", out)

	out, err = run(t, "--config", path, "sub", "2:10", "1:12", "--policy", "borrow")
	require.NoError(t, err)
	assert.Equal(t, "0h58m\n", out)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("DURCALC_OUTPUT_FORMAT", "text")

	out, err := run(t, "add", "0:45", "0:30")
	require.NoError(t, err)
	assert.Equal(t, "1h15m\n", out)
}
