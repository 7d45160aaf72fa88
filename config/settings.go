package config

import (
	"fmt"

	"github.com/authcorp/sharedkernel/domain"
)

// EnvPrefix is the environment variable prefix read by Load.
const EnvPrefix = "DURCALC"

// Configuration keys.
const (
	KeyEnvironment       = "environment"
	KeyLogLevel          = "log.level"
	KeySubtractionPolicy = "subtraction.policy"
	KeyOutputFormat      = "output.format"
)

// Output formats.
const (
	FormatClock = "clock"
	FormatText  = "text"
)

// Settings is the typed configuration of the durcalc tool.
type Settings struct {
	Environment       string
	LogLevel          string
	SubtractionPolicy domain.SubtractionPolicy
	OutputFormat      string
}

// Defaults returns the default configuration values.
func Defaults() map[string]any {
	return map[string]any{
		KeyEnvironment:       "production",
		KeyLogLevel:          "info",
		KeySubtractionPolicy: "borrow",
		KeyOutputFormat:      FormatClock,
	}
}

// Load reads defaults, then path when it is not empty, then DURCALC_*
// environment variables.
func Load(path string) (Settings, error) {
	c := New().WithDefaults(Defaults())
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return Settings{}, err
		}
	}
	c.LoadEnv(EnvPrefix)
	return FromConfig(c)
}

// FromConfig converts a loaded Config to Settings.
func FromConfig(c *Config) (Settings, error) {
	policy, err := domain.ParseSubtractionPolicy(c.GetString(KeySubtractionPolicy))
	if err != nil {
		return Settings{}, err
	}
	format := c.GetString(KeyOutputFormat)
	if format != FormatClock && format != FormatText {
		return Settings{}, fmt.Errorf("unknown output format %q", format)
	}
	return Settings{
		Environment:       c.GetString(KeyEnvironment),
		LogLevel:          c.GetString(KeyLogLevel),
		SubtractionPolicy: policy,
		OutputFormat:      format,
	}, nil
}
