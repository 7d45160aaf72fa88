package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/authcorp/sharedkernel/config"
	"github.com/authcorp/sharedkernel/domain"
	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/functional"
	"github.com/authcorp/sharedkernel/logging"
)

// app holds state shared by all subcommands after flags are parsed.
type app struct {
	out      io.Writer
	settings config.Settings
	log      *logging.Logger

	configPath string
	logLevel   string
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out, log: logging.Nop()}

	root := &cobra.Command{
		Use:           "durcalc",
		Short:         "Clock duration arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path (yaml or json)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(a.addCmd(), a.subCmd(), a.parseCmd())
	return root
}

func (a *app) setup() error {
	settings, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		settings.LogLevel = a.logLevel
	}
	a.settings = settings

	logConfig := logging.DefaultConfig()
	logConfig.ServiceName = "durcalc"
	logConfig.Environment = settings.Environment
	logConfig.MinLevel = logging.ParseLevel(settings.LogLevel)
	a.log = logging.New(logConfig)
	a.log.Debug("configuration loaded",
		logging.String("policy", settings.SubtractionPolicy.String()),
		logging.String("format", settings.OutputFormat),
	)
	return nil
}

// operands parses every argument as a Duration, failing on the first
// invalid one.
func (a *app) operands(args []string) ([]domain.Duration, error) {
	durations := make([]domain.Duration, 0, len(args))
	for i, arg := range args {
		parsed := domain.ParseClock(arg)
		if parsed.IsFailure() {
			a.log.Warn("invalid operand", logging.Int("position", i), logging.String("value", arg), logging.String("key", parsed.Err()))
			return nil, errors.Wrap(errors.InvalidCast(parsed.Err()), "operand "+arg)
		}
		durations = append(durations, parsed.Value())
	}
	return durations, nil
}

func (a *app) print(d domain.Duration) error {
	text := d.Clock()
	if a.settings.OutputFormat == config.FormatText {
		text = d.String()
	}
	_, err := io.WriteString(a.out, text+"\n")
	return err
}

func (a *app) fail(op string, err error) error {
	a.log.Error(op+" failed", logging.Error(err))
	return err
}

// outcome reports a Result's failure through the logger.
func outcome[T any](a *app, r functional.Result[T]) functional.Result[T] {
	return r.OnFailureWith(func(msg string) {
		a.log.Debug("result failed", logging.String("key", msg))
	})
}
