package main

import (
	"github.com/spf13/cobra"

	"github.com/authcorp/sharedkernel/domain"
	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/logging"
)

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add DURATION DURATION...",
		Short: "Add durations left to right",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.operands(args)
			if err != nil {
				return err
			}
			total := ds[0]
			for _, d := range ds[1:] {
				strategy := domain.SelectAdditionStrategy(total, d)
				a.log.Debug("adding", logging.Stringer("left", total), logging.Stringer("right", d), logging.Stringer("strategy", strategy))
				if total, err = strategy.Apply(total, d); err != nil {
					return a.fail("add", err)
				}
			}
			return a.print(total)
		},
	}
}

func (a *app) subCmd() *cobra.Command {
	var policyFlag string
	cmd := &cobra.Command{
		Use:   "sub DURATION DURATION...",
		Short: "Subtract durations left to right",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := a.settings.SubtractionPolicy
			if policyFlag != "" {
				var err error
				if policy, err = domain.ParseSubtractionPolicy(policyFlag); err != nil {
					return err
				}
			}
			ds, err := a.operands(args)
			if err != nil {
				return err
			}
			total := ds[0]
			for _, d := range ds[1:] {
				strategy := domain.SelectSubtractionStrategy(total, d, policy)
				a.log.Debug("subtracting", logging.Stringer("left", total), logging.Stringer("right", d), logging.Stringer("strategy", strategy))
				if total, err = strategy.Apply(total, d); err != nil {
					return a.fail("sub", err)
				}
			}
			return a.print(total)
		},
	}
	cmd.Flags().StringVar(&policyFlag, "policy", "", "negative result policy: borrow (fail) or floor (zero)")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse DURATION",
		Short: "Validate and normalize a duration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := outcome(a, domain.ParseClock(args[0]))
			if parsed.IsFailure() {
				return errors.InvalidCast(parsed.Err())
			}
			return a.print(parsed.Value())
		},
	}
}
