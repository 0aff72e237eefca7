package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/rzero"
)

func (a *app) rangeCmd() *cobra.Command {
	var dates dateFlags

	c := &cobra.Command{
		Use:   "range INPUT",
		Short: "Resolve and print the date range without fitting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := dates.request(args[0])
			if err != nil {
				return err
			}

			cfg, err := a.loadConfig(dates.overrides(cmd)...)
			if err != nil {
				return err
			}

			_, plan, err := rzero.Prepare(req, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "data:      %s to %s\n", formatDate(&plan.Data.Start), formatDate(&plan.Data.End))
			fmt.Fprintf(out, "requested: %s to %s\n", formatDate(req.Start), formatDate(req.End))
			fmt.Fprintf(out, "resolved:  %s (%d days)\n", plan.Range, plan.Days)
			fmt.Fprintf(out, "window:    %d\n", cfg.Window)
			fmt.Fprintf(out, "estimates: %d (%s to %s)\n", plan.Estimates, plan.First, plan.Last)

			return nil
		},
	}

	dates.register(c)

	return c
}
