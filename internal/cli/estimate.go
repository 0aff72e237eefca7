package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/rzero"
	"github.com/arloliu/rzero/config"
	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/estimate"
	"github.com/arloliu/rzero/format"
	"github.com/arloliu/rzero/internal/logger"
	"github.com/arloliu/rzero/table"
)

func (a *app) estimateCmd() *cobra.Command {
	var (
		dates       dateFlags
		outFormat   string
		noIndex     bool
		diagnostics string
		workers     int
	)

	c := &cobra.Command{
		Use:   "estimate INPUT OUTPUT",
		Short: "Estimate R0 per subregion over a sliding window",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := args[0], args[1]

			req, err := dates.request(input)
			if err != nil {
				return err
			}

			f := format.ParseOutputFormat(outFormat)
			if f != format.OutputCSV && f != format.OutputJSON {
				return fmt.Errorf("%w: %q (want csv or json)", errs.ErrUnsupportedFormat, outFormat)
			}

			overrides := dates.overrides(cmd)
			if cmd.Flags().Changed("workers") {
				overrides = append(overrides, config.WithWorkers(workers))
			}
			cfg, err := a.loadConfig(overrides...)
			if err != nil {
				return err
			}

			began := time.Now()
			result, err := rzero.Run(cmd.Context(), req, cfg,
				estimate.WithDiagnostics(diagnostics != ""),
				estimate.WithLogger(logger.L()),
			)
			if err != nil {
				return err
			}

			outs := []table.Output{{Path: output, Format: f, Options: []table.Option{table.WithIndex(!noIndex)}}}
			if diagnostics != "" {
				outs = append(outs, table.Output{Path: diagnostics, Format: format.OutputDiagnostics})
			}

			stats, err := table.SaveAll(result, outs...)
			if err != nil {
				return err
			}
			for i, out := range outs {
				logger.L().Info("output.saved",
					"path", out.Path,
					"format", out.Format.String(),
					"compression", stats[i].Algorithm.String(),
					"bytes", stats[i].CompressedSize,
				)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d estimates for %d subregions to %s (%s)\n",
				result.Len(), len(result.Subregions), output, time.Since(began).Round(time.Millisecond))

			return nil
		},
	}

	dates.register(c)
	c.Flags().StringVar(&outFormat, "format", "csv", "output format: csv or json")
	c.Flags().BoolVar(&noIndex, "no-index", false, "omit the leading row index column")
	c.Flags().StringVar(&diagnostics, "diagnostics", "", "also write per-window slope, intercept and fit quality to FILE")
	c.Flags().IntVar(&workers, "workers", 1, "number of goroutines fitting windows")

	return c
}
