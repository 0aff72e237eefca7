// Package cli implements the rzero command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/rzero/config"
	"github.com/arloliu/rzero/internal/logger"
)

func Execute() {
	a := &app{}
	cmd := a.rootCmd()
	err := cmd.Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

// app carries the persistent flags and the logger cleanup across commands.
type app struct {
	configPath string
	debug      bool
	logFile    string

	cleanup func() error
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rzero",
		Short:        "Estimate the reproduction number R0 from daily case rates",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cleanup, err := logger.Setup(logger.Config{
				Path:   a.logFile,
				Debug:  a.debug,
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.cleanup = cleanup

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (window, serial interval, subregions)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable verbose logging")
	cmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "append JSON logs to this file instead of stderr")

	cmd.AddCommand(a.estimateCmd(), a.rangeCmd(), versionCmd())

	return cmd
}

func (a *app) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
		a.cleanup = nil
	}
}

// loadConfig reads --config, if any, and applies flag overrides on top.
func (a *app) loadConfig(overrides ...config.Option) (config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		cfg, err = config.Load(a.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	return cfg.With(overrides...)
}
