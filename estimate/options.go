package estimate

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/rzero/internal/logger"
	"github.com/arloliu/rzero/internal/options"
	"github.com/arloliu/rzero/regression"
)

// DefaultPrecision is the number of decimals R0 values are rounded to.
const DefaultPrecision = 3

// NoRounding disables presentation rounding when passed to WithPrecision.
const NoRounding = -1

type runConfig struct {
	workers     int
	diagnostics bool
	precision   int
	log         *slog.Logger
	fitOpts     []regression.FitOption
}

func defaultRunConfig() *runConfig {
	return &runConfig{
		workers:   1,
		precision: DefaultPrecision,
		log:       logger.L(),
	}
}

// Option configures Run.
type Option = options.Option[*runConfig]

// WithWorkers fits windows on n goroutines. n <= 1 runs on the caller's goroutine.
func WithWorkers(n int) Option {
	return options.NoError(func(c *runConfig) {
		c.workers = max(n, 1)
	})
}

// WithDiagnostics keeps the full regression.Fit of every cell in Table.Fits.
func WithDiagnostics(enabled bool) Option {
	return options.NoError(func(c *runConfig) {
		c.diagnostics = enabled
	})
}

// WithLogger sets the logger for run progress. Default is the process logger.
func WithLogger(l *slog.Logger) Option {
	return options.NoError(func(c *runConfig) {
		if l != nil {
			c.log = l
		}
	})
}

// WithPrecision sets the number of decimals R0 values are rounded to.
// NoRounding keeps full precision.
func WithPrecision(decimals int) Option {
	return options.New(func(c *runConfig) error {
		if decimals < NoRounding || decimals > 15 {
			return fmt.Errorf("precision must be between 0 and 15 or NoRounding, got %d", decimals)
		}
		c.precision = decimals

		return nil
	})
}

// WithFitOptions passes solver options to every window fit.
func WithFitOptions(opts ...regression.FitOption) Option {
	return options.NoError(func(c *runConfig) {
		c.fitOpts = append(c.fitOpts, opts...)
	})
}
