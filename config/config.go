// Package config holds the run configuration for R0 estimation.
//
// A Config is built from Default, optionally overlaid with a YAML file via
// Load, and finally adjusted with functional options:
//
//	cfg, err := config.New(
//	    config.WithWindow(21),
//	    config.WithIncludeTotal(true),
//	)
//
// Config values are never mutated in place; With returns a validated copy.
package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/format"
	"github.com/arloliu/rzero/internal/collision"
	"github.com/arloliu/rzero/internal/options"
)

const (
	// DefaultWindow is the number of consecutive days in each regression window.
	DefaultWindow = 14
	// DefaultSerialInterval is the mean serial interval in days.
	DefaultSerialInterval = 5.2
	// DefaultRegion is the name used for the aggregate column.
	DefaultRegion = "Penang"
	// DefaultDateColumn is the header of the date column in input files.
	DefaultDateColumn = "date"
	// MinWindow is the smallest window that supports a two-parameter fit.
	MinWindow = 2
)

// DefaultSubregions are the Penang districts, in output order.
var DefaultSubregions = []string{
	"Timur Laut",
	"Barat Daya",
	"Seberang Perai Utara",
	"Seberang Perai Tengah",
	"Seberang Perai Selatan",
}

// Config is the immutable run configuration.
type Config struct {
	// Window is R0_WINDOW, the regression window length in days.
	Window int
	// SerialInterval is SERIAL_INT, the mean serial interval in days.
	SerialInterval float64
	// Region names the aggregate column appended when IncludeTotal is set.
	Region string
	// Subregions lists the columns to estimate, in output order.
	Subregions []string
	// IncludeTotal appends Region as an extra column.
	IncludeTotal bool
	// DateColumn is the header of the date column in input files.
	DateColumn string
	// DateLayout is the preferred time layout of the date column.
	DateLayout string
	// Workers is the number of goroutines fitting windows concurrently.
	Workers int
}

// Option configures a Config.
type Option = options.Option[*Config]

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window:         DefaultWindow,
		SerialInterval: DefaultSerialInterval,
		Region:         DefaultRegion,
		Subregions:     slices.Clone(DefaultSubregions),
		DateColumn:     DefaultDateColumn,
		DateLayout:     format.DataDateLayout,
		Workers:        1,
	}
}

// New returns Default adjusted by opts.
func New(opts ...Option) (Config, error) {
	return Default().With(opts...)
}

// With returns a copy of c adjusted by opts. The copy is validated.
func (c Config) With(opts ...Option) (Config, error) {
	out := c
	out.Subregions = slices.Clone(c.Subregions)

	if err := options.Apply(&out, opts...); err != nil {
		return Config{}, err
	}
	if err := out.Validate(); err != nil {
		return Config{}, err
	}

	return out, nil
}

// Validate checks the invariants every run relies on.
func (c Config) Validate() error {
	if c.Window < MinWindow {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidWindow, c.Window)
	}
	if !validSerialInterval(c.SerialInterval) {
		return fmt.Errorf("%w: got %v", errs.ErrInvalidSerialInterval, c.SerialInterval)
	}
	if len(c.Subregions) == 0 {
		return fmt.Errorf("%w: at least one subregion is required", errs.ErrInvalidConfig)
	}
	if c.IncludeTotal && strings.TrimSpace(c.Region) == "" {
		return fmt.Errorf("%w: region is required when include_total is set", errs.ErrInvalidConfig)
	}
	if strings.TrimSpace(c.DateColumn) == "" {
		return fmt.Errorf("%w: date column cannot be empty", errs.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", errs.ErrInvalidConfig, c.Workers)
	}

	tracker := collision.NewTracker()
	for _, name := range c.Columns() {
		if err := tracker.Track(name); err != nil {
			return err
		}
	}

	return nil
}

// Columns returns the subregion columns to estimate, followed by Region when
// IncludeTotal is set.
func (c Config) Columns() []string {
	cols := slices.Clone(c.Subregions)
	if c.IncludeTotal {
		cols = append(cols, c.Region)
	}

	return cols
}

func validSerialInterval(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// WithWindow sets the regression window length in days.
func WithWindow(days int) Option {
	return options.New(func(c *Config) error {
		if days < MinWindow {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidWindow, days)
		}
		c.Window = days

		return nil
	})
}

// WithSerialInterval sets the mean serial interval in days.
func WithSerialInterval(days float64) Option {
	return options.New(func(c *Config) error {
		if !validSerialInterval(days) {
			return fmt.Errorf("%w: got %v", errs.ErrInvalidSerialInterval, days)
		}
		c.SerialInterval = days

		return nil
	})
}

// WithRegion sets the aggregate region name.
func WithRegion(name string) Option {
	return options.NoError(func(c *Config) {
		c.Region = name
	})
}

// WithSubregions replaces the subregion list. Order is preserved in output.
func WithSubregions(names ...string) Option {
	return options.NoError(func(c *Config) {
		c.Subregions = slices.Clone(names)
	})
}

// WithIncludeTotal toggles the aggregate region column.
func WithIncludeTotal(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.IncludeTotal = enabled
	})
}

// WithDateColumn sets the header of the date column.
func WithDateColumn(name string) Option {
	return options.NoError(func(c *Config) {
		c.DateColumn = name
	})
}

// WithDateLayout sets the preferred layout for parsing input dates.
func WithDateLayout(layout string) Option {
	return options.NoError(func(c *Config) {
		if layout != "" {
			c.DateLayout = layout
		}
	})
}

// WithWorkers sets the number of concurrent fitting goroutines.
func WithWorkers(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: workers must be at least 1, got %d", errs.ErrInvalidConfig, n)
		}
		c.Workers = n

		return nil
	})
}
