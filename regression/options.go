package regression

import (
	"fmt"

	"github.com/arloliu/rzero/internal/options"
)

// FitConfig holds solver settings for FitWindow.
type FitConfig struct {
	// RCond is the relative cutoff for small singular values. A negative
	// value selects eps * max(rows, cols).
	RCond float64
}

func defaultFitConfig() FitConfig {
	return FitConfig{RCond: -1}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithRCond sets the relative singular value cutoff. Zero keeps every
// non-zero singular value.
func WithRCond(rcond float64) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if rcond < 0 {
			return fmt.Errorf("rcond must be non-negative, got %v", rcond)
		}
		cfg.RCond = rcond

		return nil
	})
}
