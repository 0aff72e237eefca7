package regression

import (
	"errors"
	"fmt"

	"github.com/arloliu/rzero/errs"
)

// Fitter fits windows of one subregion's case-rate column.
type Fitter struct {
	subregion      string
	values         []float64
	labels         []string
	serialInterval float64
	opts           []FitOption
}

// NewFitter binds a column for windowed fitting. labels, if non-nil, must be
// aligned with values and are used to name the offending day in a DomainError.
func NewFitter(subregion string, values []float64, labels []string, serialInterval float64, opts ...FitOption) *Fitter {
	return &Fitter{
		subregion:      subregion,
		values:         values,
		labels:         labels,
		serialInterval: serialInterval,
		opts:           opts,
	}
}

// Subregion returns the bound column name.
func (f *Fitter) Subregion() string {
	return f.subregion
}

// Windows returns the number of full windows of the given length, zero when
// the column is shorter than window.
func (f *Fitter) Windows(window int) int {
	if window < 1 || len(f.values) < window {
		return 0
	}

	return len(f.values) - window + 1
}

// At fits values[t : t+window].
//
// Returns errs.ErrWindowOutOfRange for a window that does not fit inside the
// column. A *errs.DomainError names the subregion and, when labels are
// bound, the date of the offending value.
func (f *Fitter) At(t, window int) (Fit, error) {
	if window < 2 {
		return Fit{}, fmt.Errorf("%w: got %d", errs.ErrInvalidWindow, window)
	}
	if t < 0 || t+window > len(f.values) {
		return Fit{}, fmt.Errorf("%w: offset %d with window %d over %d values (subregion=%s)",
			errs.ErrWindowOutOfRange, t, window, len(f.values), f.subregion)
	}

	fit, err := FitWindow(f.values[t:t+window], f.serialInterval, f.opts...)
	if err != nil {
		var de *errs.DomainError
		if errors.As(err, &de) {
			de.Subregion = f.subregion
			if f.labels != nil {
				de.Date = f.labels[t+de.Offset]
			}

			return Fit{}, de
		}

		return Fit{}, fmt.Errorf("subregion %s offset %d: %w", f.subregion, t, err)
	}

	return fit, nil
}
