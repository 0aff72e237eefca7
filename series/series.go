// Package series holds the daily case-rate series that R0 windows are cut from.
//
// A Series is a set of equally long float64 columns keyed by subregion name,
// aligned with a contiguous run of calendar days. Series values are treated
// as immutable once built; Restrict and Select return views that share the
// underlying column storage.
package series

import (
	"fmt"
	"time"

	"github.com/arloliu/rzero/daterange"
	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/format"
	"github.com/arloliu/rzero/internal/collision"
)

// Series is a contiguous daily case-rate table.
type Series struct {
	// Dates are midnight UTC, strictly increasing by one day.
	Dates []time.Time
	// Labels are the date cells as read, echoed verbatim to output.
	Labels []string

	names   *collision.Tracker
	columns [][]float64
}

// New creates a series over dates with no columns yet.
//
// labels may be nil, in which case dates are formatted as yyyy-mm-dd.
// Returns errs.ErrEmptySeries for no dates and errs.ErrNonContiguous when
// consecutive dates are not exactly one day apart.
func New(dates []time.Time, labels []string) (*Series, error) {
	if len(dates) == 0 {
		return nil, errs.ErrEmptySeries
	}
	if labels == nil {
		labels = make([]string, len(dates))
		for i, d := range dates {
			labels[i] = d.Format(format.DataDateLayout)
		}
	}
	if len(labels) != len(dates) {
		return nil, fmt.Errorf("series: %d labels for %d dates", len(labels), len(dates))
	}

	for i := 1; i < len(dates); i++ {
		if daterange.DaysBetween(dates[i-1], dates[i]) != 1 {
			return nil, fmt.Errorf("%w: %s follows %s", errs.ErrNonContiguous, labels[i], labels[i-1])
		}
	}

	return &Series{
		Dates:  dates,
		Labels: labels,
		names:  collision.NewTracker(),
	}, nil
}

// AddColumn appends a subregion column. values must have one entry per date.
func (s *Series) AddColumn(name string, values []float64) error {
	if len(values) != len(s.Dates) {
		return fmt.Errorf("series: column %q has %d values for %d dates", name, len(values), len(s.Dates))
	}
	if err := s.names.Track(name); err != nil {
		return err
	}
	s.columns = append(s.columns, values)

	return nil
}

// Len returns the number of days.
func (s *Series) Len() int {
	return len(s.Dates)
}

// Columns returns the column names in insertion order.
func (s *Series) Columns() []string {
	return s.names.Names()
}

// Has reports whether the series carries a column called name.
func (s *Series) Has(name string) bool {
	_, ok := s.names.Lookup(name)
	return ok
}

// Column returns the values of the named column.
func (s *Series) Column(name string) ([]float64, error) {
	pos, ok := s.names.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownSubregion, name)
	}

	return s.columns[pos], nil
}

// Bounds returns the first and last dates of the series.
func (s *Series) Bounds() daterange.Bounds {
	if len(s.Dates) == 0 {
		return daterange.Bounds{}
	}

	return daterange.Bounds{Start: s.Dates[0], End: s.Dates[len(s.Dates)-1]}
}

// Restrict returns the rows whose dates fall within r. The result may be empty.
// Column values are shared with s; columns added to the result are not.
func (s *Series) Restrict(r daterange.Range) *Series {
	lo, hi := 0, len(s.Dates)
	for lo < hi && s.Dates[lo].Before(r.Start) {
		lo++
	}
	for hi > lo && s.Dates[hi-1].After(r.End) {
		hi--
	}

	out := &Series{
		Dates:   s.Dates[lo:hi],
		Labels:  s.Labels[lo:hi],
		names:   s.names.Clone(),
		columns: make([][]float64, len(s.columns)),
	}
	for i, col := range s.columns {
		out.columns[i] = col[lo:hi]
	}

	return out
}

// Select returns a view holding only the named columns, in the given order.
func (s *Series) Select(names ...string) (*Series, error) {
	out := &Series{
		Dates:   s.Dates,
		Labels:  s.Labels,
		names:   collision.NewTracker(),
		columns: make([][]float64, 0, len(names)),
	}
	for _, name := range names {
		col, err := s.Column(name)
		if err != nil {
			return nil, err
		}
		if err := out.AddColumn(name, col); err != nil {
			return nil, err
		}
	}

	return out, nil
}
