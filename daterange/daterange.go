// Package daterange resolves optional user start and end dates against the
// span of the loaded data.
//
// An estimate dated D needs window days of data ending on D, so a requested
// start is moved back by window-1 days before it is checked against the data:
//
//	data:      |-------------------------------------|
//	           dataStart                       dataEnd
//	request:              [userStart ........ userEnd]
//	resolved:   [start = userStart-(window-1) .. end]
package daterange

import (
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/format"
)

// CLILayout is the layout of user supplied dates (dd-mm-yyyy).
const CLILayout = format.CLIDateLayout

const day = 24 * time.Hour

// Bounds are the first and last dates present in the data.
type Bounds struct {
	Start time.Time
	End   time.Time
}

// Request holds optional user dates. A nil field means "use the data bound".
type Request struct {
	Start *time.Time
	End   *time.Time
}

// Range is a validated, inclusive [Start, End] span of rows to keep.
type Range struct {
	Start time.Time
	End   time.Time
}

// Days returns the inclusive number of days in r.
func (r Range) Days() int {
	return DaysBetween(r.Start, r.End) + 1
}

// Contains reports whether t falls within r, inclusive.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("%s to %s", r.Start.Format(CLILayout), r.End.Format(CLILayout))
}

// Resolve turns req into the range of rows needed to report estimates from
// req.Start (or the first possible date) through req.End (or the data end).
//
// It returns errs.ErrInvalidWindow for window < 2 and a *errs.DateRangeError
// when the data cannot cover the resolved range.
func Resolve(bounds Bounds, req Request, window int) (Range, error) {
	if window < 2 {
		return Range{}, fmt.Errorf("%w: got %d", errs.ErrInvalidWindow, window)
	}

	dataStart, dataEnd := truncate(bounds.Start), truncate(bounds.End)
	lead := time.Duration(window-1) * day

	start := dataStart
	if req.Start != nil {
		start = truncate(*req.Start).Add(-lead)
	}

	end := dataEnd
	if req.End != nil {
		end = truncate(*req.End)
	}

	fail := func(reason string) (Range, error) {
		return Range{}, &errs.DateRangeError{
			RequestedStart: req.Start,
			RequestedEnd:   req.End,
			ResolvedStart:  start,
			ResolvedEnd:    end,
			DataStart:      dataStart,
			DataEnd:        dataEnd,
			Window:         window,
			Reason:         reason,
		}
	}

	switch {
	case start.Before(dataStart):
		return fail(fmt.Sprintf("start needs %d days of data before it", window-1))
	case start.After(dataEnd):
		return fail("start is after the end of the data")
	case req.Start != nil && truncate(*req.Start).After(dataEnd):
		return fail("start is after the end of the data")
	case end.Before(dataStart) || end.After(dataEnd):
		return fail("end is outside the data")
	case DaysBetween(dataStart, end) < window-1:
		return fail(fmt.Sprintf("fewer than %d days of data up to end", window))
	}

	return Range{Start: start, End: end}, nil
}

// Parse parses s with layout, reporting errs.ErrDateFormat on failure.
// The result is midnight UTC.
func Parse(s, layout string) (time.Time, error) {
	t, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, should be %s", errs.ErrDateFormat, s, humanLayout(layout))
	}

	return truncate(t), nil
}

// ParseOptional parses s with layout; an empty s yields nil.
func ParseOptional(s, layout string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil //nolint:nilnil
	}

	t, err := Parse(s, layout)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// CheckOrder returns errs.ErrDateOrder when both dates are set and start is
// not strictly earlier than end.
func CheckOrder(start, end *time.Time) error {
	if start == nil || end == nil {
		return nil
	}
	if !start.Before(*end) {
		return fmt.Errorf("%w: start %s, end %s", errs.ErrDateOrder,
			start.Format(CLILayout), end.Format(CLILayout))
	}

	return nil
}

// DaysBetween returns the whole number of days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(truncate(b).Sub(truncate(a)) / day)
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func humanLayout(layout string) string {
	r := strings.NewReplacer("2006", "yyyy", "01", "mm", "02", "dd")
	return r.Replace(layout)
}
