package errs

import (
	"fmt"
	"time"
)

// DisplayLayout is the date layout used in error messages (dd-mm-yyyy).
const DisplayLayout = "02-01-2006"

// DateRangeError reports a resolved date range that the data cannot satisfy.
//
// It carries every input needed to correct the request: the dates the user
// asked for, the range that request implies once the window lead-in is added,
// the dates actually present in the data, and the window length.
type DateRangeError struct {
	RequestedStart *time.Time
	RequestedEnd   *time.Time
	ResolvedStart  time.Time
	ResolvedEnd    time.Time
	DataStart      time.Time
	DataEnd        time.Time
	Window         int
	Reason         string
}

func (e *DateRangeError) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := fmt.Sprintf("%s: your start and end dates are %s to %s, which requires data running from %s to %s; "+
		"start and end dates of data are %s to %s; selected window is %d days",
		ErrDateRange,
		formatOptional(e.RequestedStart), formatOptional(e.RequestedEnd),
		e.ResolvedStart.Format(DisplayLayout), e.ResolvedEnd.Format(DisplayLayout),
		e.DataStart.Format(DisplayLayout), e.DataEnd.Format(DisplayLayout),
		e.Window)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}

	return msg
}

// Unwrap lets errors.Is match ErrDateRange.
func (e *DateRangeError) Unwrap() error {
	return ErrDateRange
}

// DomainError reports a non-positive or non-finite case rate inside a window.
type DomainError struct {
	Subregion string
	Date      string // Optional: label of the offending row
	Offset    int    // Index of the value within the window
	Value     float64
}

func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: value %v at window offset %d", ErrDomain, e.Value, e.Offset)
	if e.Subregion != "" {
		base += fmt.Sprintf(" (subregion=%s", e.Subregion)
		if e.Date != "" {
			base += fmt.Sprintf(", date=%s", e.Date)
		}
		base += ")"
	}

	return base
}

// Unwrap lets errors.Is match ErrDomain.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return "none"
	}

	return t.Format(DisplayLayout)
}
