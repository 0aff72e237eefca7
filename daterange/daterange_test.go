package daterange

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rzero/errs"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

// 1 Apr 2021 .. 30 Apr 2021, 30 days.
var april = Bounds{Start: date(2021, 4, 1), End: date(2021, 4, 30)}

func TestResolve_Success(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		window    int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "no dates uses data bounds",
			window:    14,
			wantStart: april.Start,
			wantEnd:   april.End,
		},
		{
			name:      "start exactly window-1 after data start",
			req:       Request{Start: ptr(date(2021, 4, 14))},
			window:    14,
			wantStart: april.Start,
			wantEnd:   april.End,
		},
		{
			name:      "start and end inside data",
			req:       Request{Start: ptr(date(2021, 4, 20)), End: ptr(date(2021, 4, 25))},
			window:    7,
			wantStart: date(2021, 4, 14),
			wantEnd:   date(2021, 4, 25),
		},
		{
			name:      "end only",
			req:       Request{End: ptr(date(2021, 4, 14))},
			window:    14,
			wantStart: april.Start,
			wantEnd:   date(2021, 4, 14),
		},
		{
			name:      "start on data end",
			req:       Request{Start: ptr(date(2021, 4, 30))},
			window:    14,
			wantStart: date(2021, 4, 17),
			wantEnd:   april.End,
		},
		{
			name:      "time of day is ignored",
			req:       Request{Start: ptr(time.Date(2021, 4, 14, 18, 30, 0, 0, time.UTC))},
			window:    14,
			wantStart: april.Start,
			wantEnd:   april.End,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Resolve(april, tt.req, tt.window)
			require.NoError(t, err)
			require.Equal(t, tt.wantStart, r.Start)
			require.Equal(t, tt.wantEnd, r.End)
		})
	}
}

func TestResolve_DateRangeError(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		req    Request
		window int
	}{
		{
			name:   "start one day short of lead-in",
			bounds: april,
			req:    Request{Start: ptr(date(2021, 4, 13))},
			window: 14,
		},
		{
			name:   "start after data end",
			bounds: april,
			req:    Request{Start: ptr(date(2021, 5, 20))},
			window: 14,
		},
		{
			name:   "user start after data end but lead-in inside data",
			bounds: april,
			req:    Request{Start: ptr(date(2021, 5, 2))},
			window: 7,
		},
		{
			name:   "end after data end",
			bounds: april,
			req:    Request{End: ptr(date(2021, 5, 1))},
			window: 14,
		},
		{
			name:   "end before data start",
			bounds: april,
			req:    Request{End: ptr(date(2021, 3, 31))},
			window: 2,
		},
		{
			name:   "end too close to data start",
			bounds: april,
			req:    Request{End: ptr(date(2021, 4, 13))},
			window: 14,
		},
		{
			name:   "data shorter than window",
			bounds: Bounds{Start: date(2021, 4, 1), End: date(2021, 4, 13)},
			window: 14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.bounds, tt.req, tt.window)
			require.ErrorIs(t, err, errs.ErrDateRange)

			var dre *errs.DateRangeError
			require.True(t, errors.As(err, &dre))
			require.Equal(t, tt.window, dre.Window)
			require.Equal(t, tt.bounds.Start, dre.DataStart)
			require.Equal(t, tt.bounds.End, dre.DataEnd)
			require.NotEmpty(t, dre.Reason)
		})
	}
}

func TestResolve_ErrorMessage(t *testing.T) {
	_, err := Resolve(april, Request{Start: ptr(date(2021, 4, 10))}, 14)
	require.Error(t, err)

	msg := err.Error()
	require.Contains(t, msg, "10-04-2021")
	require.Contains(t, msg, "28-03-2021")
	require.Contains(t, msg, "01-04-2021 to 30-04-2021")
	require.Contains(t, msg, "14 days")
	require.Contains(t, msg, "none")
}

func TestResolve_InvalidWindow(t *testing.T) {
	for _, w := range []int{-1, 0, 1} {
		_, err := Resolve(april, Request{}, w)
		require.ErrorIs(t, err, errs.ErrInvalidWindow)
	}
}

func TestRange(t *testing.T) {
	r := Range{Start: date(2021, 4, 1), End: date(2021, 4, 14)}
	require.Equal(t, 14, r.Days())
	require.True(t, r.Contains(date(2021, 4, 1)))
	require.True(t, r.Contains(date(2021, 4, 14)))
	require.False(t, r.Contains(date(2021, 4, 15)))
	require.False(t, r.Contains(date(2021, 3, 31)))
	require.Equal(t, "01-04-2021 to 14-04-2021", r.String())

	// Leap day and month boundary.
	r = Range{Start: date(2020, 2, 27), End: date(2020, 3, 2)}
	require.Equal(t, 5, r.Days())
}

func TestParse(t *testing.T) {
	got, err := Parse("14-04-2021", CLILayout)
	require.NoError(t, err)
	require.Equal(t, date(2021, 4, 14), got)

	got, err = Parse(" 2021-04-14 ", "2006-01-02")
	require.NoError(t, err)
	require.Equal(t, date(2021, 4, 14), got)

	for _, bad := range []string{"2021-04-14", "31-02-2021", "14/04/2021", ""} {
		_, err := Parse(bad, CLILayout)
		require.ErrorIs(t, err, errs.ErrDateFormat, bad)
		require.Contains(t, err.Error(), "dd-mm-yyyy")
	}
}

func TestParseOptional(t *testing.T) {
	got, err := ParseOptional("", CLILayout)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = ParseOptional("01-05-2021", CLILayout)
	require.NoError(t, err)
	require.Equal(t, date(2021, 5, 1), *got)

	_, err = ParseOptional("May 1", CLILayout)
	require.ErrorIs(t, err, errs.ErrDateFormat)
}

func TestCheckOrder(t *testing.T) {
	a, b := date(2021, 4, 1), date(2021, 4, 2)

	require.NoError(t, CheckOrder(nil, nil))
	require.NoError(t, CheckOrder(&a, nil))
	require.NoError(t, CheckOrder(nil, &b))
	require.NoError(t, CheckOrder(&a, &b))

	require.ErrorIs(t, CheckOrder(&b, &a), errs.ErrDateOrder)
	require.ErrorIs(t, CheckOrder(&a, &a), errs.ErrDateOrder)
}

func TestDaysBetween(t *testing.T) {
	require.Equal(t, 0, DaysBetween(date(2021, 4, 1), date(2021, 4, 1)))
	require.Equal(t, 13, DaysBetween(date(2021, 4, 1), date(2021, 4, 14)))
	require.Equal(t, -1, DaysBetween(date(2021, 4, 2), date(2021, 4, 1)))
	require.Equal(t, 366, DaysBetween(date(2020, 1, 1), date(2021, 1, 1)))
}
