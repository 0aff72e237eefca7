// Package rzero estimates a time-varying reproduction number (R0) per
// subregion from a daily case-rate series.
//
// For every window of consecutive days it fits ln(rate) = b*day + ln(a) by
// least squares and reports R0 = e^(b * serialInterval) on the window's last
// day.
//
// # Basic Usage
//
//	cfg, _ := config.New(config.WithWindow(14))
//	start, _ := daterange.Parse("14-04-2021", daterange.CLILayout)
//
//	result, err := rzero.Run(ctx, rzero.Request{
//	    Input: "penang_per100k.csv",
//	    Start: &start,
//	}, cfg)
//	if err != nil {
//	    return err
//	}
//	_, err = table.Save("r0.csv", result, format.OutputCSV)
//
// # Package Structure
//
// This package wires the building blocks together. Each step is usable on
// its own:
//
//   - series: load and restrict the case-rate table
//   - daterange: resolve requested dates against the data
//   - regression: fit a single window
//   - estimate: slide the window and assemble the result table
//   - table: write the result as CSV, JSON or diagnostics
package rzero

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/arloliu/rzero/config"
	"github.com/arloliu/rzero/daterange"
	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/estimate"
	"github.com/arloliu/rzero/internal/hash"
	"github.com/arloliu/rzero/series"
)

// Request identifies the input and the optional reporting dates.
type Request struct {
	// Input is the path of the case-rate CSV, possibly compressed.
	Input string
	// Reader, when set, is read instead of Input. It must be uncompressed.
	Reader io.Reader
	// Start is the first date to report an estimate for.
	Start *time.Time
	// End is the last date to report an estimate for.
	End *time.Time
}

// Plan describes what a run will compute without fitting anything.
type Plan struct {
	// Data spans the whole input.
	Data daterange.Bounds
	// Range is the resolved span of rows kept for fitting.
	Range daterange.Range
	// Days is the number of rows in Range.
	Days int
	// Estimates is the number of output rows, Days - window + 1.
	Estimates int
	// First and Last label the first and last output dates.
	First string
	Last  string
}

// Prepare checks the request, loads the configured columns and resolves the
// date range. The returned series is already restricted to Plan.Range.
func Prepare(req Request, cfg config.Config) (*series.Series, Plan, error) {
	if err := daterange.CheckOrder(req.Start, req.End); err != nil {
		return nil, Plan{}, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, Plan{}, err
	}

	s, err := load(req, cfg)
	if err != nil {
		return nil, Plan{}, err
	}

	rng, err := daterange.Resolve(s.Bounds(), daterange.Request{Start: req.Start, End: req.End}, cfg.Window)
	if err != nil {
		return nil, Plan{}, err
	}

	restricted := s.Restrict(rng)
	n := restricted.Len()
	if n < cfg.Window {
		return nil, Plan{}, fmt.Errorf("%w: the number of days (%d) between %s is less than the window (%d)",
			errs.ErrInsufficientData, n, rng, cfg.Window)
	}

	return restricted, Plan{
		Data:      s.Bounds(),
		Range:     rng,
		Days:      n,
		Estimates: n - cfg.Window + 1,
		First:     restricted.Labels[cfg.Window-1],
		Last:      restricted.Labels[n-1],
	}, nil
}

// Run prepares the request and estimates R0 for every configured column.
// Options are applied after the configured worker count.
func Run(ctx context.Context, req Request, cfg config.Config, opts ...estimate.Option) (*estimate.Table, error) {
	s, _, err := Prepare(req, cfg)
	if err != nil {
		return nil, err
	}

	runOpts := make([]estimate.Option, 0, len(opts)+1)
	runOpts = append(runOpts, estimate.WithWorkers(cfg.Workers))
	runOpts = append(runOpts, opts...)

	return estimate.Run(ctx, s, cfg.Columns(), cfg.Window, cfg.SerialInterval, runOpts...)
}

// SubregionID returns the 64-bit hash used to index a subregion column.
func SubregionID(name string) uint64 {
	return hash.ID(name)
}

func load(req Request, cfg config.Config) (*series.Series, error) {
	opts := []series.ReadOption{
		series.WithDateColumn(cfg.DateColumn),
		series.WithDateLayout(cfg.DateLayout),
		series.WithColumns(cfg.Columns()...),
	}

	if req.Reader != nil {
		return series.ReadCSV(req.Reader, opts...)
	}

	return series.LoadCSV(req.Input, opts...)
}
