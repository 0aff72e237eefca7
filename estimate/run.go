package estimate

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/internal/options"
	"github.com/arloliu/rzero/regression"
	"github.com/arloliu/rzero/series"
)

// Run fits every window of s for each subregion and assembles the Table.
//
// Returns:
//   - errs.ErrInvalidWindow for window < 2
//   - errs.ErrInvalidSerialInterval for a non-positive serial interval
//   - errs.ErrUnknownSubregion when s lacks a requested column
//   - errs.ErrInsufficientData when s has fewer than window days
//   - *errs.DomainError when any window holds a non-positive rate
//   - ctx.Err() when ctx is cancelled between windows
func Run(ctx context.Context, s *series.Series, subregions []string, window int, serialInterval float64, opts ...Option) (*Table, error) {
	cfg := defaultRunConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if window < 2 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidWindow, window)
	}
	if !(serialInterval > 0) || math.IsInf(serialInterval, 1) {
		return nil, fmt.Errorf("%w: got %v", errs.ErrInvalidSerialInterval, serialInterval)
	}
	if len(subregions) == 0 {
		return nil, fmt.Errorf("%w: no subregions requested", errs.ErrInvalidConfig)
	}

	fitters := make([]*regression.Fitter, len(subregions))
	for i, name := range subregions {
		col, err := s.Column(name)
		if err != nil {
			return nil, err
		}
		fitters[i] = regression.NewFitter(name, col, s.Labels, serialInterval, cfg.fitOpts...)
	}

	n := s.Len()
	if n < window {
		return nil, fmt.Errorf("%w: %d days in range, window is %d days", errs.ErrInsufficientData, n, window)
	}
	rows := n - window + 1

	log := cfg.log.With("window", window, "subregions", len(subregions), "rows", rows)
	log.Debug("estimate.start", "workers", cfg.workers, "first", s.Labels[window-1], "last", s.Labels[n-1])
	began := time.Now()

	fits := make([][]regression.Fit, rows)
	for t := range fits {
		fits[t] = make([]regression.Fit, len(fitters))
	}

	var err error
	if cfg.workers > 1 && rows > 1 {
		err = fitParallel(ctx, fitters, fits, window, cfg.workers)
	} else {
		err = fitSequential(ctx, fitters, fits, window)
	}
	if err != nil {
		log.Debug("estimate.failed", "error", err)
		return nil, err
	}

	table := &Table{
		Subregions:     append([]string(nil), subregions...),
		Window:         window,
		SerialInterval: serialInterval,
		Precision:      cfg.precision,
		Rows:           make([]Row, rows),
	}
	for t := range rows {
		values := make([]float64, len(fitters))
		for j := range fitters {
			values[j] = Round(fits[t][j].R0, cfg.precision)
		}
		last := t + window - 1
		table.Rows[t] = Row{Date: s.Dates[last], Label: s.Labels[last], Values: values}
	}
	if cfg.diagnostics {
		table.Fits = fits
	}

	log.Info("estimate.done", "duration", time.Since(began))

	return table, nil
}

func fitSequential(ctx context.Context, fitters []*regression.Fitter, fits [][]regression.Fit, window int) error {
	for t := range fits {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fitRow(fitters, fits[t], t, window); err != nil {
			return err
		}
	}

	return nil
}

// fitParallel hands row offsets to workers. Each row slot is written by
// exactly one worker; the first error cancels the rest.
func fitParallel(ctx context.Context, fitters []*regression.Fitter, fits [][]regression.Fit, window, workers int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	offsets := make(chan int)
	workers = min(workers, len(fits))
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range offsets {
				if ctx.Err() != nil {
					continue
				}
				if err := fitRow(fitters, fits[t], t, window); err != nil {
					fail(err)
				}
			}
		}()
	}

feed:
	for t := range fits {
		select {
		case <-ctx.Done():
			break feed
		case offsets <- t:
		}
	}
	close(offsets)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}

	return ctx.Err()
}

func fitRow(fitters []*regression.Fitter, row []regression.Fit, t, window int) error {
	for j, f := range fitters {
		fit, err := f.At(t, window)
		if err != nil {
			return err
		}
		row[j] = fit
	}

	return nil
}

// Round rounds v to the given number of decimals, half to even, so
// Round(1.0625, 3) is 1.062. NoRounding returns v unchanged.
func Round(v float64, decimals int) float64 {
	if decimals == NoRounding {
		return v
	}
	scale := math.Pow10(decimals)

	return math.RoundToEven(v*scale) / scale
}
