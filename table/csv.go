package table

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/rzero/estimate"
	"github.com/arloliu/rzero/internal/options"
	"github.com/arloliu/rzero/internal/pool"
)

// DiagnosticsHeader is the header of the diagnostics layout.
// fitted_rate is the fitted curve evaluated on the window's last day.
var DiagnosticsHeader = []string{"date", "subregion", "slope", "intercept", "r0", "r_squared", "rmse", "fitted_rate"}

// ErrNoDiagnostics is returned by WriteDiagnostics for a table built without
// estimate.WithDiagnostics.
var ErrNoDiagnostics = errors.New("table has no diagnostics")

// WriteCSV writes one row per date. The header is ",date,<subregions...>"
// with the row index, or "date,<subregions...>" with WithIndex(false).
func WriteCSV(w io.Writer, t *estimate.Table, opts ...Option) error {
	cfg := defaultWriteConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	lead := 1
	if cfg.index {
		lead = 2
	}

	rec, release := pool.GetStringSlice(lead + len(t.Subregions))
	defer release()

	if cfg.index {
		rec[0] = ""
	}
	rec[lead-1] = "date"
	copy(rec[lead:], t.Subregions)
	if err := cw.Write(rec); err != nil {
		return err
	}

	for i, row := range t.Rows {
		if cfg.index {
			rec[0] = strconv.Itoa(i)
		}
		rec[lead-1] = row.Label
		for j, v := range row.Values {
			rec[lead+j] = FormatValue(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteDiagnostics writes one row per (date, subregion) with the unrounded fit.
func WriteDiagnostics(w io.Writer, t *estimate.Table) error {
	if !t.HasDiagnostics() {
		return ErrNoDiagnostics
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(DiagnosticsHeader); err != nil {
		return err
	}

	rec, release := pool.GetStringSlice(len(DiagnosticsHeader))
	defer release()

	lastDay := float64(t.Window - 1)
	for i, row := range t.Rows {
		for j, sub := range t.Subregions {
			fit := t.Fits[i][j]
			rec[0] = row.Label
			rec[1] = sub
			rec[2] = formatFull(fit.Slope)
			rec[3] = formatFull(fit.Intercept)
			rec[4] = formatFull(fit.R0)
			rec[5] = formatFull(fit.RSquared)
			rec[6] = formatFull(fit.RMSE)
			rec[7] = formatFull(fit.Estimator().Estimate(lastDay))
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}

	cw.Flush()

	return cw.Error()
}

// FormatValue prints v in the shortest form that round-trips, keeping a
// trailing ".0" on whole numbers ("1.0", "1.673").
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.ContainsRune(s, '.') {
		return s
	}

	return s + ".0"
}

func formatFull(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
