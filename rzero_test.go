package rzero

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rzero/config"
	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/estimate"
	"github.com/arloliu/rzero/internal/hash"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func csvOf(n int, value func(day int) float64) string {
	var b strings.Builder
	b.WriteString("date,A\n")
	for i := range n {
		d := time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		fmt.Fprintf(&b, "%s,%v\n", d.Format("2006-01-02"), value(i))
	}

	return b.String()
}

func singleColumn(t *testing.T, window int) config.Config {
	t.Helper()
	cfg, err := config.New(config.WithSubregions("A"), config.WithWindow(window))
	require.NoError(t, err)

	return cfg
}

func TestRun_ConstantSeries(t *testing.T) {
	req := Request{Reader: strings.NewReader(csvOf(15, func(int) float64 { return 10 }))}

	table, err := Run(context.Background(), req, singleColumn(t, 14))
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	require.Equal(t, "2021-04-14", table.Rows[0].Label)
	require.Equal(t, []float64{1.0}, table.Rows[1].Values)
}

func TestRun_PenangTestdata(t *testing.T) {
	cfg, err := config.New(config.WithIncludeTotal(true), config.WithWorkers(3))
	require.NoError(t, err)

	table, err := Run(context.Background(), Request{
		Input: filepath.Join("testdata", "penang_per100k.csv"),
		Start: date(2021, 4, 15),
		End:   date(2021, 4, 18),
	}, cfg, estimate.WithDiagnostics(true))
	require.NoError(t, err)

	require.Equal(t, cfg.Columns(), table.Subregions)
	require.Equal(t, 4, table.Len())
	require.Equal(t, "2021-04-15", table.Rows[0].Label)
	require.Equal(t, "2021-04-18", table.Rows[3].Label)

	// Timur Laut doubles weekly, Barat Daya is flat.
	want := math.Round(math.Exp(math.Ln2/7*5.2)*1000) / 1000
	for _, row := range table.Rows {
		require.InDelta(t, want, row.Values[0], 0.0011)
		require.Equal(t, 1.0, row.Values[1])
	}
	require.True(t, table.HasDiagnostics())
}

func TestPrepare(t *testing.T) {
	in := csvOf(30, func(d int) float64 { return float64(d + 1) })

	s, plan, err := Prepare(Request{Reader: strings.NewReader(in), Start: date(2021, 4, 20)}, singleColumn(t, 14))
	require.NoError(t, err)

	require.Equal(t, *date(2021, 4, 1), plan.Data.Start)
	require.Equal(t, *date(2021, 4, 7), plan.Range.Start)
	require.Equal(t, *date(2021, 4, 30), plan.Range.End)
	require.Equal(t, 24, plan.Days)
	require.Equal(t, 11, plan.Estimates)
	require.Equal(t, "2021-04-20", plan.First)
	require.Equal(t, "2021-04-30", plan.Last)
	require.Equal(t, 24, s.Len())
}

func TestRun_Errors(t *testing.T) {
	in := csvOf(20, func(int) float64 { return 3 })
	zero := csvOf(20, func(d int) float64 {
		if d == 16 {
			return 0
		}
		return 3
	})

	tests := []struct {
		name string
		req  Request
		cfg  config.Config
		want error
	}{
		{"start after end", Request{Reader: strings.NewReader(in), Start: date(2021, 4, 18), End: date(2021, 4, 15)}, singleColumn(t, 14), errs.ErrDateOrder},
		{"equal dates", Request{Reader: strings.NewReader(in), Start: date(2021, 4, 15), End: date(2021, 4, 15)}, singleColumn(t, 14), errs.ErrDateOrder},
		{"start too early", Request{Reader: strings.NewReader(in), Start: date(2021, 4, 10)}, singleColumn(t, 14), errs.ErrDateRange},
		{"start after data", Request{Reader: strings.NewReader(in), Start: date(2021, 5, 10)}, singleColumn(t, 14), errs.ErrDateRange},
		{"end after data", Request{Reader: strings.NewReader(in), End: date(2021, 5, 1)}, singleColumn(t, 14), errs.ErrDateRange},
		{"window longer than data", Request{Reader: strings.NewReader(in)}, singleColumn(t, 21), errs.ErrDateRange},
		{"missing column", Request{Reader: strings.NewReader(in)}, config.Default(), errs.ErrUnknownSubregion},
		{"zero rate", Request{Reader: strings.NewReader(zero)}, singleColumn(t, 14), errs.ErrDomain},
		{"missing file", Request{Input: filepath.Join(t.TempDir(), "none.csv")}, singleColumn(t, 14), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Run(context.Background(), tt.req, tt.cfg)
			require.Nil(t, table)
			require.Error(t, err)
			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestRun_DomainErrorNamesSubregion(t *testing.T) {
	zero := csvOf(20, func(d int) float64 {
		if d == 16 {
			return 0
		}
		return 3
	})

	_, err := Run(context.Background(), Request{Reader: strings.NewReader(zero)}, singleColumn(t, 14))

	var de *errs.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "A", de.Subregion)
	require.Equal(t, "2021-04-17", de.Date)
}

func TestSubregionID(t *testing.T) {
	require.Equal(t, hash.ID("Timur Laut"), SubregionID("Timur Laut"))
	require.NotEqual(t, SubregionID("Timur Laut"), SubregionID("Barat Daya"))
}
