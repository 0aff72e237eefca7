package series

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/rzero/compress"
	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/format"
	"github.com/arloliu/rzero/internal/options"
)

// fallbackLayouts are tried, in order, after the configured date layout.
var fallbackLayouts = []string{
	format.DataDateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	format.CLIDateLayout,
	"01/02/2006",
}

type readConfig struct {
	dateColumn string
	dateLayout string
	columns    []string
}

// ReadOption configures ReadCSV and LoadCSV.
type ReadOption = options.Option[*readConfig]

// WithDateColumn sets the header of the date column. Default "date".
func WithDateColumn(name string) ReadOption {
	return options.NoError(func(c *readConfig) {
		if name != "" {
			c.dateColumn = name
		}
	})
}

// WithDateLayout sets the first layout tried when parsing dates.
func WithDateLayout(layout string) ReadOption {
	return options.NoError(func(c *readConfig) {
		if layout != "" {
			c.dateLayout = layout
		}
	})
}

// WithColumns restricts loading to the named columns, in the given order.
// Other columns are ignored and need not be numeric. A missing column fails
// with errs.ErrUnknownSubregion.
func WithColumns(names ...string) ReadOption {
	return options.NoError(func(c *readConfig) {
		c.columns = slices.Clone(names)
	})
}

// ReadCSV reads a case-rate table with a header row.
//
// The date column is found by name; a leading column with an empty header
// (a row index written by dataframe tools) is skipped. Every remaining column,
// or only those chosen with WithColumns, must hold numbers.
func ReadCSV(r io.Reader, opts ...ReadOption) (*Series, error) {
	cfg := &readConfig{
		dateColumn: "date",
		dateLayout: format.DataDateLayout,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errs.ErrEmptySeries
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	dateIdx := slices.Index(header, cfg.dateColumn)
	if dateIdx < 0 {
		return nil, fmt.Errorf("%w: %q in header %v", errs.ErrMissingDateColumn, cfg.dateColumn, header)
	}

	names, positions, err := selectColumns(header, dateIdx, cfg.columns)
	if err != nil {
		return nil, err
	}

	var (
		dates  []time.Time
		labels []string
		values = make([][]float64, len(names))
	)

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		label := strings.TrimSpace(rec[dateIdx])
		d, err := parseDate(label, cfg.dateLayout)
		if err != nil {
			return nil, fmt.Errorf("line %d column %q: %w", line, cfg.dateColumn, err)
		}
		dates = append(dates, d)
		labels = append(labels, label)

		for i, pos := range positions {
			cell := strings.TrimSpace(rec[pos])
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %q: invalid number %q: %w", line, names[i], cell, err)
			}
			values[i] = append(values[i], v)
		}
	}

	s, err := New(dates, labels)
	if err != nil {
		return nil, err
	}
	for i, name := range names {
		if err := s.AddColumn(name, values[i]); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// LoadCSV reads a case-rate file, decompressing it by extension first
// (.zst, .s2, .lz4, .sz).
func LoadCSV(path string, opts ...ReadOption) (*Series, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	codec, ct := compress.ForPath(path)
	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: decompress %s: %w", path, ct, err)
	}

	s, err := ReadCSV(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return s, nil
}

func selectColumns(header []string, dateIdx int, want []string) ([]string, []int, error) {
	if len(want) > 0 {
		positions := make([]int, len(want))
		for i, name := range want {
			pos := slices.Index(header, name)
			if pos < 0 || pos == dateIdx {
				return nil, nil, fmt.Errorf("%w: %q not in header %v", errs.ErrUnknownSubregion, name, header)
			}
			positions[i] = pos
		}

		return slices.Clone(want), positions, nil
	}

	var (
		names     []string
		positions []int
	)
	for i, h := range header {
		if i == dateIdx || (i == 0 && h == "") {
			continue
		}
		names = append(names, h)
		positions = append(positions, i)
	}

	return names, positions, nil
}

// parseDate tries preferred first, then the fallbacks.
func parseDate(s, preferred string) (time.Time, error) {
	if t, err := time.Parse(preferred, s); err == nil {
		return midnight(t), nil
	}
	for _, layout := range fallbackLayouts {
		if layout == preferred {
			continue
		}
		if t, err := time.Parse(layout, s); err == nil {
			return midnight(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", errs.ErrDateFormat, s)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
