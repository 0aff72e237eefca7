package estimate

import (
	"time"

	"github.com/arloliu/rzero/regression"
)

// Row is one output date with an R0 value per subregion.
type Row struct {
	// Date is the last day of the window.
	Date time.Time
	// Label is the input text of Date, echoed verbatim on output.
	Label string
	// Values are aligned with Table.Subregions.
	Values []float64
}

// Table is the Result Table: rows in chronological order, columns in
// configured subregion order.
type Table struct {
	Subregions     []string
	Window         int
	SerialInterval float64
	// Precision is the number of decimals Values were rounded to, or NoRounding.
	Precision int
	Rows      []Row
	// Fits[row][col] holds the unrounded fit when diagnostics were requested.
	Fits [][]regression.Fit
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns the values of the named subregion, or nil if absent.
func (t *Table) Column(subregion string) []float64 {
	idx := -1
	for i, s := range t.Subregions {
		if s == subregion {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Values[idx]
	}

	return out
}

// HasDiagnostics reports whether Fits is populated.
func (t *Table) HasDiagnostics() bool {
	return len(t.Fits) == len(t.Rows) && len(t.Rows) > 0
}
