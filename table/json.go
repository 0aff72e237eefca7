package table

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/arloliu/rzero/estimate"
	"github.com/arloliu/rzero/internal/options"
)

type jsonRow struct {
	Date   string       `json:"date"`
	Values orderedFloats `json:"values"`
}

// orderedFloats marshals as an object whose keys keep subregion order.
type orderedFloats struct {
	keys   []string
	values []float64
}

func (o orderedFloats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// WriteJSON writes the table as an array of {"date", "values"} objects.
func WriteJSON(w io.Writer, t *estimate.Table, opts ...Option) error {
	cfg := defaultWriteConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	rows := make([]jsonRow, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = jsonRow{
			Date:   r.Label,
			Values: orderedFloats{keys: t.Subregions, values: r.Values},
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", cfg.indent)

	return enc.Encode(rows)
}
