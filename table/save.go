package table

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/rzero/compress"
	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/estimate"
	"github.com/arloliu/rzero/format"
	"github.com/arloliu/rzero/internal/pool"
)

// Write serializes t to w in the given layout.
func Write(w io.Writer, t *estimate.Table, f format.OutputFormat, opts ...Option) error {
	switch f {
	case format.OutputCSV:
		return WriteCSV(w, t, opts...)
	case format.OutputJSON:
		return WriteJSON(w, t, opts...)
	case format.OutputDiagnostics:
		return WriteDiagnostics(w, t)
	default:
		return fmt.Errorf("%w: %v", errs.ErrUnsupportedFormat, f)
	}
}

// Output names one file to produce from a table.
type Output struct {
	Path    string
	Format  format.OutputFormat
	Options []Option
}

// Save writes t to path, compressed by extension (.zst, .s2, .lz4, .sz).
// The file is written to path+".tmp" first and renamed into place.
func Save(path string, t *estimate.Table, f format.OutputFormat, opts ...Option) (compress.CompressionStats, error) {
	stats, err := SaveAll(t, Output{Path: path, Format: f, Options: opts})
	if err != nil {
		return compress.CompressionStats{}, err
	}

	return stats[0], nil
}

// SaveAll writes t to every output. All outputs are rendered and written to
// their ".tmp" files before any is renamed into place, so a rendering or
// write failure leaves none of the target paths created.
func SaveAll(t *estimate.Table, outs ...Output) ([]compress.CompressionStats, error) {
	payloads := make([][]byte, len(outs))
	stats := make([]compress.CompressionStats, len(outs))
	for i, out := range outs {
		data, st, err := render(t, out)
		if err != nil {
			return nil, err
		}
		payloads[i] = data
		stats[i] = st
	}

	written := make([]string, 0, len(outs))
	removeAll := func() {
		for _, tmp := range written {
			_ = os.Remove(tmp)
		}
	}

	for i, out := range outs {
		tmp := out.Path + ".tmp"
		if err := os.WriteFile(tmp, payloads[i], 0o644); err != nil {
			_ = os.Remove(tmp)
			removeAll()
			return nil, fmt.Errorf("write %s: %w", tmp, err)
		}
		written = append(written, tmp)
	}

	for i, out := range outs {
		if err := os.Rename(written[i], out.Path); err != nil {
			removeAll()
			return nil, fmt.Errorf("rename %s: %w", out.Path, err)
		}
	}

	return stats, nil
}

func render(t *estimate.Table, out Output) ([]byte, compress.CompressionStats, error) {
	buf := pool.GetOutputBuffer()
	defer pool.PutOutputBuffer(buf)

	if err := Write(buf, t, out.Format, out.Options...); err != nil {
		return nil, compress.CompressionStats{}, fmt.Errorf("render %s: %w", out.Path, err)
	}

	codec, ct := compress.ForPath(out.Path)
	data, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, compress.CompressionStats{}, fmt.Errorf("compress %s: %w", out.Path, err)
	}

	return bytes.Clone(data), compress.CompressionStats{
		Algorithm:      ct,
		OriginalSize:   int64(buf.Len()),
		CompressedSize: int64(len(data)),
	}, nil
}
