package compress

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/format"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
	format.CompressionSnappy,
}

// caseRateCSV builds a CSV payload shaped like a real per-100K export.
func caseRateCSV(days int) []byte {
	var b strings.Builder
	b.WriteString("date,Timur Laut,Barat Daya,Seberang Perai Utara\n")
	for i := range days {
		fmt.Fprintf(&b, "2021-%02d-%02d,%.4f,%.4f,%.4f\n",
			1+i/28, 1+i%28, 10+float64(i)*0.37, 5+float64(i)*0.11, 7.5+float64(i%7))
	}

	return []byte(b.String())
}

func TestCodec_RoundTrip(t *testing.T) {
	payload := caseRateCSV(200)

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "test")
			require.NoError(t, err)
			require.Implements(t, (*Codec)(nil), codec)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.NotEmpty(t, compressed)
			if ct != format.CompressionNone {
				require.Less(t, len(compressed), len(payload))
			}

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range allTypes {
		if ct == format.CompressionNone || ct == format.CompressionZstd {
			continue
		}
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			out, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, out)

			out, err = codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, out)
		})
	}
}

func TestCodec_CorruptInput(t *testing.T) {
	garbage := bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 16)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4, format.CompressionSnappy} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xff), "output")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.Contains(t, err.Error(), "output")

	_, err = GetCodec(format.CompressionType(0xff))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestForPath(t *testing.T) {
	codec, ct := ForPath("data/penang_per100k.csv.zst")
	require.Equal(t, format.CompressionZstd, ct)
	require.IsType(t, ZstdCompressor{}, codec)

	codec, ct = ForPath("data/penang_per100k.csv")
	require.Equal(t, format.CompressionNone, ct)
	require.IsType(t, NoOpCompressor{}, codec)
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name            string
		stats           CompressionStats
		expectedRatio   float64
		expectedSavings float64
	}{
		{
			name:            "good compression",
			stats:           CompressionStats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 300},
			expectedRatio:   0.3,
			expectedSavings: 70.0,
		},
		{
			name:            "no compression benefit",
			stats:           CompressionStats{Algorithm: format.CompressionNone, OriginalSize: 500, CompressedSize: 500},
			expectedRatio:   1.0,
			expectedSavings: 0.0,
		},
		{
			name:            "zero original size",
			stats:           CompressionStats{Algorithm: format.CompressionLZ4, OriginalSize: 0, CompressedSize: 100},
			expectedRatio:   0.0,
			expectedSavings: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expectedRatio, tt.stats.CompressionRatio(), 0.001)
			require.InDelta(t, tt.expectedSavings, tt.stats.SpaceSavings(), 0.001)
		})
	}
}

func BenchmarkCodec_Compress(b *testing.B) {
	payload := caseRateCSV(365)
	for _, ct := range allTypes {
		codec, _ := GetCodec(ct)
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})
	}
}
