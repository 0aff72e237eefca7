package format

import "strings"

type (
	CompressionType uint8
	OutputFormat    uint8
)

const (
	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd   CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionSnappy CompressionType = 0x5 // CompressionSnappy represents Snappy block compression.

	OutputCSV         OutputFormat = 0x1 // OutputCSV writes one row per date, one column per subregion.
	OutputJSON        OutputFormat = 0x2 // OutputJSON writes an array of {date, values} objects.
	OutputDiagnostics OutputFormat = 0x3 // OutputDiagnostics writes one row per (date, subregion) fit.
)

const (
	// DataDateLayout is the default layout of the date column in input files.
	DataDateLayout = "2006-01-02"
	// CLIDateLayout is the layout of user supplied start and end dates (dd-mm-yyyy).
	CLIDateLayout = "02-01-2006"
)

// compressionExts maps file extensions to their compression types.
var compressionExts = map[string]CompressionType{
	".zst":    CompressionZstd,
	".zstd":   CompressionZstd,
	".s2":     CompressionS2,
	".lz4":    CompressionLZ4,
	".sz":     CompressionSnappy,
	".snappy": CompressionSnappy,
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappy:
		return "Snappy"
	default:
		return "Unknown"
	}
}

// CompressionFromPath returns the compression type implied by the file extension.
// Unknown extensions map to CompressionNone.
func CompressionFromPath(path string) CompressionType {
	lower := strings.ToLower(path)
	for ext, c := range compressionExts {
		if strings.HasSuffix(lower, ext) {
			return c
		}
	}

	return CompressionNone
}

func (f OutputFormat) String() string {
	switch f {
	case OutputCSV:
		return "csv"
	case OutputJSON:
		return "json"
	case OutputDiagnostics:
		return "diagnostics"
	default:
		return "unknown"
	}
}

// ParseOutputFormat returns the OutputFormat for a case-insensitive name.
// Returns OutputFormat(0) for unknown names.
func ParseOutputFormat(name string) OutputFormat {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv", "":
		return OutputCSV
	case "json":
		return OutputJSON
	case "diagnostics":
		return OutputDiagnostics
	default:
		return OutputFormat(0)
	}
}
