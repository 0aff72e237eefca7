package compress

// ZstdCompressor provides Zstandard compression for archived case-rate and
// result files. The output is a standard zstd frame, so files can be read
// back with the zstd command-line tool.
//
// Two implementations exist: a pure Go one based on klauspost/compress
// (default) and a cgo one based on valyala/gozstd (build tag "gozstd").
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
