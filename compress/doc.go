// Package compress provides whole-file codecs for case-rate inputs and R0 result outputs.
//
// Daily case-rate exports are often archived compressed. Rather than asking
// users to decompress them first, rzero selects a codec from the file
// extension and applies it to the complete file payload:
//
//	.zst, .zstd   Zstandard (klauspost/compress, or valyala/gozstd with -tags gozstd)
//	.s2           S2 block (klauspost/compress/s2)
//	.lz4          LZ4 frame (pierrec/lz4)
//	.sz, .snappy  Snappy block (golang/snappy)
//	anything else no compression
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Usage
//
//	codec, ct := compress.ForPath("cases.csv.zst")
//	raw, err := codec.Decompress(fileBytes)
//	if err != nil {
//	    return fmt.Errorf("decompress %s input: %w", ct, err)
//	}
//
// # Thread Safety
//
// All codec implementations are stateless values backed by pooled encoders
// and may be shared across goroutines.
package compress
