package compress

// ZstdCompressor provides Zstandard compression.
//
// It gives the best ratio of the built-in codecs and suits polylines that are packed once
// and read rarely. The implementation is klauspost/compress by default; building with the
// gozstd tag (and cgo) switches to the valyala/gozstd bindings. Both produce standard
// zstd frames, so data packed by one can be unpacked by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
