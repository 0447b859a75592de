// Package compress provides in-memory codecs for packing encoded polylines.
//
// An encoded polyline is printable ASCII where every byte carries only 5 bits of payload,
// and long routes repeat the same short deltas many times. General purpose compressors
// therefore shrink it well, which matters when many polylines are kept in memory or
// handed to a storage layer owned by the caller.
//
// # Available Codecs
//
//   - None: NoOpCompressor returns its input unchanged
//   - Zstd: ZstdCompressor, best ratio; pure Go by default, cgo gozstd with the gozstd build tag
//   - S2: S2Compressor, fast with a moderate ratio
//   - LZ4: LZ4Compressor, fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress([]byte(encoded))
//	...
//	raw, err := codec.Decompress(packed)
//
// Most callers use line.Polyline.Pack and line.Unpack instead of this package directly.
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and decoders and are safe
// for concurrent use.
package compress
