package line

import (
	"fmt"

	"github.com/khooz/polyline/compress"
	"github.com/khooz/polyline/format"
	"github.com/khooz/polyline/internal/hash"
	"github.com/khooz/polyline/internal/pool"
)

// Pack returns the encoded polyline, latitude first, compressed with the given codec.
//
// Returns:
//   - []byte: The packed bytes, owned by the caller
//   - error: ErrUnsupportedCompression for an unknown type, or a compression error
func (p *Polyline) Pack(compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	encoded := p.AppendEncoded(make([]byte, 0, len(p.points)*bytesPerPointHint), format.OrderLatLng)

	packed, err := codec.Compress(encoded)
	if err != nil {
		return nil, fmt.Errorf("pack polyline with %s: %w", compression, err)
	}

	return packed, nil
}

// Unpack reverses Pack. Options apply as in Decode; the precision must match the one
// the polyline was packed with.
func Unpack(data []byte, compression format.CompressionType, opts ...Option) (*Polyline, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("unpack polyline with %s: %w", compression, err)
	}

	return Decode(string(raw), opts...)
}

// Fingerprint returns the xxHash64 of the encoded polyline.
//
// Polylines that encode identically, such as two decodes of the same string, have the
// same fingerprint.
func (p *Polyline) Fingerprint() uint64 {
	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	buf.B = p.AppendEncoded(buf.B, format.OrderLatLng)

	return hash.IDBytes(buf.B)
}
