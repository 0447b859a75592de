package line

import (
	"fmt"
	"iter"

	"github.com/khooz/polyline/encoding"
	"github.com/khooz/polyline/format"
	"github.com/khooz/polyline/internal/pool"
	"github.com/khooz/polyline/point"
)

// bytesPerPointHint is a rough size of one encoded delta, used to pre-size buffers.
const bytesPerPointHint = 8

// Encode returns the polyline in Encoded Polyline format, latitude first.
func (p *Polyline) Encode() string {
	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	buf.Grow(len(p.points) * bytesPerPointHint)
	buf.B = p.AppendEncoded(buf.B, format.OrderLatLng)

	return buf.String()
}

// AppendEncoded appends the encoded delta chain to dst.
//
// Points are snapped to the precision grid before deltas are taken, so rounding error
// does not build up along the chain: decoding recovers every point to within half a unit
// of the last kept decimal.
//
// Parameters:
//   - dst: Destination slice, may be nil
//   - order: OrderLngLat writes each delta longitude first
//
// Returns:
//   - []byte: The extended slice
func (p *Polyline) AppendEncoded(dst []byte, order format.CoordOrder) []byte {
	var prev point.Point
	for _, pt := range p.points {
		snapped := pt.Snap(p.precision)
		dst = snapped.Rebase(prev).AppendEncoded(dst, order, p.precision)
		prev = snapped
	}

	return dst
}

// Decode parses an encoded polyline.
//
// The whole input must consist of complete points; the empty string yields an empty
// polyline. WithOrder selects the coordinate order of the input and WithPrecision its
// number of decimals.
//
// Returns:
//   - *Polyline: The decoded polyline
//   - error: ErrLength for a tail that does not complete a point, ErrInvalidCharacter,
//     ErrOverflow, or a configuration error
func Decode(data string, opts ...Option) (*Polyline, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	pts := make([]point.Point, 0, len(data)/bytesPerPointHint+1)
	for pt, err := range scan(data, cfg) {
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}

	return &Polyline{points: pts, precision: cfg.precision}, nil
}

// Scan returns an iterator over the absolute points of an encoded polyline.
//
// Points are yielded as soon as they are decoded. On malformed input the iterator yields
// one final zero point with the error and stops.
func Scan(data string, opts ...Option) iter.Seq2[point.Point, error] {
	cfg, err := newConfig(opts...)
	if err != nil {
		return func(yield func(point.Point, error) bool) {
			yield(point.Point{}, err)
		}
	}

	return scan(data, cfg)
}

func scan(data string, cfg *Config) iter.Seq2[point.Point, error] {
	return func(yield func(point.Point, error) bool) {
		r := encoding.NewReader(data)

		var cur point.Point
		for i := 0; r.Len() > 0; i++ {
			delta, err := point.Read(r, cfg.order, cfg.precision)
			if err != nil {
				yield(point.Point{}, fmt.Errorf("point %d: %w", i, err))
				return
			}
			cur = delta.Move(cur)

			if !yield(cur, nil) {
				return
			}
		}
	}
}
