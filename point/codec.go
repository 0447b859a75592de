package point

import (
	"fmt"

	"github.com/khooz/polyline/encoding"
	"github.com/khooz/polyline/errs"
	"github.com/khooz/polyline/format"
)

// EncodeAttr encodes a single coordinate at the default precision of 5 decimals.
//
// Example:
//
//	point.EncodeAttr(-179.9832104) // "`~oia@"
//	point.EncodeAttr(0)            // "?"
func EncodeAttr(value float64) string {
	return encoding.EncodeValue(encoding.Quantize(value, format.DefaultPrecision))
}

// Encode returns the point's encoding, latitude first, at the default precision.
func (p Point) Encode() string {
	var buf [2 * encoding.MaxValueSize]byte
	return string(p.AppendEncoded(buf[:0], format.OrderLatLng, format.DefaultPrecision))
}

// AppendEncoded appends the point's two encoded coordinates to dst.
//
// Parameters:
//   - dst: Destination slice, may be nil
//   - order: OrderLngLat writes longitude first, anything else writes latitude first
//   - precision: Number of decimals kept, must be valid (see encoding.CheckPrecision)
//
// Returns:
//   - []byte: The extended slice
func (p Point) AppendEncoded(dst []byte, order format.CoordOrder, precision int) []byte {
	first, second := p.lat, p.lng
	if order == format.OrderLngLat {
		first, second = p.lng, p.lat
	}
	dst = encoding.AppendCoord(dst, first, precision)

	return encoding.AppendCoord(dst, second, precision)
}

// Read consumes exactly two coordinates from r and builds a point from them.
//
// On failure the reader is left at the start of the value that could not be decoded.
//
// Returns:
//   - Point: The decoded, normalized point
//   - error: ErrLength if r ends before both coordinates are complete, ErrInvalidOrder
//     for an unknown order, or any error from encoding.Reader.Next
func Read(r *encoding.Reader, order format.CoordOrder, precision int) (Point, error) {
	if order != format.OrderLatLng && order != format.OrderLngLat {
		return Point{}, fmt.Errorf("%w: %s", errs.ErrInvalidOrder, order)
	}

	var coords [2]float64
	for i := range coords {
		v, err := r.NextCoord(precision)
		if err != nil {
			return Point{}, fmt.Errorf("expected 2 coordinates for a point, got %d: %w", i, err)
		}
		coords[i] = v
	}

	if order == format.OrderLngLat {
		return New(coords[1], coords[0]), nil
	}

	return New(coords[0], coords[1]), nil
}

// Decode decodes one point from the front of data at the default precision.
//
// Trailing bytes after the point are left alone; the returned count tells the caller
// where the next point starts.
//
// Returns:
//   - Point: The decoded point
//   - int: Number of bytes consumed (0 on error)
//   - error: ErrLength if data holds fewer than two complete coordinates
func Decode(data string, order format.CoordOrder) (Point, int, error) {
	r := encoding.NewReader(data)

	p, err := Read(r, order, format.DefaultPrecision)
	if err != nil {
		return Point{}, 0, err
	}

	return p, r.Pos(), nil
}
