package point

import (
	"fmt"
	"math"
	"strconv"

	"github.com/khooz/polyline/encoding"
	"github.com/khooz/polyline/errs"
	"github.com/khooz/polyline/format"
)

const (
	latHalfSpan = 90.0
	lngHalfSpan = 180.0
)

// Point is a normalized latitude/longitude pair in degrees.
type Point struct {
	lat float64
	lng float64
}

// New creates a normalized point.
func New(lat, lng float64) Point {
	lat, lng = Normalize(lat, lng)
	return Point{lat: lat, lng: lng}
}

// Normalize wraps latitude and longitude around their coordinate ranges.
//
// Latitude wraps with period 180 and longitude with period 360. Values that are already
// inside the range are returned unchanged. The exact boundaries flip sign: 90 becomes -90,
// -90 becomes 90, and likewise for 180 and -180 in longitude.
//
// Example:
//
//	lat, lng := point.Normalize(120, 230) // -60, -130
func Normalize(lat, lng float64) (float64, float64) {
	return wrap(lat, latHalfSpan), wrap(lng, lngHalfSpan)
}

// wrap subtracts whole periods from v. The number of periods is counted from
// floor(v+half) for non-negative values and ceil(v-half) for negative ones and
// truncated toward zero.
func wrap(v, half float64) float64 {
	var k float64
	if v < 0 {
		k = math.Ceil(v - half)
	} else {
		k = math.Floor(v + half)
	}

	period := 2 * half

	return v - math.Trunc(k/period)*period
}

// FromArray creates a point from a two-element pair in the given order.
//
// Returns:
//   - Point: The normalized point
//   - error: ErrLength if data does not hold exactly two values, ErrInvalidOrder
//     for an unknown order
func FromArray(data []float64, order format.CoordOrder) (Point, error) {
	if len(data) != 2 {
		return Point{}, fmt.Errorf("%w: expected array length of 2, got %d", errs.ErrLength, len(data))
	}

	switch order {
	case format.OrderLatLng:
		return New(data[0], data[1]), nil
	case format.OrderLngLat:
		return New(data[1], data[0]), nil
	default:
		return Point{}, fmt.Errorf("%w: %s", errs.ErrInvalidOrder, order)
	}
}

// Lat returns the latitude in degrees.
func (p Point) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p Point) Lng() float64 {
	return p.lng
}

// Array returns the coordinates as a pair in the given order.
// Any order other than OrderLngLat yields [lat, lng].
func (p Point) Array(order format.CoordOrder) [2]float64 {
	if order == format.OrderLngLat {
		return [2]float64{p.lng, p.lat}
	}

	return [2]float64{p.lat, p.lng}
}

// Add returns the normalized component-wise sum of a and b.
func Add(a, b Point) Point {
	return New(a.lat+b.lat, a.lng+b.lng)
}

// Sub returns the normalized component-wise difference a - b.
func Sub(a, b Point) Point {
	return New(a.lat-b.lat, a.lng-b.lng)
}

// Move returns p displaced by the delta other.
// It turns a delta into an absolute point when other is the previous absolute point.
func (p Point) Move(other Point) Point {
	return Add(p, other)
}

// Rebase returns p expressed as a delta from base.
func (p Point) Rebase(base Point) Point {
	return Sub(p, base)
}

// Snap rounds both coordinates to the fixed-point grid of the given precision.
// The precision must be valid (see encoding.CheckPrecision).
func (p Point) Snap(precision int) Point {
	return New(
		encoding.Dequantize(encoding.Quantize(p.lat, precision), precision),
		encoding.Dequantize(encoding.Quantize(p.lng, precision), precision),
	)
}

// Equal reports whether both coordinates are exactly equal.
func (p Point) Equal(o Point) bool {
	return p.lat == o.lat && p.lng == o.lng
}

// ApproxEqual reports whether both coordinates differ by at most tolerance.
func (p Point) ApproxEqual(o Point, tolerance float64) bool {
	return math.Abs(p.lat-o.lat) <= tolerance && math.Abs(p.lng-o.lng) <= tolerance
}

// String renders the point as "(lat, lng)".
func (p Point) String() string {
	return "(" + FormatCoord(p.lat) + ", " + FormatCoord(p.lng) + ")"
}

// FormatCoord renders a coordinate in its shortest decimal form at 14 significant digits,
// which hides the binary noise left by delta accumulation (40.7 rather than 40.700000000000003).
func FormatCoord(v float64) string {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 14, 64), 64)
	if r == 0 {
		r = 0 // drop negative zero
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}
