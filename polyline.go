// Package polyline converts sequences of geographic coordinates to and from Google's
// Encoded Polyline Algorithm Format.
//
// An encoded polyline is a compact printable ASCII string. Each point is stored as the
// difference from the previous one, quantized to a fixed number of decimals (5 by
// default) and written as a variable-length, zig-zag folded integer in 5-bit chunks.
//
// # Core Features
//
//   - Immutable points with longitude and latitude wrap-around
//   - Polylines built from absolute points or from a delta chain
//   - Lat/lng or lng/lat coordinate order, configurable precision
//   - Streaming decode through iter.Seq2
//   - Optional compression of the encoded form (None, Zstd, S2, LZ4)
//   - xxHash64 fingerprints of encoded polylines
//   - Adapters to orb and s2 geometry types
//
// # Basic Usage
//
// Encoding a track:
//
//	import "github.com/khooz/polyline"
//
//	encoded, _ := polyline.EncodeCoords([][]float64{
//	    {38.5, -120.2},
//	    {40.7, -120.95},
//	    {43.252, -126.453},
//	})
//	// encoded == "_p~iF~ps|U_ulLnnqC_mqNvxq`@"
//
// Decoding it back:
//
//	coords, _ := polyline.DecodeCoords(encoded)
//	for _, c := range coords {
//	    fmt.Printf("lat=%f, lng=%f\n", c[0], c[1])
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the line and point
// packages, simplifying the most common use cases. For advanced usage such as
// streaming, packing or delta-chain construction, use the line package directly.
package polyline

import (
	"github.com/khooz/polyline/format"
	"github.com/khooz/polyline/internal/hash"
	"github.com/khooz/polyline/line"
	"github.com/khooz/polyline/point"
)

// New creates a polyline from pairs or typed points.
//
// It is a thin wrapper around line.New, see it for the accepted options.
//
// Example:
//
//	pl, err := polyline.New(point.Pairs([][]float64{{38.5, -120.2}, {40.7, -120.95}}))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pl.Encode())
func New(items []point.Input, opts ...line.Option) (*line.Polyline, error) {
	return line.New(items, opts...)
}

// Decode parses an encoded polyline.
//
// It is a thin wrapper around line.Decode.
func Decode(encoded string, opts ...line.Option) (*line.Polyline, error) {
	return line.Decode(encoded, opts...)
}

// EncodeCoords encodes a list of coordinate pairs.
//
// Each pair is read in the order selected by line.WithOrder (latitude first by default);
// with line.WithDiffs the pairs form a delta chain. The output is always latitude first.
//
// Parameters:
//   - coords: Coordinate pairs, each of length 2
//   - opts: Options forwarded to line.New
//
// Returns:
//   - string: The encoded polyline
//   - error: ErrLength if a pair does not hold exactly two values, or a configuration error
func EncodeCoords(coords [][]float64, opts ...line.Option) (string, error) {
	pl, err := line.New(point.Pairs(coords), opts...)
	if err != nil {
		return "", err
	}

	return pl.Encode(), nil
}

// DecodeCoords decodes an encoded polyline into [lat, lng] pairs.
//
// line.WithOrder selects the coordinate order of the encoded input; the returned pairs
// are always latitude first.
func DecodeCoords(encoded string, opts ...line.Option) ([][2]float64, error) {
	pl, err := line.Decode(encoded, opts...)
	if err != nil {
		return nil, err
	}

	return pl.Coords(format.OrderLatLng), nil
}

// Fingerprint returns the xxHash64 of an encoded polyline string.
//
// It equals Fingerprint of the polyline decoded from the same string, provided the string
// is in canonical latitude-first form.
//
// Example:
//
//	seen := make(map[uint64]struct{})
//	seen[polyline.Fingerprint(encoded)] = struct{}{}
func Fingerprint(encoded string) uint64 {
	return hash.ID(encoded)
}
