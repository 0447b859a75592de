// Package line provides Polyline, an ordered sequence of points, and its conversion to and
// from Google's Encoded Polyline Algorithm Format.
//
// # Construction
//
// A polyline is built from items that are either raw coordinate pairs or typed points.
// By default every item is an absolute position:
//
//	pl, err := line.New([]point.Input{
//	    point.Pair(38.5, -120.2),
//	    point.Pair(40.7, -120.95),
//	    point.Typed(point.New(43.252, -126.453)),
//	})
//
// With WithDiffs each item is instead a delta from the previous position, the first one
// taken from the origin (0, 0). The polyline always stores absolute points.
//
// WithOrder(format.OrderLngLat) reads raw pairs as [lng, lat], as GeoJSON does.
//
// # Encoding
//
// Encode writes the delta chain between consecutive points, each delta as two fixed-point
// coordinates at the polyline's precision (5 decimals unless WithPrecision says otherwise):
//
//	pl.Encode() // "_p~iF~ps|U_ulLnnqC_mqNvxq`@"
//
// Decode reverses it and requires the whole input to form complete points:
//
//	pl, err := line.Decode("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
//
// Deltas wrap around the coordinate space like every other point operation, so a jump
// across the antimeridian encodes as the short way round.
//
// # Packing
//
// Pack compresses the encoded form with one of the compress codecs, and Fingerprint hashes
// it; polylines with the same encoding share a fingerprint.
//
// # Value Semantics
//
// A Polyline is never modified after construction. Every accessor returns copies, so a
// Polyline can be shared between goroutines freely.
package line
