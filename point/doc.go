// Package point provides normalized geographic points and their Encoded Polyline form.
//
// A Point is an immutable (latitude, longitude) value. Every constructor and every
// arithmetic operation normalizes the result by wrapping around the coordinate space
// rather than clamping: latitudes wrap with period 180 and longitudes with period 360,
// so 230 degrees of longitude becomes -130.
//
// The zero Point is the origin (0, 0), which is the base of every delta chain.
//
// # Encoding
//
// A point encodes as its two coordinates, each as a fixed-point value (see the encoding
// package), with no separator:
//
//	p := point.New(38.5, -120.2)
//	p.Encode() // "_p~iF~ps|U"
//
//	q, n, err := point.Decode("_p~iF~ps|U", format.OrderLatLng)
//	// q == p, n == 10
package point
