// Package errs defines the sentinel errors returned by the polyline packages.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should match them with errors.Is:
//
//	pl, err := line.Decode(encoded)
//	if errors.Is(err, errs.ErrLength) {
//	    // truncated input
//	}
package errs

import "errors"

var (
	// ErrLength is returned when a pair does not hold exactly two coordinates, or when
	// encoded input runs out before a point is complete.
	ErrLength = errors.New("invalid length")

	// ErrType is returned when a polyline item is neither a coordinate pair nor a point.
	ErrType = errors.New("invalid input type")

	// ErrInvalidCharacter is returned when encoded input contains a byte outside [63, 126].
	ErrInvalidCharacter = errors.New("invalid character in encoded polyline")

	// ErrOverflow is returned when an encoded value does not fit in 64 bits.
	ErrOverflow = errors.New("encoded value overflows 64 bits")

	// ErrInvalidPrecision is returned for a fixed-point precision outside
	// [format.MinPrecision, format.MaxPrecision].
	ErrInvalidPrecision = errors.New("invalid precision")

	// ErrInvalidOrder is returned for an unknown coordinate order.
	ErrInvalidOrder = errors.New("invalid coordinate order")

	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
