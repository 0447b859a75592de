package encoding

import (
	"fmt"
	"math"

	"github.com/khooz/polyline/errs"
	"github.com/khooz/polyline/format"
)

const (
	// charOffset is added to every 6-bit group to make it printable.
	charOffset = 63
	// chunkBits is the payload width of one encoded character.
	chunkBits = 5
	chunkMask = 0x1f
	// continuationBit marks that more chunks of the same value follow.
	continuationBit = 0x20

	minChar = charOffset
	maxChar = charOffset + (continuationBit | chunkMask)
)

// MaxValueSize is the longest encoding of a single int64 value in bytes.
const MaxValueSize = 13

var pow10 = [format.MaxPrecision + 1]float64{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

// CheckPrecision reports whether precision is a supported number of decimal places.
func CheckPrecision(precision int) error {
	if precision < format.MinPrecision || precision > format.MaxPrecision {
		return fmt.Errorf("%w: %d is outside [%d, %d]",
			errs.ErrInvalidPrecision, precision, format.MinPrecision, format.MaxPrecision)
	}

	return nil
}

// Factor returns 10^precision. The precision must already be valid.
func Factor(precision int) float64 {
	return pow10[precision]
}

// Quantize scales a degree value to its fixed-point integer, rounding half away from zero.
func Quantize(value float64, precision int) int64 {
	return int64(math.Round(value * pow10[precision]))
}

// Dequantize converts a fixed-point integer back to degrees.
func Dequantize(n int64, precision int) float64 {
	return float64(n) / pow10[precision]
}

// fold maps a signed value to the unsigned pattern that gets chunked.
// Negative values become the complement of their doubled value.
func fold(n int64) uint64 {
	u := uint64(n) << 1 //nolint:gosec
	if n < 0 {
		u = ^u
	}

	return u
}

// unfold reverses fold.
func unfold(u uint64) int64 {
	n := int64(u >> 1) //nolint:gosec
	if u&1 != 0 {
		n = ^n
	}

	return n
}

// ValueSize returns the number of bytes AppendValue writes for n.
func ValueSize(n int64) int {
	u := fold(n)
	size := 1
	for u >= continuationBit {
		u >>= chunkBits
		size++
	}

	return size
}

// AppendValue appends the encoded form of the fixed-point integer n to dst.
//
// Parameters:
//   - dst: Destination slice, may be nil
//   - n: Quantized coordinate or coordinate delta
//
// Returns:
//   - []byte: The extended slice
func AppendValue(dst []byte, n int64) []byte {
	u := fold(n)
	for u >= continuationBit {
		dst = append(dst, byte(continuationBit|(u&chunkMask))+charOffset)
		u >>= chunkBits
	}

	return append(dst, byte(u)+charOffset)
}

// EncodeValue returns the encoded form of the fixed-point integer n.
func EncodeValue(n int64) string {
	var buf [MaxValueSize]byte
	return string(AppendValue(buf[:0], n))
}

// AppendCoord quantizes value at the given precision and appends its encoding to dst.
func AppendCoord(dst []byte, value float64, precision int) []byte {
	return AppendValue(dst, Quantize(value, precision))
}
