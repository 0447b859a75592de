package encoding

import (
	"fmt"

	"github.com/khooz/polyline/errs"
)

// maxShift is the bit position of the last chunk that can still fit in 64 bits.
// Only the low 4 bits of a chunk starting there are usable.
const maxShift = 60

// Reader consumes encoded values from a string.
//
// The reader never copies or mutates its input; it only advances a position index.
// A failed read leaves the position where the failing value started, so the caller
// can report the offset of the malformed value.
type Reader struct {
	data string
	pos  int
}

// NewReader creates a reader positioned at the start of data.
func NewReader(data string) *Reader {
	return &Reader{data: data}
}

// Reset repositions the reader at the start of data.
func (r *Reader) Reset(data string) {
	r.data = data
	r.pos = 0
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// Pos returns the offset of the next unread byte.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the unread tail of the input.
func (r *Reader) Remaining() string {
	return r.data[r.pos:]
}

// Next decodes one value and advances past it.
//
// Returns:
//   - int64: The fixed-point integer
//   - error: ErrLength if the input ends before the value's final chunk,
//     ErrInvalidCharacter for a byte outside [63, 126], ErrOverflow if the
//     value needs more than 64 bits
func (r *Reader) Next() (int64, error) {
	var (
		acc   uint64
		shift uint
	)

	for i := r.pos; ; i++ {
		if i >= len(r.data) {
			return 0, fmt.Errorf("%w: value at offset %d is truncated", errs.ErrLength, r.pos)
		}

		c := r.data[i]
		if c < minChar || c > maxChar {
			return 0, fmt.Errorf("%w: 0x%02x at offset %d", errs.ErrInvalidCharacter, c, i)
		}

		b := uint64(c - charOffset)
		chunk := b & chunkMask
		if shift > maxShift || (shift == maxShift && chunk > 0x0f) {
			return 0, fmt.Errorf("%w: value at offset %d", errs.ErrOverflow, r.pos)
		}
		acc |= chunk << shift
		shift += chunkBits

		if b&continuationBit == 0 {
			r.pos = i + 1
			return unfold(acc), nil
		}
	}
}

// NextCoord decodes one value and converts it to degrees at the given precision.
func (r *Reader) NextCoord(precision int) (float64, error) {
	n, err := r.Next()
	if err != nil {
		return 0, err
	}

	return Dequantize(n, precision), nil
}
