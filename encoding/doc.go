// Package encoding provides the single-value primitives of Google's Encoded Polyline
// Algorithm Format.
//
// A coordinate is stored as a signed fixed-point integer: the degree value is multiplied by
// 10^precision and rounded half away from zero. The integer is then sign-folded, split into
// 5-bit chunks and written low-order chunk first as printable ASCII:
//
//  1. Fold: shift left by one bit and complement the result when the value is negative,
//     so small magnitudes of either sign produce small unsigned values.
//  2. Chunk: take 5 bits at a time from the least significant end.
//  3. Continuation: OR 0x20 into every chunk except the last one.
//  4. Offset: add 63 so every byte lands in the printable range [63, 126].
//
// The value 0 encodes as "?" and -179.9832104 at precision 5 encodes as "`~oia@".
//
// # Writing
//
// AppendValue appends an already quantized integer and AppendCoord quantizes a float first.
// Both append to a caller-owned slice so a whole polyline can be built in one buffer:
//
//	buf := make([]byte, 0, 64)
//	buf = encoding.AppendCoord(buf, 38.5, format.DefaultPrecision)
//	buf = encoding.AppendCoord(buf, -120.2, format.DefaultPrecision)
//	// string(buf) == "_p~iF~ps|U"
//
// # Reading
//
// Reader walks an encoded string with an explicit position index. Each call to Next
// consumes exactly one value and leaves the position on the first byte of the next one:
//
//	r := encoding.NewReader("_p~iF~ps|U")
//	for r.Len() > 0 {
//	    v, err := r.Next()
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(encoding.Dequantize(v, format.DefaultPrecision))
//	}
//
// # Thread Safety
//
// The package-level functions are safe for concurrent use. A Reader holds a position and
// must not be shared between goroutines.
package encoding
