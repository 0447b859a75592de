package point

import (
	"fmt"
	"slices"

	"github.com/khooz/polyline/errs"
	"github.com/khooz/polyline/format"
)

type inputKind uint8

const (
	kindNone inputKind = iota
	kindPair
	kindPoint
)

// Input is one polyline item: either a raw coordinate pair or an already built Point.
//
// The zero Input holds neither and is rejected with ErrType.
type Input struct {
	pair  []float64
	point Point
	kind  inputKind
}

// Pair wraps raw coordinates. The length is checked when the input is resolved.
func Pair(values ...float64) Input {
	return Input{kind: kindPair, pair: slices.Clone(values)}
}

// Typed wraps an existing point.
func Typed(p Point) Input {
	return Input{kind: kindPoint, point: p}
}

// Pairs wraps every coordinate pair of coords.
func Pairs(coords [][]float64) []Input {
	inputs := make([]Input, len(coords))
	for i, c := range coords {
		inputs[i] = Pair(c...)
	}

	return inputs
}

// Points wraps every point of points.
func Points(points []Point) []Input {
	inputs := make([]Input, len(points))
	for i, p := range points {
		inputs[i] = Typed(p)
	}

	return inputs
}

// IsPair reports whether the input holds raw coordinates.
func (in Input) IsPair() bool {
	return in.kind == kindPair
}

// IsPoint reports whether the input holds a point.
func (in Input) IsPoint() bool {
	return in.kind == kindPoint
}

// Resolve returns the point the input stands for.
//
// Raw pairs are read in the given order. Typed points are returned as is.
//
// Returns:
//   - Point: The resolved point
//   - error: ErrLength for a pair that is not exactly two values, ErrType for the zero Input
func (in Input) Resolve(order format.CoordOrder) (Point, error) {
	switch in.kind {
	case kindPair:
		return FromArray(in.pair, order)
	case kindPoint:
		return in.point, nil
	default:
		return Point{}, fmt.Errorf("%w: expected pair or point, got empty input", errs.ErrType)
	}
}
