package line

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/khooz/polyline/format"
	"github.com/khooz/polyline/point"
)

// Polyline is an ordered sequence of absolute points.
type Polyline struct {
	points    []point.Point
	precision int
}

// New creates a polyline from items.
//
// Items are absolute points unless WithDiffs is given. Construction stops at the first
// invalid item and no polyline is returned.
//
// Parameters:
//   - items: Raw pairs or typed points, in order
//   - opts: WithDiffs, WithOrder, WithPrecision
//
// Returns:
//   - *Polyline: The new polyline
//   - error: ErrLength or ErrType naming the failing index, or a configuration error
func New(items []point.Input, opts ...Option) (*Polyline, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	var pts []point.Point
	if cfg.diffs {
		pts, err = fromDiffs(items, cfg.order)
	} else {
		pts, err = fromPoints(items, cfg.order)
	}
	if err != nil {
		return nil, err
	}

	return &Polyline{points: pts, precision: cfg.precision}, nil
}

// FromPoints creates a polyline from typed points. WithDiffs applies as in New.
func FromPoints(points []point.Point, opts ...Option) (*Polyline, error) {
	return New(point.Points(points), opts...)
}

func fromPoints(items []point.Input, order format.CoordOrder) ([]point.Point, error) {
	pts := make([]point.Point, len(items))
	for i, item := range items {
		p, err := item.Resolve(order)
		if err != nil {
			return nil, fmt.Errorf("invalid item at index %d: %w", i, err)
		}
		pts[i] = p
	}

	return pts, nil
}

func fromDiffs(items []point.Input, order format.CoordOrder) ([]point.Point, error) {
	pts := make([]point.Point, len(items))
	var prev point.Point
	for i, item := range items {
		d, err := item.Resolve(order)
		if err != nil {
			return nil, fmt.Errorf("invalid item at index %d: %w", i, err)
		}
		prev = d.Move(prev)
		pts[i] = prev
	}

	return pts, nil
}

// Len returns the number of points.
func (p *Polyline) Len() int {
	return len(p.points)
}

// Precision returns the number of decimals the polyline encodes with.
func (p *Polyline) Precision() int {
	return p.precision
}

// At returns the point at index i, or false if i is out of range.
func (p *Polyline) At(i int) (point.Point, bool) {
	if i < 0 || i >= len(p.points) {
		return point.Point{}, false
	}

	return p.points[i], true
}

// Points returns a copy of the absolute points.
func (p *Polyline) Points() []point.Point {
	return slices.Clone(p.points)
}

// All returns an iterator over the index and absolute position of every point.
func (p *Polyline) All() iter.Seq2[int, point.Point] {
	return func(yield func(int, point.Point) bool) {
		for i, pt := range p.points {
			if !yield(i, pt) {
				return
			}
		}
	}
}

// Diffs returns the delta chain: the first point relative to the origin, then each point
// relative to its predecessor.
func (p *Polyline) Diffs() []point.Point {
	diffs := make([]point.Point, len(p.points))
	var prev point.Point
	for i, pt := range p.points {
		diffs[i] = pt.Rebase(prev)
		prev = pt
	}

	return diffs
}

// Coords returns the points as coordinate pairs in the given order.
func (p *Polyline) Coords(order format.CoordOrder) [][2]float64 {
	coords := make([][2]float64, len(p.points))
	for i, pt := range p.points {
		coords[i] = pt.Array(order)
	}

	return coords
}

// Equal reports whether both polylines hold exactly the same points.
// Precision is not compared.
func (p *Polyline) Equal(o *Polyline) bool {
	return slices.EqualFunc(p.points, o.points, point.Point.Equal)
}

// ApproxEqual reports whether both polylines have the same length and every pair of
// points differs by at most tolerance per coordinate.
func (p *Polyline) ApproxEqual(o *Polyline, tolerance float64) bool {
	return slices.EqualFunc(p.points, o.points, func(a, b point.Point) bool {
		return a.ApproxEqual(b, tolerance)
	})
}

// String renders the absolute points as "[(lat, lng), (lat, lng), ...]".
func (p *Polyline) String() string {
	return render(p.points)
}

// DiffString renders the delta chain in the same form as String.
func (p *Polyline) DiffString() string {
	return render(p.Diffs())
}

func render(points []point.Point) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, pt := range points {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pt.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
