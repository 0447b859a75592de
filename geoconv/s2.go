package geoconv

import (
	"github.com/golang/geo/s2"

	"github.com/khooz/polyline/line"
	"github.com/khooz/polyline/point"
)

// ToS2 returns the points of p as an s2 Polyline.
func ToS2(p *line.Polyline) *s2.Polyline {
	pl := make(s2.Polyline, 0, p.Len())
	for _, pt := range p.All() {
		pl = append(pl, s2.PointFromLatLng(s2.LatLngFromDegrees(pt.Lat(), pt.Lng())))
	}

	return &pl
}

// FromS2 creates a polyline from an s2 Polyline. Options apply as in line.New.
func FromS2(pl *s2.Polyline, opts ...line.Option) (*line.Polyline, error) {
	if pl == nil {
		return line.FromPoints(nil, opts...)
	}

	pts := make([]point.Point, len(*pl))
	for i, sp := range *pl {
		ll := s2.LatLngFromPoint(sp)
		pts[i] = point.New(ll.Lat.Degrees(), ll.Lng.Degrees())
	}

	return line.FromPoints(pts, opts...)
}
