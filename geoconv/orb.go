package geoconv

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/khooz/polyline/errs"
	"github.com/khooz/polyline/line"
	"github.com/khooz/polyline/point"
)

// EncodedProperty is the GeoJSON feature property holding the encoded polyline.
const EncodedProperty = "polyline"

// ToLineString returns the points of p as an orb LineString.
func ToLineString(p *line.Polyline) orb.LineString {
	ls := make(orb.LineString, 0, p.Len())
	for _, pt := range p.All() {
		ls = append(ls, orb.Point{pt.Lng(), pt.Lat()})
	}

	return ls
}

// FromLineString creates a polyline from an orb LineString.
//
// Options apply as in line.New; WithOrder has no effect since orb points are always
// longitude first.
func FromLineString(ls orb.LineString, opts ...line.Option) (*line.Polyline, error) {
	pts := make([]point.Point, len(ls))
	for i, op := range ls {
		pts[i] = point.New(op.Lat(), op.Lon())
	}

	return line.FromPoints(pts, opts...)
}

// ToFeature returns p as a GeoJSON LineString feature with the encoded polyline stored
// under EncodedProperty.
func ToFeature(p *line.Polyline) *geojson.Feature {
	f := geojson.NewFeature(ToLineString(p))
	f.Properties[EncodedProperty] = p.Encode()

	return f
}

// FromFeature creates a polyline from a GeoJSON feature.
//
// A LineString geometry is used when present; otherwise the feature must carry an
// encoded polyline string under EncodedProperty.
//
// Returns:
//   - *line.Polyline: The polyline
//   - error: ErrType when the feature holds neither, or a decode error
func FromFeature(f *geojson.Feature, opts ...line.Option) (*line.Polyline, error) {
	if ls, ok := f.Geometry.(orb.LineString); ok {
		return FromLineString(ls, opts...)
	}

	if encoded, ok := f.Properties[EncodedProperty].(string); ok {
		return line.Decode(encoded, opts...)
	}

	if f.Geometry == nil {
		return nil, fmt.Errorf("%w: feature has no geometry and no %q property", errs.ErrType, EncodedProperty)
	}

	return nil, fmt.Errorf("%w: expected LineString geometry, got %s", errs.ErrType, f.Geometry.GeoJSONType())
}
