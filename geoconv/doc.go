// Package geoconv converts polylines to and from the geometry types of other Go
// libraries: orb LineStrings and GeoJSON features, and s2 Polylines.
//
// Only the representation changes; no geometry is computed. orb and GeoJSON store
// positions as [lng, lat], s2 as unit vectors on the sphere, so a round trip through s2
// may move a coordinate by a few ulps.
package geoconv
