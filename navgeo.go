// Package navgeo provides navigation geometry on a spherical Earth: bearings
// and great-circle distances, forward projection, bounding boxes, and the
// intersections of great circles with each other and with small circles.
//
// All operations are pure functions over value types and are safe for
// concurrent use.
package navgeo

import "github.com/golang/geo/s1"

// EarthRadius is the WGS84 equatorial radius, used as the radius of a
// spherical Earth.
// https://en.wikipedia.org/wiki/World_Geodetic_System
const EarthRadius = 6378137 * Meter

const (
	// MinLat is the latitude of the south pole.
	MinLat = -quarterTurn
	// MaxLat is the latitude of the north pole.
	MaxLat = quarterTurn
	// MinLong is the lowest longitude, the antimeridian approached from the
	// west.
	MinLong = -halfTurn
	// MaxLong is the highest longitude, the same meridian as MinLong.
	MaxLong = halfTurn
)

// Inverse solves the inverse problem on the sphere.
//
// Param lat1 is latitude of point 1 (degrees).
// Param lon1 is longitude of point 1 (degrees).
// Param lat2 is latitude of point 2 (degrees).
// Param lon2 is longitude of point 2 (degrees).
// Out param s12 is a pointer to the distance from point 1 to point 2 (meters).
// Out param azi1 is a pointer to the initial bearing at point 1 (degrees).
// Out param azi2 is a pointer to the (forward) bearing at point 2 (degrees).
//
// The values of azi1 and azi2 returned are in the range [0,360).
// Any of the "return" arguments, s12, etc., may be replaced with nil, if you
// do not need some quantities computed.
func Inverse(
	lat1, lon1, lat2, lon2 float64,
	s12, azi1, azi2 *float64,
) {
	p1 := NewCoordinates(lat1, lon1)
	p2 := NewCoordinates(lat2, lon2)
	if s12 != nil {
		*s12 = p1.DistanceTo(p2).Meters()
	}
	if azi1 != nil {
		*azi1 = p1.BearingTo(p2).Degrees()
	}
	if azi2 != nil {
		*azi2 = forwardBearing(p2, p1).Degrees()
	}
}

// Direct solves the direct problem on the sphere.
//
// Param lat1 is the latitude of point 1 (degrees).
// Param lon1 is the longitude of point 1 (degrees).
// Param azi1 is the bearing at point 1 (degrees).
// Param s12 is the distance from point 1 to point 2 (meters). negative is ok.
// Out param lat2 is a pointer to the latitude of point 2 (degrees).
// Out param lon2 is a pointer to the longitude of point 2 (degrees).
// Out param azi2 is a pointer to the (forward) bearing at point 2 (degrees).
//
// The value of lon2 returned is in the range (-180,+180] and azi2 is in the
// range [0,360). Any of the "return" arguments may be nil.
func Direct(
	lat1, lon1, azi1, s12 float64,
	lat2, lon2, azi2 *float64,
) {
	p1 := NewCoordinates(lat1, lon1)
	p2 := p1.BearingDistance(Degrees(azi1), Length(s12))
	if lat2 != nil {
		*lat2 = p2.Lat.Degrees()
	}
	if lon2 != nil {
		*lon2 = p2.Long.Degrees()
	}
	if azi2 != nil {
		*azi2 = forwardBearing(p2, p1).Degrees()
	}
}

// Bounds returns the corners of a box containing every point within s12
// meters of lat, lon (degrees). See Coordinates.DistanceBounds.
func Bounds(lat, lon, s12 float64) (swLat, swLon, neLat, neLon float64) {
	sw, ne := NewCoordinates(lat, lon).DistanceBounds(Length(s12))
	return sw.Lat.Degrees(), sw.Long.Degrees(), ne.Lat.Degrees(), ne.Long.Degrees()
}

// forwardBearing is the bearing at p2 of a path arriving from p1.
func forwardBearing(p2, p1 Coordinates) s1.Angle {
	return ClampCW(p2.BearingTo(p1) + halfTurn)
}
