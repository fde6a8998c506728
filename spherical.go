// Navigation routines on a spherical Earth
//
// Copyright (c) Joshua Baker (2021) and licensed under the MIT License.
//
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */
/* Latitude/longitude spherical geodesy tools   (c) Chris Veness 2002-2019 */
/*                                                             MIT Licence */
/* www.movable-type.co.uk/scripts/latlong.html                             */
/* www.movable-type.co.uk/scripts/geodesy-library.html#latlon-spherical    */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */

package navgeo

import (
	"math"

	"github.com/golang/geo/s1"
)

// BearingTo returns the initial bearing from c to the point to, in the range
// [0,360) degrees. The result is meaningless when c and to coincide.
func (c Coordinates) BearingTo(to Coordinates) s1.Angle {
	// tanθ = sinΔλ⋅cosφ2 / cosφ1⋅sinφ2 − sinφ1⋅cosφ2⋅cosΔλ
	// see mathforum.org/library/drmath/view/55417.html for derivation
	Δλ := to.Long - c.Long
	y := sin(Δλ) * cos(to.Lat)
	x := cos(c.Lat)*sin(to.Lat) - sin(c.Lat)*cos(to.Lat)*cos(Δλ)
	θ := s1.Angle(math.Atan2(y, x))
	return s1.Angle(math.Mod(float64(θ+fullTurn), float64(fullTurn)))
}

// DistanceTo returns the great-circle distance from c to the point to.
func (c Coordinates) DistanceTo(to Coordinates) Length {
	// haversine formula
	Δφ := to.Lat - c.Lat
	Δλ := to.Long - c.Long
	sΔφ2 := sin(Δφ / 2)
	sΔλ2 := sin(Δλ / 2)
	a := sΔφ2*sΔφ2 + cos(c.Lat)*cos(to.Lat)*sΔλ2*sΔλ2
	return EarthRadius * Length(2*math.Atan2(math.Sqrt(a), math.Sqrt(1-a)))
}

// BearingDistance returns the point reached by travelling distance from c
// along the great circle with initial bearing. The resulting longitude is
// kept in (-180,+180], also when the path crosses the antimeridian.
func (c Coordinates) BearingDistance(bearing s1.Angle, distance Length) Coordinates {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / cosδ−sinφ1⋅sinφ2
	// see mathforum.org/library/drmath/view/52049.html for derivation
	δ := radial(distance)
	φ2 := s1.Angle(math.Asin(sin(c.Lat)*cos(δ) + cos(c.Lat)*sin(δ)*cos(bearing)))
	Δλ := s1.Angle(math.Atan2(sin(bearing)*sin(δ)*cos(c.Lat), cos(δ)-sin(c.Lat)*sin(φ2)))
	return Coordinates{Lat: φ2, Long: ClampEither(c.Long + Δλ)}
}

// DistanceBounds returns the south-west and north-east corners of a box that
// contains every point within distance of c.
//
// When the box spans the antimeridian the south-west longitude is greater
// than the north-east longitude. When the circle contains a pole both
// longitudes are MinLong, meaning every longitude is covered.
func (c Coordinates) DistanceBounds(distance Length) (southWest, northEast Coordinates) {
	δ := radial(distance)

	lowLat := c.Lat - δ
	highLat := c.Lat + δ

	var lowLong, highLong s1.Angle
	if lowLat > MinLat && highLat < MaxLat {
		Δλ := s1.Angle(math.Asin(sin(δ) / cos(c.Lat)))

		lowLong = c.Long - Δλ
		if lowLong < MinLong {
			lowLong += fullTurn
		}

		highLong = c.Long + Δλ
		if highLong > MaxLong {
			highLong -= fullTurn
		}
	} else {
		lowLat = s1.Angle(math.Max(float64(lowLat), float64(MinLat)))
		highLat = s1.Angle(math.Max(float64(highLat), float64(MaxLat)))

		lowLong = MinLong
		highLong = MinLong
	}

	return Coordinates{Lat: lowLat, Long: lowLong},
		Coordinates{Lat: highLat, Long: highLong}
}
