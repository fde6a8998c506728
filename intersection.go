package navgeo

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// intermediatePlaceDistance is how far each point is projected along its
// bearing to obtain a second point on its great circle. Shorter distances
// lose precision in the cross product, longer ones misbehave near antipodes.
const intermediatePlaceDistance = 926000 * Meter

// PlaceBearingIntersection returns the two points where the great circle
// through c on bearing meets the great circle through place2 on bearing2.
// The two points are antipodal.
//
// The first result is the one whose bearing from c is closest to bearing.
// Note that a great circle only has the given bearing at its given point.
//
// Coincident great circles and antipodal inputs are not detected and give
// NaN coordinates.
func (c Coordinates) PlaceBearingIntersection(
	bearing s1.Angle, place2 Coordinates, bearing2 s1.Angle,
) (Coordinates, Coordinates) {
	pa11 := c.ToSpherical()
	pa12 := c.BearingDistance(bearing, intermediatePlaceDistance).ToSpherical()
	pa21 := place2.ToSpherical()
	pa22 := place2.BearingDistance(bearing2, intermediatePlaceDistance).ToSpherical()

	n1 := pa11.Cross(pa12.Vector)
	n2 := pa21.Cross(pa22.Vector)

	l := n1.Cross(n2)
	norm := l.Norm()

	i1 := Spherical{r3.Vector{X: l.X / norm, Y: l.Y / norm, Z: l.Z / norm}}
	i2 := Spherical{i1.Mul(-1)}

	p1, p2 := FromSpherical(i1), FromSpherical(i2)

	want := ClampCW(bearing)
	delta1 := math.Abs(float64(want - c.BearingTo(p1)))
	delta2 := math.Abs(float64(want - c.BearingTo(p2)))

	if delta1 < delta2 {
		return p1, p2
	}
	return p2, p1
}
