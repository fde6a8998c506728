package navgeo

import (
	"math"

	"github.com/golang/geo/s1"
)

// minDenominator is the smallest denominator, in square meters, a
// permutation may have before the next one is tried.
const minDenominator = 1e-4

// Permutations are the axis orders tried by SolveWithPermutations.
var Permutations = [3][3]int{{0, 1, 2}, {2, 0, 1}, {1, 2, 0}}

// SolveWithPermutations intersects the Earth sphere, the plane through the
// Earth's center with the given normal, and a sphere of radius centered at
// center. The radius is a straight-line distance, which for small circles is
// within a few meters of the distance along the surface.
//
// Two axes are expressed as affine functions of the third, which turns the
// Earth sphere equation into a quadratic. The axes are assigned from the
// first permutation whose denominator is not close to zero; when none
// qualifies the last permutation is used anyway. ok is false when the
// quadratic has no real root.
func SolveWithPermutations(center, normal XYZ, radius Length, perms [3][3]int) (a, b Coordinates, ok bool) {
	s := [3]float64{float64(center[0]), float64(center[1]), float64(center[2])}
	n := [3]float64{float64(normal[0]), float64(normal[1]), float64(normal[2])}
	r := float64(radius)
	R := float64(EarthRadius)

	denominator := func(p [3]int) float64 {
		return n[p[2]]*s[p[1]] - n[p[1]]*s[p[2]]
	}

	p := perms[0]
	den := denominator(p)
	for i := 1; math.Abs(den) < minDenominator && i < len(perms); i++ {
		p = perms[i]
		den = denominator(p)
	}

	// s[p1] = ka + kb⋅s[p0], s[p2] = kc + kd⋅s[p0]
	ka := -n[p[2]] * (r*r - 2*R*R) / 2 / den
	kb := -(n[p[2]]*s[p[0]] - n[p[0]]*s[p[2]]) / den
	kc := n[p[1]] * (r*r - 2*R*R) / 2 / den
	kd := (n[p[1]]*s[p[0]] - n[p[0]]*s[p[1]]) / den

	discriminant := -kc*kc*(1+kb*kb) + 2*ka*kb*kc*kd - ka*ka*(1+kd*kd) +
		(1+kb*kb+kd*kd)*R*R
	if discriminant < 0 {
		return Coordinates{}, Coordinates{}, false
	}

	var r1, r2 XYZ
	q := 1 + kb*kb + kd*kd
	x1 := (-ka*kb - kc*kd - math.Sqrt(discriminant)) / q
	x2 := (-ka*kb - kc*kd + math.Sqrt(discriminant)) / q

	r1[p[0]] = Length(x1)
	r2[p[0]] = Length(x2)
	r1[p[1]] = Length(ka + kb*x1)
	r2[p[1]] = Length(ka + kb*x2)
	r1[p[2]] = Length(kc + kd*x1)
	r2[p[2]] = Length(kc + kd*x2)

	return FromXYZ(r1), FromXYZ(r2), true
}

// SmallCircleGreatCircleIntersection returns the two points where the circle
// of radius around c meets the great circle passing through point on
// bearing. ok is false when they do not meet.
func (c Coordinates) SmallCircleGreatCircleIntersection(
	radius Length, point Coordinates, bearing s1.Angle,
) (a, b Coordinates, ok bool) {
	normal := point.ToXYZ().cross(point.CalculateV(bearing))
	return SolveWithPermutations(c.ToXYZ(), normal, radius, Permutations)
}

// FirstSmallCircleIntersection returns the first point, travelling from ref on
// bearing, where the great circle meets the circle of radius around c.
//
// If there is an intersection close behind ref, the result may lie on the
// other side of the planet. Reversing the bearing would then give the close
// intersection instead.
func (c Coordinates) FirstSmallCircleIntersection(
	radius Length, ref Coordinates, bearing s1.Angle,
) (Coordinates, bool) {
	a, b, ok := c.SmallCircleGreatCircleIntersection(radius, ref, bearing)
	if !ok {
		return Coordinates{}, false
	}

	ahead := func(to Coordinates) bool {
		return DiffAngle(bearing, ref.BearingTo(to), Either).Abs() <= quarterTurn
	}

	switch {
	case ref.DistanceTo(c) <= radius:
		// ref is inside the circle, take the intersection in front of it
		if ahead(a) {
			return a, true
		}
		return b, true
	case ahead(c):
		if ref.DistanceTo(a) < ref.DistanceTo(b) {
			return a, true
		}
		return b, true
	default:
		// the circle is behind ref
		if ref.DistanceTo(a) > ref.DistanceTo(b) {
			return a, true
		}
		return b, true
	}
}

// ClosestSmallCircleIntersection returns the intersection of the great circle
// through ref on bearing and the circle of radius around c that is nearest to
// ref. Unlike FirstSmallCircleIntersection, reversing the bearing does not
// change the result.
func (c Coordinates) ClosestSmallCircleIntersection(
	radius Length, ref Coordinates, bearing s1.Angle,
) (Coordinates, bool) {
	a, b, ok := c.SmallCircleGreatCircleIntersection(radius, ref, bearing)
	if !ok {
		return Coordinates{}, false
	}
	if ref.DistanceTo(a) < ref.DistanceTo(b) {
		return a, true
	}
	return b, true
}
