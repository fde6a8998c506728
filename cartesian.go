package navgeo

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// Spherical is a point on the unit sphere, built from latitude and longitude
// as (cos(lat)cos(long), cos(lat)sin(long), sin(lat)).
//
// It is not interchangeable with XYZ, which uses the colatitude/azimuth
// convention scaled by the Earth radius.
type Spherical struct {
	r3.Vector
}

// XYZ is a point on the Earth's surface in meters, built from the colatitude
// theta and azimuth phi as (R⋅sinθ⋅cosφ, R⋅sinθ⋅sinφ, R⋅cosθ).
type XYZ [3]Length

// UnitVector is a dimensionless direction in the XYZ frame.
type UnitVector = r3.Vector

// ToSpherical converts c to a unit-sphere vector.
func (c Coordinates) ToSpherical() Spherical {
	return Spherical{r3.Vector{
		X: cos(c.Lat) * cos(c.Long),
		Y: cos(c.Lat) * sin(c.Long),
		Z: sin(c.Lat),
	}}
}

// FromSpherical converts a unit-sphere vector back to Coordinates.
func FromSpherical(s Spherical) Coordinates {
	return Coordinates{
		Lat:  s1.Angle(math.Asin(s.Z)),
		Long: s1.Angle(math.Atan2(s.Y, s.X)),
	}
}

// Theta returns the colatitude of c.
func (c Coordinates) Theta() s1.Angle {
	return quarterTurn - c.Lat
}

// Phi returns the azimuth of c, which is the longitude moved into [0,360).
func (c Coordinates) Phi() s1.Angle {
	if c.Long < 0 {
		return c.Long + fullTurn
	}
	return c.Long
}

// FromThetaPhi builds Coordinates from a colatitude and an azimuth.
//
// An azimuth above 180 maps to the longitude 180-phi, not phi-360. A phi of
// 190 therefore comes back as a longitude of -10.
func FromThetaPhi(theta, phi s1.Angle) Coordinates {
	long := phi
	if phi > halfTurn {
		long = halfTurn - phi
	}
	return Coordinates{Lat: quarterTurn - theta, Long: long}
}

// ThetaUnitVector returns the unit vector along increasing colatitude at c.
func (c Coordinates) ThetaUnitVector() UnitVector {
	theta, phi := c.Theta(), c.Phi()
	return UnitVector{
		X: cos(theta) * cos(phi),
		Y: cos(theta) * sin(phi),
		Z: -sin(theta),
	}
}

// PhiUnitVector returns the unit vector along increasing azimuth at c,
// which points east.
func (c Coordinates) PhiUnitVector() UnitVector {
	phi := c.Phi()
	return UnitVector{X: -sin(phi), Y: cos(phi), Z: 0}
}

// CalculateV returns the tangent direction at c for travel on course. North
// is -θ̂ and east is φ̂.
func (c Coordinates) CalculateV(course s1.Angle) UnitVector {
	return c.ThetaUnitVector().Mul(-cos(course)).Add(c.PhiUnitVector().Mul(sin(course)))
}

// ToXYZ converts c to an Earth-radius-scaled vector.
func (c Coordinates) ToXYZ() XYZ {
	theta, phi := c.Theta(), c.Phi()
	return XYZ{
		EarthRadius * Length(sin(theta)) * Length(cos(phi)),
		EarthRadius * Length(sin(theta)) * Length(sin(phi)),
		EarthRadius * Length(cos(theta)),
	}
}

// FromXYZ converts an Earth-radius-scaled vector back to Coordinates. The
// azimuth is recovered case by case from the signs of x and y.
func FromXYZ(v XYZ) Coordinates {
	x, y, z := float64(v[0]), float64(v[1]), float64(v[2])

	theta := s1.Angle(math.Atan2(math.Sqrt(x*x+y*y), z))

	var phi s1.Angle
	switch {
	case x > 0:
		phi = s1.Angle(math.Atan(y / x))
	case x < 0 && y >= 0:
		phi = s1.Angle(math.Atan(y/x)) + halfTurn
	case x < 0 && y < 0:
		phi = s1.Angle(math.Atan(y/x)) - halfTurn
	case x == 0 && y > 0:
		phi = halfTurn
	default:
		phi = -halfTurn
	}

	return FromThetaPhi(theta, phi)
}

// cross returns v × u. The components of v keep their unit.
func (v XYZ) cross(u UnitVector) XYZ {
	return XYZ{
		v[1]*Length(u.Z) - v[2]*Length(u.Y),
		v[2]*Length(u.X) - v[0]*Length(u.Z),
		v[0]*Length(u.Y) - v[1]*Length(u.X),
	}
}
