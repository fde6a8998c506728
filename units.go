package navgeo

import (
	"math"
	"strconv"

	"github.com/golang/geo/s1"
)

// Length is a distance along the surface of the sphere, in meters.
type Length float64

const (
	Meter        Length = 1
	Kilometer    Length = 1000
	NauticalMile Length = 1852
)

// Meters returns l in meters.
func (l Length) Meters() float64 {
	return float64(l)
}

// Kilometers returns l in kilometers.
func (l Length) Kilometers() float64 {
	return float64(l / Kilometer)
}

// NauticalMiles returns l in international nautical miles.
func (l Length) NauticalMiles() float64 {
	return float64(l / NauticalMile)
}

func (l Length) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64) + "m"
}

const (
	quarterTurn = s1.Angle(math.Pi / 2)
	halfTurn    = s1.Angle(math.Pi)
	fullTurn    = s1.Angle(2 * math.Pi)
)

// Degrees returns an angle of d degrees.
func Degrees(d float64) s1.Angle {
	return s1.Angle(d) * s1.Degree
}

// radial converts a surface distance into the angle it subtends at the
// center of the Earth.
func radial(distance Length) s1.Angle {
	return s1.Angle(float64(distance / EarthRadius))
}

func sin(a s1.Angle) float64 { return math.Sin(a.Radians()) }
func cos(a s1.Angle) float64 { return math.Cos(a.Radians()) }
