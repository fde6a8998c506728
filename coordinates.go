package navgeo

import (
	"strconv"

	"github.com/golang/geo/s1"
)

// Coordinates is a location on the surface of the sphere, given as the
// angular distance from the equator (Lat) and from the prime meridian (Long).
//
// Lat is in the range [-90,+90]. Long is conventionally kept in (-180,+180]
// but is never normalized implicitly; use Normalized for that.
type Coordinates struct {
	Lat  s1.Angle
	Long s1.Angle
}

// NewCoordinates returns Coordinates from a latitude and longitude in degrees.
func NewCoordinates(lat, long float64) Coordinates {
	return Coordinates{Lat: Degrees(lat), Long: Degrees(long)}
}

// Normalized returns c with the longitude folded into (-180,+180].
func (c Coordinates) Normalized() Coordinates {
	return Coordinates{Lat: c.Lat, Long: ClampEither(c.Long)}
}

func (c Coordinates) String() string {
	return "(" + strconv.FormatFloat(c.Lat.Degrees(), 'f', 7, 64) + ", " +
		strconv.FormatFloat(c.Long.Degrees(), 'f', 7, 64) + ")"
}
