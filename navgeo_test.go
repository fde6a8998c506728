package navgeo

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eqish(x, y float64, prec int) bool {
	return math.Abs(x-y) < float64(1.0)/math.Pow10(prec)
}

// lonEqish compares longitudes across the antimeridian.
func lonEqish(x, y float64, prec int) bool {
	return eqish(ClampEither(Degrees(x-y)).Degrees(), 0, prec)
}

func TestConstants(t *testing.T) {
	assert.Equal(t, 6378137.0, EarthRadius.Meters())
	assert.InDelta(t, -90, MinLat.Degrees(), 1e-12)
	assert.InDelta(t, 90, MaxLat.Degrees(), 1e-12)
	assert.InDelta(t, -180, MinLong.Degrees(), 1e-12)
	assert.InDelta(t, 180, MaxLong.Degrees(), 1e-12)
}

func TestInverse(t *testing.T) {
	var s12, azi1, azi2 float64
	Inverse(39.778889, -104.9825, 43.778889, -102.9825, &s12, &azi1, &azi2)
	assert.InDelta(t, 475182.13769058615, s12, 1e-6)
	assert.InDelta(t, 19.787524850709293, azi1, 1e-9)
	assert.InDelta(t, 21.120927794486718, azi2, 1e-9)

	// nil out params are skipped
	Inverse(0, 0, 1, 1, nil, nil, nil)
	Inverse(0, 0, 1, 1, nil, &azi1, nil)
	assert.InDelta(t, 44.99563646, azi1, 1e-6)
}

func TestDirect(t *testing.T) {
	var lat2, lon2 float64
	Direct(52.518611, 13.408056, 180, 8.09935205184*1852, &lat2, &lon2, nil)
	assert.InDelta(t, 52.383863707381906, lat2, 1e-9)
	assert.InDelta(t, 13.408056, lon2, 1e-9)

	Direct(10, 175, 90, 300*1852, &lat2, &lon2, nil)
	assert.InDelta(t, 9.961695659594618, lat2, 1e-9)
	assert.InDelta(t, -179.932363347172, lon2, 1e-9)
}

func TestBounds(t *testing.T) {
	swLat, swLon, neLat, neLon := Bounds(0, 179, 120*1852)
	assert.InDelta(t, -1.99641588742722, swLat, 1e-9)
	assert.InDelta(t, 177, swLon, 1e-2)
	assert.InDelta(t, 1.99641588742722, neLat, 1e-9)
	assert.InDelta(t, -179, neLon, 1e-2)
}

func TestSpherical(t *testing.T) {
	seed := time.Now().UnixNano()
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 100_000; i++ {
		lat1 := rng.Float64()*178 - 89
		lon1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*178 - 89
		lon2 := rng.Float64()*360 - 180

		var s12, azi1, azi2 float64
		Inverse(lat1, lon1, lat2, lon2, &s12, &azi1, &azi2)
		require.GreaterOrEqual(t, s12, 0.0)
		require.LessOrEqual(t, s12, math.Pi*EarthRadius.Meters())
		if s12 > 0.95*math.Pi*EarthRadius.Meters() {
			// nearly antipodal, the bearing is ill-conditioned
			continue
		}

		var ret [3]float64
		Direct(lat1, lon1, azi1, s12, &ret[0], &ret[1], &ret[2])
		if !eqish(ret[0], lat2, 4) ||
			!lonEqish(ret[1], lon2, 4) ||
			(!eqish(ret[2], azi2, 4) && !eqish(math.Abs(ret[2]-azi2), 360, 4)) {
			t.Fatalf("direct failure (seed %d) (%f %f %f %f %f %f %f), got (%f %f %f)",
				seed, lat1, lon1, lat2, lon2, s12, azi1, azi2, ret[0], ret[1], ret[2])
		}
	}
}
