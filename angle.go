package navgeo

import "github.com/golang/geo/s1"

// Direction selects the convention used by DiffAngle.
type Direction int

const (
	// Left measures anticlockwise, giving a result in (-360,0].
	Left Direction = iota
	// Right measures clockwise, giving a result in [0,360).
	Right
	// Either gives the signed shortest turn, in (-180,180].
	Either
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Either:
		return "either"
	}
	return "unknown"
}

// ClampCW folds angle into [0,360) degrees.
//
//	ClampCW(361°) = 1°
//	ClampCW(-50°) = 310°
func ClampCW(angle s1.Angle) s1.Angle {
	for angle >= fullTurn {
		angle -= fullTurn
	}
	for angle < 0 {
		angle += fullTurn
	}
	return angle
}

// ClampACW folds angle into (-360,0] degrees.
//
//	ClampACW(361°) = -359°
//	ClampACW(-400°) = -40°
func ClampACW(angle s1.Angle) s1.Angle {
	for angle <= -fullTurn {
		angle += fullTurn
	}
	for angle > 0 {
		angle -= fullTurn
	}
	return angle
}

// ClampEither folds angle into (-180,180] degrees.
//
//	ClampEither(200°) = -160°
//	ClampEither(-180°) = 180°
func ClampEither(angle s1.Angle) s1.Angle {
	for angle > halfTurn {
		angle -= fullTurn
	}
	for angle <= -halfTurn {
		angle += fullTurn
	}
	return angle
}

// DiffAngle returns the angular difference b-a, normalized according to
// direction.
func DiffAngle(a, b s1.Angle, direction Direction) s1.Angle {
	diff := b - a
	switch direction {
	case Left:
		return ClampACW(diff)
	case Right:
		return ClampCW(diff)
	default:
		return ClampEither(diff)
	}
}
