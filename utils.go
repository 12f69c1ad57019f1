package geom

import (
	"cmp"

	"github.com/chewxy/math32"
)

const (
	Pi     float32 = math32.Pi
	Tau    float32 = 2 * Pi
	HalfPi float32 = Pi / 2
)

// RadianRange selects the interval NormalizeRadians maps angles into.
type RadianRange uint8

const (
	// PositiveFullRange is [0, 2π).
	PositiveFullRange RadianRange = iota
	// SignedFullRange is [-π, π).
	SignedFullRange
)

// DtoR converts degrees to radians
func DtoR(degrees float32) float32 {
	return (Pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float32) float32 {
	return (180 / Pi) * radians
}

// Clamp x between a and b, assume a <= b
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Lerp does a linear interpolation from x to y, t = [0,1]
func Lerp(x, y, t float32) float32 {
	return x + (t * (y - x))
}

// Sign returns the sign of x
func Sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// NormalizeRadians wraps an angle into the interval selected by r.
// Infinite and NaN angles are returned as NaN.
func NormalizeRadians(radians float32, r RadianRange) float32 {
	switch r {
	case PositiveFullRange:
		radians = math32.Mod(radians, Tau)
		if radians < 0 {
			radians += Tau
		}
		if radians >= Tau {
			// -tiny + Tau rounds up to Tau in float32.
			radians = 0
		}
		return radians
	case SignedFullRange:
		radians = NormalizeRadians(radians+Pi, PositiveFullRange)
		return radians - Pi
	}
	panic("geom: unknown radian range")
}
