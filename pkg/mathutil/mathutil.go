// Package mathutil holds small numeric helpers shared by the geometry and
// energy packages: angle conversion, clamping, and the binary search used
// by the range-profile engine.
package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	Pi      = math.Pi
	TwoPi   = 2 * math.Pi
	PiOver2 = math.Pi / 2
)

// Degrees converts an angle in radians to degrees.
func Degrees(r float64) float64 {
	return r * 180 / Pi
}

// Radians converts an angle in degrees to radians.
func Radians(d float64) float64 {
	return d / 180 * Pi
}

// Clamp restricts x to the closed range [low, high].
func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// ClampUnit clamps x into [-1, 1], the domain of acos/asin. Floating point
// roundoff routinely nudges a cosine/sine argument a few ULPs outside its
// mathematical domain; Acos/Asin clamp here rather than propagate NaN.
func ClampUnit(x float64) float64 {
	return Clamp(x, -1.0, 1.0)
}

// Acos is math.Acos with its argument clamped to [-1, 1].
func Acos(x float64) float64 {
	return math.Acos(ClampUnit(x))
}

// Asin is math.Asin with its argument clamped to [-1, 1].
func Asin(x float64) float64 {
	return math.Asin(ClampUnit(x))
}

// NormalizeAngle reduces a radian angle into [0, 2*Pi).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// Sign returns 1 if v > 0, -1 if v < 0, and 0 if v == 0.
func Sign[V constraints.Integer | constraints.Float](v V) V {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

// BinarySearch finds the number dividing a real number space into two parts,
// to within a precision of epsilon. Yields undefined results if the search
// space does not split into exactly two contiguous regions. test is expected
// to return true for inputs below the bound being searched for.
func BinarySearch(low, high, epsilon float64, test func(float64) bool) float64 {
	for high-low >= epsilon {
		mid := (high + low) / 2
		if test(mid) {
			low = mid
		} else {
			high = mid
		}
	}
	return (high + low) / 2
}
