// SPDX-License-Identifier: MIT

package rotation

import "math"

// TwoPi is 2π.
const TwoPi = 2 * math.Pi

// Acos is a guarded arc cosine: arguments above 1 map to 0 and arguments
// below -1 map to π. Round-off in a trace or a dot product of unit vectors
// therefore never turns into NaN.
func Acos(x float64) float64 {
	switch {
	case x > 1:
		return 0
	case x < -1:
		return math.Pi
	default:
		return math.Acos(x)
	}
}

// Atan returns the arc tangent normalized into [0, π).
func Atan(x float64) float64 {
	var a = math.Atan(x)
	if a < 0 {
		return math.Pi + a
	}

	return a
}

// Atan2 returns the angle of (x, y) normalized into [0, 2π).
func Atan2(y, x float64) float64 {
	var a = math.Atan2(y, x)
	if a < 0 {
		return TwoPi + a
	}

	return a
}

// Sqrt returns 0 for negative arguments instead of NaN.
func Sqrt(x float64) float64 {
	if x < 0 {
		return 0
	}

	return math.Sqrt(x)
}

// Gcd returns the greatest common divisor of |x| and |y|; Gcd(0, 0) = 0.
func Gcd(x, y int) int {
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	for y != 0 {
		x, y = y, x%y
	}

	return x
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * 180 / math.Pi }
