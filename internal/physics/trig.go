package physics

import "math"

// trigEpsilon absorbs the floating error of trig at exact multiples of 90°,
// so cos(90°) compares equal to zero in divisor checks.
const trigEpsilon = 1e-12

func snap(x float64) float64 {
	if math.Abs(x) < trigEpsilon {
		return 0
	}
	return x
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * deg2rad }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * rad2deg }

// SinDeg returns the sine of an angle in degrees.
func SinDeg(deg float64) float64 { return snap(math.Sin(Radians(deg))) }

// CosDeg returns the cosine of an angle in degrees.
func CosDeg(deg float64) float64 { return snap(math.Cos(Radians(deg))) }

// TanDeg returns the tangent of an angle in degrees. It fails where the
// cosine vanishes.
func TanDeg(deg float64) (float64, error) {
	c := CosDeg(deg)
	if c == 0 {
		return 0, Undefined("tangent is undefined at %g°: division by zero is undefined", deg)
	}
	return SinDeg(deg) / c, nil
}

// AsinDeg returns the arcsine of x in degrees.
func AsinDeg(x float64, what string) (float64, error) {
	if x < -1 || x > 1 {
		return 0, NonReal("no real %s exists: its sine would be %.4g, outside [-1, 1]", what, x)
	}
	return Degrees(math.Asin(x)), nil
}

// AcosDeg returns the arccosine of x in degrees.
func AcosDeg(x float64, what string) (float64, error) {
	if x < -1 || x > 1 {
		return 0, NonReal("no real %s exists: its cosine would be %.4g, outside [-1, 1]", what, x)
	}
	return Degrees(math.Acos(x)), nil
}

// AtanDeg returns the arctangent of x in degrees.
func AtanDeg(x float64) float64 { return Degrees(math.Atan(x)) }
