package math

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / math.Pi
}

// Sincos returns sin and cos of a float32 angle.
func Sincos(angle float32) (float32, float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle maps an angle into [0, 2π).
func WrapAngle(angle float32) float32 {
	a := float64(angle)
	a -= Tau * math.Floor(a/Tau)
	// float32 rounding can land exactly on 2π
	w := float32(a)
	if w >= Tau || w < 0 {
		return 0
	}
	return w
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the exponent of a power of two. The result is undefined otherwise.
func Log2(n int) int {
	shift := 0
	for n > 1 {
		n >>= 1
		shift++
	}
	return shift
}
