package anim

import "math"

// EaseInOutCubic maps linear progress t in [0,1] onto a symmetric cubic curve:
// 4t³ below the midpoint, 1-(-2t+2)³/2 above it.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
