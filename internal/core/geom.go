// Package core provides fundamental types shared by the simulation and the
// renderer backends. It has no terminal dependencies so the simulation stays
// pure and testable.
package core

// Point is an integer grid position.
type Point struct {
	X, Y int
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
