package rt

import "math"

// Epsilon is the absolute tolerance below which two floats are equal.
const Epsilon = 1e-10

// AlmostSame reports whether |a-b| < Epsilon.
//
// Every Equal method in this package goes through AlmostSame; computed
// geometry should never be compared with ==.
func AlmostSame(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// AlmostZero reports whether x is within Epsilon of zero.
func AlmostZero(x float64) bool {
	return AlmostSame(x, 0)
}
