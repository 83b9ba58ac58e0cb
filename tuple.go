package rt

import (
	"fmt"
	"math"
)

// Tuple is a homogeneous 4-component coordinate.
//
// By convention W is 1 for a point and 0 for a vector. The type does not
// enforce this: arithmetic works on all four components, so subtracting two
// points yields a vector and adding a vector to a point yields a point.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple from all four components.
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a tuple with W = 1.
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple with W = 0.
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether W is exactly 1.
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether W is exactly 0.
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the component-wise sum.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{X: t.X + o.X, Y: t.Y + o.Y, Z: t.Z + o.Z, W: t.W + o.W}
}

// Sub returns the component-wise difference.
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{X: t.X - o.X, Y: t.Y - o.Y, Z: t.Z - o.Z, W: t.W - o.W}
}

// Neg returns the tuple with every component negated, W included.
func (t Tuple) Neg() Tuple {
	return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z, W: -t.W}
}

// Mul returns the tuple scaled by s.
func (t Tuple) Mul(s float64) Tuple {
	return Tuple{X: s * t.X, Y: s * t.Y, Z: s * t.Z, W: s * t.W}
}

// Div returns the tuple scaled by 1/s.
func (t Tuple) Div(s float64) Tuple {
	return t.Mul(1 / s)
}

// Dot returns the sum of the products of all four components.
func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross returns the 3-D cross product of the X, Y, Z parts as a vector.
// W is ignored; callers are expected to pass vectors.
func (t Tuple) Cross(o Tuple) Tuple {
	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

// Norm2 returns the squared length, t·t.
func (t Tuple) Norm2() float64 {
	return t.Dot(t)
}

// Norm returns the length of the tuple.
func (t Tuple) Norm() float64 {
	return math.Sqrt(t.Norm2())
}

// Normalised returns the tuple divided by its length.
// It fails with ErrDivisionByZero when the length is zero, including when
// the squared length underflows to zero.
func (t Tuple) Normalised() (Tuple, error) {
	n := t.Norm()
	if n == 0 {
		return Tuple{}, opError("rt: Normalised", ErrDivisionByZero)
	}
	return t.Div(n), nil
}

// At returns component i: 0 is X, 1 is Y, 2 is Z and 3 is W.
func (t Tuple) At(i int) (float64, error) {
	switch i {
	case 0:
		return t.X, nil
	case 1:
		return t.Y, nil
	case 2:
		return t.Z, nil
	case 3:
		return t.W, nil
	}
	return 0, fmt.Errorf("rt: Tuple.At(%d): %w", i, ErrIndexOutOfRange)
}

// Set assigns component i, using the same numbering as At.
func (t *Tuple) Set(i int, v float64) error {
	switch i {
	case 0:
		t.X = v
	case 1:
		t.Y = v
	case 2:
		t.Z = v
	case 3:
		t.W = v
	default:
		return fmt.Errorf("rt: Tuple.Set(%d): %w", i, ErrIndexOutOfRange)
	}
	return nil
}

// Equal reports whether every component is within Epsilon of o's.
func (t Tuple) Equal(o Tuple) bool {
	return AlmostSame(t.X, o.X) &&
		AlmostSame(t.Y, o.Y) &&
		AlmostSame(t.Z, o.Z) &&
		AlmostSame(t.W, o.W)
}

// String formats the tuple as "point(x, y, z)", "vector(x, y, z)" or
// "tuple(x, y, z, w)".
func (t Tuple) String() string {
	switch {
	case t.IsPoint():
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	case t.IsVector():
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}

// array returns the components in index order.
func (t Tuple) array() [4]float64 {
	return [4]float64{t.X, t.Y, t.Z, t.W}
}
