// Package rt provides the linear-algebra core of a ray tracer.
//
// # Overview
//
// rt is a small, pure value-math library: homogeneous tuples for points and
// vectors, an RGB colour type, and square matrices of size 2, 3 and 4 with
// transpose, determinant, cofactor expansion and inversion. Every type is a
// plain value, so instances can be copied and shared between goroutines
// without synchronization.
//
// # Quick Start
//
//	import "github.com/gogpu/rt"
//
//	p := rt.Point(1, 2, 3)
//	m := rt.Translation(5, -3, 2)
//	moved, _ := m.MulTuple(p) // point(6, -1, 5)
//
//	inv, err := m.Inverse()
//	if errors.Is(err, rt.ErrNotInvertible) {
//	    // handle singular matrix
//	}
//
// # Numeric Policy
//
// Floating-point values are compared with an absolute tolerance of
// [Epsilon] (1e-10) through [AlmostSame]. Equal methods on Tuple, Colour and
// Matrix all use it. Only IsPoint and IsVector compare W exactly, since W is
// exact by construction.
//
// # Errors
//
// Operations that can fail return one of the package's sentinel errors
// (ErrIndexOutOfRange, ErrDivisionByZero, ErrNotInvertible, ...), wrapped
// with the failing call. Match them with errors.Is. The package does not
// panic on caller input.
//
// # Architecture
//
//   - Core: Tuple, Colour, Matrix, tolerance helpers
//   - Transforms: Translation, Scaling, RotationX/Y/Z, Shearing, Chain
//   - Interop: golang.org/x/image/math/f64 vectors and matrices
//   - canvas: pixel buffer and 24-bit BMP output
package rt
