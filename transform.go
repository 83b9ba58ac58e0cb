package rt

import "math"

// Transform constructors. Each returns a 4x4 matrix acting on column tuples,
// so m.MulTuple(p) applies the transform to p. Translation only affects
// points; vectors have W = 0 and pass through unchanged.

// Translation creates a matrix that moves points by (x, y, z).
func Translation(x, y, z float64) Matrix {
	return NewMatrix4([16]float64{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	})
}

// Scaling creates a matrix that scales each axis independently.
func Scaling(x, y, z float64) Matrix {
	return NewMatrix4([16]float64{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	})
}

// RotationX creates a rotation about the X axis (angle in radians).
func RotationX(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return NewMatrix4([16]float64{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	})
}

// RotationY creates a rotation about the Y axis (angle in radians).
func RotationY(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return NewMatrix4([16]float64{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	})
}

// RotationZ creates a rotation about the Z axis (angle in radians).
func RotationZ(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return NewMatrix4([16]float64{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Shearing creates a shear matrix. Each parameter moves one coordinate in
// proportion to another: xy moves x in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix4([16]float64{
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	})
}

// Chain composes transforms so that the first one is applied first:
// Chain(a, b, c) is c × b × a. All matrices must be 4x4; an empty chain is
// the identity.
func Chain(ms ...Matrix) (Matrix, error) {
	r := identity(4)
	for _, m := range ms {
		var err error
		if r, err = m.Mul(r); err != nil {
			return Matrix{}, err
		}
	}
	return r, nil
}
