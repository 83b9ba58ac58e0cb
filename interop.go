package rt

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// Vec4 returns the tuple as an f64.Vec4 in X, Y, Z, W order.
func (t Tuple) Vec4() f64.Vec4 {
	return f64.Vec4(t.array())
}

// TupleFromVec4 converts an f64.Vec4 to a Tuple.
func TupleFromVec4(v f64.Vec4) Tuple {
	return NewTuple(v[0], v[1], v[2], v[3])
}

// Mat4 returns a 4x4 matrix as an f64.Mat4 (row-major).
func (m Matrix) Mat4() (f64.Mat4, error) {
	var r f64.Mat4
	if m.n != 4 {
		return r, fmt.Errorf("rt: Matrix.Mat4 on %dx%d: %w", m.n, m.n, ErrDimensionMismatch)
	}
	for i := 0; i < 4; i++ {
		copy(r[i*4:(i+1)*4], m.e[i][:4])
	}
	return r, nil
}

// Mat3 returns a 3x3 matrix as an f64.Mat3 (row-major).
func (m Matrix) Mat3() (f64.Mat3, error) {
	var r f64.Mat3
	if m.n != 3 {
		return r, fmt.Errorf("rt: Matrix.Mat3 on %dx%d: %w", m.n, m.n, ErrDimensionMismatch)
	}
	for i := 0; i < 3; i++ {
		copy(r[i*3:(i+1)*3], m.e[i][:3])
	}
	return r, nil
}

// MatrixFromMat4 converts an f64.Mat4 to a 4x4 Matrix.
func MatrixFromMat4(v f64.Mat4) Matrix {
	return NewMatrix4(v)
}

// MatrixFromMat3 converts an f64.Mat3 to a 3x3 Matrix.
func MatrixFromMat3(v f64.Mat3) Matrix {
	return NewMatrix3(v)
}
