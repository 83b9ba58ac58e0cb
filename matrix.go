package rt

import (
	"fmt"
	"strings"
)

// MaxSize is the largest supported matrix size.
const MaxSize = 4

// minSize is the smallest supported matrix size; 2x2 is the base case of
// cofactor expansion.
const minSize = 2

// Matrix is a square matrix of size 2, 3 or 4, stored row-major.
//
// Matrix is a value type: assignment copies every element, and operations
// return new matrices. The only mutator is Set. The zero Matrix has size 0
// and is not usable; build matrices with NewMatrix, NewMatrix2, NewMatrix3,
// NewMatrix4, Identity or Zero.
type Matrix struct {
	n int
	e [MaxSize][MaxSize]float64
}

func validSize(n int) bool {
	return n >= minSize && n <= MaxSize
}

// NewMatrix creates an n×n matrix from row-major values.
// It fails with ErrInvalidSize if n is outside [2, 4] or len(values) != n*n.
func NewMatrix(n int, values ...float64) (Matrix, error) {
	if !validSize(n) || len(values) != n*n {
		return Matrix{}, fmt.Errorf("rt: NewMatrix(%d, %d values): %w", n, len(values), ErrInvalidSize)
	}
	m := Matrix{n: n}
	for i := 0; i < n; i++ {
		copy(m.e[i][:n], values[i*n:(i+1)*n])
	}
	return m, nil
}

// NewMatrix2 creates a 2x2 matrix from row-major values.
func NewMatrix2(v [4]float64) Matrix {
	m, _ := NewMatrix(2, v[:]...)
	return m
}

// NewMatrix3 creates a 3x3 matrix from row-major values.
func NewMatrix3(v [9]float64) Matrix {
	m, _ := NewMatrix(3, v[:]...)
	return m
}

// NewMatrix4 creates a 4x4 matrix from row-major values.
func NewMatrix4(v [16]float64) Matrix {
	m, _ := NewMatrix(4, v[:]...)
	return m
}

// Zero returns the n×n zero matrix.
func Zero(n int) (Matrix, error) {
	if !validSize(n) {
		return Matrix{}, fmt.Errorf("rt: Zero(%d): %w", n, ErrInvalidSize)
	}
	return Matrix{n: n}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (Matrix, error) {
	if !validSize(n) {
		return Matrix{}, fmt.Errorf("rt: Identity(%d): %w", n, ErrInvalidSize)
	}
	return identity(n), nil
}

func identity(n int) Matrix {
	m := Matrix{n: n}
	for i := 0; i < n; i++ {
		m.e[i][i] = 1
	}
	return m
}

// Size returns the number of rows (and columns).
func (m Matrix) Size() int {
	return m.n
}

func (m Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.n && col >= 0 && col < m.n
}

// At returns the element at (row, col).
func (m Matrix) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, fmt.Errorf("rt: Matrix.At(%d, %d) on %dx%d: %w", row, col, m.n, m.n, ErrIndexOutOfRange)
	}
	return m.e[row][col], nil
}

// Set assigns the element at (row, col).
func (m *Matrix) Set(value float64, row, col int) error {
	if !m.inBounds(row, col) {
		return fmt.Errorf("rt: Matrix.Set(%d, %d) on %dx%d: %w", row, col, m.n, m.n, ErrIndexOutOfRange)
	}
	m.e[row][col] = value
	return nil
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	t := m
	for i := 0; i < m.n-1; i++ {
		for j := i + 1; j < m.n; j++ {
			t.e[i][j], t.e[j][i] = m.e[j][i], m.e[i][j]
		}
	}
	return t
}

// Mul returns the matrix product m × o. Both matrices must have the same size.
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	if m.n != o.n {
		return Matrix{}, fmt.Errorf("rt: Matrix.Mul %dx%d by %dx%d: %w", m.n, m.n, o.n, o.n, ErrDimensionMismatch)
	}
	r := Matrix{n: m.n}
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			var sum float64
			for k := 0; k < m.n; k++ {
				sum += m.e[i][k] * o.e[k][j]
			}
			r.e[i][j] = sum
		}
	}
	return r, nil
}

// MulTuple applies a 4x4 matrix to t, returning m × t.
func (m Matrix) MulTuple(t Tuple) (Tuple, error) {
	if m.n != 4 {
		return Tuple{}, fmt.Errorf("rt: Matrix.MulTuple on %dx%d: %w", m.n, m.n, ErrDimensionMismatch)
	}
	v := t.array()
	var r [4]float64
	for i := range r {
		for k := range v {
			r[i] += m.e[i][k] * v[k]
		}
	}
	return NewTuple(r[0], r[1], r[2], r[3]), nil
}

// Equal reports whether m and o have the same size and every pair of
// elements is within Epsilon.
func (m Matrix) Equal(o Matrix) bool {
	if m.n != o.n {
		return false
	}
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if !AlmostSame(m.e[i][j], o.e[i][j]) {
				return false
			}
		}
	}
	return true
}

// String formats the matrix one row per line.
func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('|')
		for j := 0; j < m.n; j++ {
			fmt.Fprintf(&sb, " %g", m.e[i][j])
		}
		sb.WriteString(" |")
	}
	return sb.String()
}
