package rt

import "fmt"

// Cofactor expansion. Every size shares the same recursion: a matrix of size
// n is reduced to submatrices of size n-1 until the 2x2 base case. The
// unexported helpers do no bounds checking and also accept the 1x1
// submatrices that appear while inverting a 2x2 matrix.

func (m Matrix) submatrix(row, col int) Matrix {
	s := Matrix{n: m.n - 1}
	si := 0
	for i := 0; i < m.n; i++ {
		if i == row {
			continue
		}
		sj := 0
		for j := 0; j < m.n; j++ {
			if j == col {
				continue
			}
			s.e[si][sj] = m.e[i][j]
			sj++
		}
		si++
	}
	return s
}

func (m Matrix) cofactor(row, col int) float64 {
	minor := m.submatrix(row, col).determinant()
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

func (m Matrix) determinant() float64 {
	switch m.n {
	case 1:
		return m.e[0][0]
	case 2:
		return m.e[0][0]*m.e[1][1] - m.e[0][1]*m.e[1][0]
	}
	var det float64
	for j := 0; j < m.n; j++ {
		det += m.e[0][j] * m.cofactor(0, j)
	}
	return det
}

// checkExpansion validates (row, col) for the exported expansion methods,
// which exist for 3x3 and 4x4 matrices only.
func (m Matrix) checkExpansion(op string, row, col int) error {
	if m.n == minSize {
		return fmt.Errorf("rt: Matrix.%s on 2x2: %w", op, ErrUnsupported)
	}
	if !m.inBounds(row, col) {
		return fmt.Errorf("rt: Matrix.%s(%d, %d) on %dx%d: %w", op, row, col, m.n, m.n, ErrIndexOutOfRange)
	}
	return nil
}

// Submatrix returns a copy of m with the given row and column removed, one
// size smaller. A 2x2 matrix has no submatrix.
func (m Matrix) Submatrix(row, col int) (Matrix, error) {
	if err := m.checkExpansion("Submatrix", row, col); err != nil {
		return Matrix{}, err
	}
	return m.submatrix(row, col), nil
}

// Minor returns the determinant of Submatrix(row, col).
func (m Matrix) Minor(row, col int) (float64, error) {
	if err := m.checkExpansion("Minor", row, col); err != nil {
		return 0, err
	}
	return m.submatrix(row, col).determinant(), nil
}

// Cofactor returns Minor(row, col) multiplied by (-1)^(row+col).
func (m Matrix) Cofactor(row, col int) (float64, error) {
	if err := m.checkExpansion("Cofactor", row, col); err != nil {
		return 0, err
	}
	return m.cofactor(row, col), nil
}

// Determinant returns the determinant of m, expanding recursively along
// row 0. The zero Matrix has determinant 0.
func (m Matrix) Determinant() float64 {
	if m.n < minSize {
		return 0
	}
	return m.determinant()
}

// IsInvertible reports whether the determinant is not within Epsilon of 0.
func (m Matrix) IsInvertible() bool {
	return !AlmostZero(m.Determinant())
}

// Inverse returns the inverse of m using the adjugate method: the cofactor
// matrix, transposed, divided by the determinant. It fails with
// ErrNotInvertible when the determinant is within Epsilon of 0.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if AlmostZero(det) {
		Logger().Debug("rt: singular matrix", "size", m.n, "determinant", det)
		return Matrix{}, opError("rt: Matrix.Inverse", ErrNotInvertible)
	}
	inv := Matrix{n: m.n}
	for row := 0; row < m.n; row++ {
		for col := 0; col < m.n; col++ {
			// Writing to [col][row] transposes the cofactor matrix.
			inv.e[col][row] = m.cofactor(row, col) / det
		}
	}
	return inv, nil
}
