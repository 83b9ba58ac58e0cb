package rt

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the core. Match them with errors.Is; call sites
// wrap them with the failing operation for context.
var (
	// ErrIndexOutOfRange is returned when a tuple index is outside 0..3 or a
	// matrix (row, col) pair is outside [0, n).
	ErrIndexOutOfRange = errors.New("rt: index out of range")

	// ErrDivisionByZero is returned when normalising a tuple of zero length.
	ErrDivisionByZero = errors.New("rt: division by zero")

	// ErrNotInvertible is returned by Inverse when the determinant is
	// approximately zero.
	ErrNotInvertible = errors.New("rt: matrix is not invertible")

	// ErrInvalidSize is returned when a matrix size is outside [2, 4] or the
	// number of values does not fill the matrix.
	ErrInvalidSize = errors.New("rt: invalid matrix size")

	// ErrDimensionMismatch is returned when operands have incompatible sizes.
	ErrDimensionMismatch = errors.New("rt: dimension mismatch")

	// ErrUnsupported is returned for operations a matrix size does not have,
	// such as the submatrix of a 2x2 matrix.
	ErrUnsupported = errors.New("rt: operation not supported for matrix size")

	// ErrUnknownColour is returned by NamedColour for names it does not know.
	ErrUnknownColour = errors.New("rt: unknown colour name")
)

// opError tags err with the operation that produced it.
func opError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
