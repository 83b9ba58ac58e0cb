package rt

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats, including the fields of Tuple and Colour, within
// Epsilon.
var approx = cmpopts.EquateApprox(0, Epsilon)

// matrixEqual lets cmp compare matrices, whose elements are unexported.
var matrixEqual = cmp.Comparer(func(a, b Matrix) bool { return a.Equal(b) })

func mustIdentity(n int) Matrix {
	m, err := Identity(n)
	if err != nil {
		panic(err)
	}
	return m
}
