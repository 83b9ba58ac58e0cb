package rt

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPointsAndVectors(t *testing.T) {
	v := Tuple{X: 4.3, Y: -2.1, Z: 3.2, W: 0}
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("%v: IsVector=%v IsPoint=%v, want true false", v, v.IsVector(), v.IsPoint())
	}
	p := Tuple{X: 4.3, Y: -2.1, Z: 3.2, W: 1}
	if p.IsVector() || !p.IsPoint() {
		t.Errorf("%v: IsVector=%v IsPoint=%v, want false true", p, p.IsVector(), p.IsPoint())
	}

	// W is compared exactly, not within Epsilon.
	almost := Tuple{W: 1e-12}
	if almost.IsVector() || almost.IsPoint() {
		t.Errorf("W=1e-12 should be neither point nor vector")
	}
}

func TestFactories(t *testing.T) {
	if diff := cmp.Diff(Tuple{X: 4.3, Y: 2.3, Z: -9.1, W: 0}, Vector(4.3, 2.3, -9.1)); diff != "" {
		t.Errorf("Vector() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Tuple{X: 4.3, Y: 2.3, Z: -9.1, W: 1}, Point(4.3, 2.3, -9.1)); diff != "" {
		t.Errorf("Point() mismatch (-want +got):\n%s", diff)
	}
}

func TestTupleArithmetic(t *testing.T) {
	p := NewTuple(1, 4, -2, 1)
	p1 := Point(2, 3, -1)
	p2 := Point(3, -1, 2)
	v1 := Vector(1, 2, -3)
	v2 := Vector(0, 1, -1)

	tests := []struct {
		name string
		got  Tuple
		want Tuple
	}{
		{"point plus vector", p.Add(NewTuple(-3, -1, 2.3, 0)), NewTuple(-2, 3, 0.3, 1)},
		{"point minus point", p2.Sub(p1), Vector(1, -4, 3)},
		{"point minus vector", p1.Sub(v1), Point(1, 1, 2)},
		{"vector minus vector", v1.Sub(v2), Vector(1, 1, -2)},
		{"negation", v1.Neg(), Vector(-1, -2, 3)},
		{"scale up", p.Mul(2), NewTuple(2, 8, -4, 2)},
		{"scale down", p.Mul(0.5), NewTuple(0.5, 2, -1, 0.5)},
		{"divide", p.Div(2), NewTuple(0.5, 2, -1, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got, approx); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if !tt.got.Equal(tt.want) {
				t.Errorf("%v.Equal(%v) = false", tt.got, tt.want)
			}
		})
	}
}

func TestTupleEqual(t *testing.T) {
	a := Point(1, 2, 3)
	if !a.Equal(Point(1+1e-11, 2, 3-1e-11)) {
		t.Error("tuples within Epsilon should be equal")
	}
	if a.Equal(Point(1, 2, 3.001)) {
		t.Error("tuples differing by 1e-3 should not be equal")
	}
	if a.Equal(Vector(1, 2, 3)) {
		t.Error("point and vector should not be equal")
	}
}

func TestNorm(t *testing.T) {
	tests := []struct {
		v    Tuple
		want float64
	}{
		{Vector(1, 0, 0), 1},
		{Vector(0, 1, 0), 1},
		{Vector(0, 0, 1), 1},
		{Vector(1, 2, 3), math.Sqrt(14)},
		{Vector(-1, -2, -3), math.Sqrt(14)},
	}
	for _, tt := range tests {
		if got := tt.v.Norm(); !AlmostSame(got, tt.want) {
			t.Errorf("%v.Norm() = %v, want %v", tt.v, got, tt.want)
		}
		if got := tt.v.Norm2(); !AlmostSame(got, tt.want*tt.want) {
			t.Errorf("%v.Norm2() = %v, want %v", tt.v, got, tt.want*tt.want)
		}
	}
}

func TestNormalised(t *testing.T) {
	tests := []struct {
		v    Tuple
		want Tuple
	}{
		{Vector(4, 0, 0), Vector(1, 0, 0)},
		{Vector(0, 1, 0), Vector(0, 1, 0)},
		{Vector(1, 2, 3), Vector(1/math.Sqrt(14), 2/math.Sqrt(14), 3/math.Sqrt(14))},
	}
	for _, tt := range tests {
		got, err := tt.v.Normalised()
		if err != nil {
			t.Fatalf("%v.Normalised() error: %v", tt.v, err)
		}
		if diff := cmp.Diff(tt.want, got, approx); diff != "" {
			t.Errorf("%v.Normalised() mismatch (-want +got):\n%s", tt.v, diff)
		}
	}
}

func TestNormalisedHasUnitLength(t *testing.T) {
	vs := []Tuple{
		Vector(1, 0, 0),
		Vector(1, 2, 3),
		Vector(-7.5, 0.25, 1e3),
		Vector(1e-6, 2e-6, -3e-6),
		Vector(1e-11, 0, 0),
		Vector(1e-12, 0, 0),
		Vector(0, -3e-12, 4e-12),
		Point(3, 4, 5),
		NewTuple(0.1, 0.2, 0.3, 0.4),
	}
	for _, v := range vs {
		n, err := v.Normalised()
		if err != nil {
			t.Fatalf("%v.Normalised() error: %v", v, err)
		}
		if got := n.Norm(); !AlmostSame(got, 1) {
			t.Errorf("%v.Normalised().Norm() = %v, want 1", v, got)
		}
	}
}

func TestNormalisedZeroVector(t *testing.T) {
	// 1e-200 squared underflows to zero.
	for _, v := range []Tuple{Vector(0, 0, 0), Vector(1e-200, 0, 0), {}} {
		got, err := v.Normalised()
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%v.Normalised() error = %v, want ErrDivisionByZero", v, err)
		}
		if math.IsNaN(got.X) || math.IsInf(got.X, 0) {
			t.Errorf("%v.Normalised() leaked non-finite value %v", v, got)
		}
	}
}

func TestDotAndCross(t *testing.T) {
	a := Vector(1, 2, 3)
	b := Vector(2, 3, 4)

	if got := a.Dot(b); !AlmostSame(got, 20) {
		t.Errorf("Dot = %v, want 20", got)
	}
	// W participates in the dot product.
	if got := Point(1, 2, 3).Dot(Point(2, 3, 4)); !AlmostSame(got, 21) {
		t.Errorf("point Dot = %v, want 21", got)
	}

	if diff := cmp.Diff(Vector(-1, 2, -1), a.Cross(b), approx); diff != "" {
		t.Errorf("a×b mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Vector(1, -2, 1), b.Cross(a), approx); diff != "" {
		t.Errorf("b×a mismatch (-want +got):\n%s", diff)
	}
	// Cross ignores W and always returns a vector.
	if got := Point(1, 2, 3).Cross(Point(2, 3, 4)); !got.IsVector() {
		t.Errorf("Cross of points = %v, want a vector", got)
	}
}

func TestTupleIndex(t *testing.T) {
	tp := NewTuple(1, 2, 3, 4)
	for i := 0; i < 4; i++ {
		got, err := tp.At(i)
		if err != nil {
			t.Fatalf("At(%d) error: %v", i, err)
		}
		if got != float64(i+1) {
			t.Errorf("At(%d) = %v, want %v", i, got, i+1)
		}
	}

	for _, i := range []int{-1, 4, 100} {
		if _, err := tp.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
		if err := tp.Set(i, 0); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Set(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}

	if err := tp.Set(2, 9); err != nil {
		t.Fatalf("Set(2) error: %v", err)
	}
	if diff := cmp.Diff(NewTuple(1, 2, 9, 4), tp); diff != "" {
		t.Errorf("after Set mismatch (-want +got):\n%s", diff)
	}
}

func TestTupleString(t *testing.T) {
	tests := []struct {
		v    Tuple
		want string
	}{
		{Point(1, 2, 3), "point(1, 2, 3)"},
		{Vector(0.5, 0, -1), "vector(0.5, 0, -1)"},
		{NewTuple(1, 2, 3, 2), "tuple(1, 2, 3, 2)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
