// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and solvers.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
)

// Shared tolerances for reconstruction and solve checks.
const (
	RtolTiny = 1e-12
	AtolTiny = 1e-12
	Rtol     = 1e-9
	Atol     = 1e-9
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise (or via AllClose).
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
// Complexity:
//   - Time O(r*c) zeroing by runtime, Space O(r*c).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a *Dense from a 2D literal or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity Matrix (main diagonal = 1, else 0).
func IdentityDense(t *testing.T, n int) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==r*c.
//   - Stage 2: Allocate Dense and Set(i,j, vals[i*c+j]).
//
// AI-Hints:
//   - Use with CompareExact for integer-like matrices.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Determinism:
//   - Deterministic per seed.
//
// AI-Hints:
//   - Use identical seeds across fast vs fallback to isolate path differences.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1) // 0*2-1=-1 || 1*2-1=1
		}
	}

	return m
}

// DiagDominantDense RETURNS a random n×n matrix with |A[i,i]| > Σ_{j≠i} |A[i,j]|.
// Strict diagonal dominance keeps every leading principal minor non-singular,
// so non-pivoting LU always succeeds on it.
func DiagDominantDense(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	var (
		i, j int
		row  float64
	)
	for i = 0; i < n; i++ {
		row = 0
		for j = 0; j < n; j++ {
			if j != i {
				row += math.Abs(MustAt(t, m, i, j))
			}
		}
		MustSet(t, m, i, i, row+1)
	}

	return m
}

// SPDDense RETURNS a random symmetric positive-definite n×n matrix: B·Bᵗ + n·I.
func SPDDense(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	b := RandFilledDense(t, n, n, seed)
	bt, err := matrix.Transpose(b)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	p, err := matrix.Mul(b, bt)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	out := p.(*matrix.Dense)
	for i := 0; i < n; i++ {
		MustSet(t, out, i, i, MustAt(t, out, i, i)+float64(n))
	}

	return out
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
// Notes:
//   - Use only for integer-like or carefully crafted small matrices.
//
// AI-Hints:
//   - For floats use CompareClose instead.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
// AI-Hints:
//   - Use (0,0) for pure equality when numbers are exact.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)\n%v\nvs\n%v", rtol, atol, a, b)
	}
}

// VecClose ASSERTS |a[i]-b[i]| ≤ atol + rtol*|b[i]| element-wise (AllClose policy for 1D).
func VecClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("slice lengths: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			t.Fatalf("VecClose idx=%d: got=%g want=%g (rtol=%g atol=%g)", i, a[i], b[i], rtol, atol)
		}
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
// Notes:
//   - Prefer for ErrNilMatrix, ErrDimensionMismatch checks.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
// AI-Hints:
//   - Use in options guards (WithEpsilon, WithRelTolerance).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// InDelta RETURNS whether |a-b| ≤ delta (boolean, non-fatal).
func InDelta(t *testing.T, a, b float64, delta float64) bool {
	t.Helper()
	diff := a - b

	return diff >= -delta && diff <= delta
}

// propUnitLowerTriangular checks diag(L)=1 exactly and L[i,j]=0 for j>i.
func propUnitLowerTriangular(t *testing.T, L matrix.Matrix) {
	t.Helper()
	for i := 0; i < L.Rows(); i++ {
		if v := MustAt(t, L, i, i); v != 1.0 {
			t.Fatalf("diag(L)[%d]: want 1, got %.6g", i, v)
		}
	}
	propLowerTriangular(t, L)
}

// propLowerTriangular checks L[i,j]=0 exactly for j>i.
func propLowerTriangular(t *testing.T, L matrix.Matrix) {
	t.Helper()
	var i, j int
	for i = 0; i < L.Rows(); i++ {
		for j = i + 1; j < L.Cols(); j++ {
			if v := MustAt(t, L, i, j); v != 0 {
				t.Fatalf("upper(L)[%d,%d]: want 0, got %.6g", i, j, v)
			}
		}
	}
}

// propUpperTriangular checks U[i,j]=0 exactly for i>j.
func propUpperTriangular(t *testing.T, U matrix.Matrix) {
	t.Helper()
	var i, j int
	for i = 0; i < U.Rows(); i++ {
		for j = 0; j < i && j < U.Cols(); j++ {
			if v := MustAt(t, U, i, j); v != 0 {
				t.Fatalf("lower(U)[%d,%d]: want 0, got %.6g", i, j, v)
			}
		}
	}
}

// propResidual checks A·x ≈ b.
func propResidual(t *testing.T, A matrix.Matrix, x, b matrix.Vector, rtol, atol float64) {
	t.Helper()
	ax, err := matrix.MatVec(A, x)
	if err != nil {
		t.Fatalf("MatVec: %v", err)
	}
	VecClose(t, ax, b, rtol, atol)
}

// ---------- bench helpers ----------

func mustDenseB(b *testing.B, r, c int) *matrix.Dense {
	d, err := matrix.NewZeros(r, c)
	if err != nil {
		b.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}

	return d
}

// diagDominantB fills an n×n matrix in U(-1,1) and lifts the diagonal above the row sums.
func diagDominantB(b *testing.B, n int, seed int64) *matrix.Dense {
	d := mustDenseB(b, n, n)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = d.Set(i, j, rng.Float64()*2-1) // [-1,1]
		}
		_ = d.Set(i, i, float64(n)+1)
	}

	return d
}

func onesVec(n int) matrix.Vector {
	v := make(matrix.Vector, n)
	for i := 0; i < n; i++ {
		v[i] = 1
	}

	return v
}
