// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// engine binds a Method to its factorization and its solver.
type engine struct {
	decompose func(a matrix.Matrix, opts []matrix.Option) (first, second matrix.Matrix, err error)
	solve     func(f *Factorization, b matrix.Vector) (matrix.Vector, error)
}

var engines = [...]engine{
	MethodLU:       {decompose: decomposeLU, solve: solveLU},
	MethodCholesky: {decompose: decomposeCholesky, solve: solveCholesky},
	MethodQR:       {decompose: decomposeQR, solve: solveQR},
}

// Factorization is the result of Decompose: the factors of A for one Method
// plus the options they were computed with. It is immutable; accessors return copies.
//
// Factors per method:
//   - MethodLU:       L (unit lower), U (upper).
//   - MethodCholesky: L (lower, positive diagonal).
//   - MethodQR:       Q (orthonormal columns), R (upper).
type Factorization struct {
	method     Method
	rows, cols int
	first      matrix.Matrix // L for LU/Cholesky, Q for QR
	second     matrix.Matrix // U for LU, R for QR, nil for Cholesky
	opts       []matrix.Option
}

// Decompose factorizes a with the given method.
// The options are kept and reused by Solve.
//
// Errors: ErrUnknownMethod, or the matrix sentinel of the failing factorization
// wrapped as "Decompose(<method>): ...".
func Decompose(method Method, a matrix.Matrix, opts ...matrix.Option) (*Factorization, error) {
	if !method.valid() {
		return nil, fmt.Errorf("Decompose(%s): %w", method, ErrUnknownMethod)
	}
	first, second, err := engines[method].decompose(a, opts)
	if err != nil {
		return nil, fmt.Errorf("Decompose(%s): %w", method, err)
	}

	return &Factorization{
		method: method,
		rows:   a.Rows(),
		cols:   a.Cols(),
		first:  first,
		second: second,
		opts:   append([]matrix.Option(nil), opts...),
	}, nil
}

// Solve solves A x = b with the stored factors. b must have Rows(A) entries;
// x has Cols(A) entries (least-squares for tall QR systems).
func (f *Factorization) Solve(b matrix.Vector) (matrix.Vector, error) {
	x, err := engines[f.method].solve(f, b)
	if err != nil {
		return nil, fmt.Errorf("Solve(%s): %w", f.method, err)
	}

	return x, nil
}

// Solve factorizes a with method and solves A x = b in one call.
func Solve(method Method, a matrix.Matrix, b matrix.Vector, opts ...matrix.Option) (matrix.Vector, error) {
	f, err := Decompose(method, a, opts...)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}

// Method returns the factorization method.
func (f *Factorization) Method() Method { return f.method }

// Shape returns the dimensions of the factorized matrix.
func (f *Factorization) Shape() (rows, cols int) { return f.rows, f.cols }

// L returns a copy of the lower factor (LU, Cholesky) or nil.
func (f *Factorization) L() matrix.Matrix {
	if f.method == MethodQR {
		return nil
	}

	return f.first.Clone()
}

// U returns a copy of the upper factor of LU or nil.
func (f *Factorization) U() matrix.Matrix {
	if f.method != MethodLU {
		return nil
	}

	return f.second.Clone()
}

// Q returns a copy of the orthonormal factor of QR or nil.
func (f *Factorization) Q() matrix.Matrix {
	if f.method != MethodQR {
		return nil
	}

	return f.first.Clone()
}

// R returns a copy of the upper factor of QR or nil.
func (f *Factorization) R() matrix.Matrix {
	if f.method != MethodQR {
		return nil
	}

	return f.second.Clone()
}

// Reconstruct returns the product of the factors (L·U, L·Lᵗ or Q·R), which
// reproduces A within floating-point tolerance.
func (f *Factorization) Reconstruct() (matrix.Matrix, error) {
	switch f.method {
	case MethodLU:
		return matrix.ReconstructLU(f.first, f.second)
	case MethodCholesky:
		return matrix.ReconstructCholesky(f.first)
	default:
		return matrix.ReconstructQR(f.first, f.second)
	}
}
