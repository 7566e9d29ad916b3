// Package linsolve solves dense linear systems A x = b through matrix
// factorizations.
//
// The module is organized as:
//
//	matrix/       - Dense matrices and vectors, the LU (Doolittle), Cholesky and
//	                QR (Gram-Schmidt) factorizations, triangular solvers,
//	                tolerance policy and validators.
//	matrix/ops/   - method-level entry points: pick a Method, Decompose once,
//	                Solve many right-hand sides, inspect the residual.
//	cmd/linsolve/ - command-line front end reading YAML problem files.
//
// Quick start:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{4, 2, -2}, {2, 5, 1}, {-2, 1, 10}})
//	x, err := ops.Solve(ops.MethodCholesky, A, matrix.Vector{4, 1, -3})
//	if errors.Is(err, matrix.ErrNotPositiveDefinite) {
//		// fall back to another method
//	}
//
// Failures are reported with sentinel errors (ErrSingular,
// ErrNotPositiveDefinite, ErrLinearlyDependent, ErrDimensionMismatch, ...)
// wrapped with the failing operation, so callers match them with errors.Is.
// No factorization pivots or retries on its own.
package linsolve
