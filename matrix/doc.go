// Package matrix offers dense real matrices and the classical factorizations
// used to solve linear systems A x = b.
//
// The matrix package provides:
//
//   - Dense, a fixed-shape row-major Matrix with bounds-checked At/Set, and
//     Vector, a fixed-length column vector.
//   - LU (Doolittle, no pivoting) with LUSolve.
//   - Cholesky for symmetric positive-definite input with CholeskySolve.
//   - QR by Gram-Schmidt orthogonalization (m ≥ n) with QRSolve, which gives
//     the least-squares solution for tall systems.
//   - ForwardSubstitution, BackSubstitution and BackSubstitutionTransposed.
//   - Mul, Transpose, MatVec and AllClose for checking results.
//
// Every factorization and solver returns freshly allocated results and never
// mutates or retains its inputs, so calls are safe to run concurrently on
// shared read-only data. Failures are reported with sentinel errors
// (ErrSingular, ErrNotPositiveDefinite, ErrLinearlyDependent,
// ErrDimensionMismatch, ...) wrapped with the operation and index; match them
// with errors.Is.
//
// "Effectively zero" pivots and residual norms are decided in one place,
// Tolerance, configured with WithEpsilon and WithRelTolerance.
package matrix
