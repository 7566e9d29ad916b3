// Package ops provides method-level entry points over the matrix factorizations.
//
// A caller picks a Method (LU, Cholesky or QR), factorizes A once with
// Decompose and then solves any number of right-hand sides with
// (*Factorization).Solve, or does both in one call with Solve. Residual and
// ResidualNorm report how well a solution satisfies A x = b.
//
// ops never retries with a different method: a failing factorization returns
// the underlying matrix sentinel (ErrSingular, ErrNotPositiveDefinite,
// ErrLinearlyDependent, ...) and recovery is left to the caller.
package ops
