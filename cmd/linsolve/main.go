// SPDX-License-Identifier: MIT

// Command linsolve factorizes dense linear systems and solves them with LU,
// Cholesky or QR.
//
// Usage:
//
//	linsolve demo
//	linsolve solve -f problem.yaml [--method lu|cholesky|qr] [--eps 1e-8] [--rtol 1e-5]
//	linsolve decompose -f problem.yaml [--method qr]
//
// Results go to stdout, structured logs to stderr.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
