// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/matrix/ops"
	"github.com/spf13/cobra"
)

func newSolveCmd(app *cli) *cobra.Command {
	var flags problemFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve A x = b from a problem file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := flags.apply(cmd)
			if err != nil {
				return err
			}

			return app.solve(cmd.OutOrStdout(), p)
		},
	}
	flags.register(cmd)

	return cmd
}

// solve factorizes A, solves for b and prints x with its residual norm.
func (app *cli) solve(out io.Writer, p *problem) error {
	A, err := p.dense()
	if err != nil {
		return err
	}
	opts, err := p.options()
	if err != nil {
		return err
	}
	rows, cols := A.Shape()
	app.logger.Debug("Solving system", "method", p.Method, "rows", rows, "cols", cols)

	x, err := ops.Solve(p.Method, A, matrix.Vector(p.B), opts...)
	if err != nil {
		app.logger.Error("Solve failed", "method", p.Method, "error", err)
		return err
	}
	rn, err := ops.ResidualNorm(A, x, p.B)
	if err != nil {
		return err
	}
	app.logger.Info("Solved system", "method", p.Method, "residual", rn)

	fmt.Fprintf(out, "method: %s\n", p.Method)
	fmt.Fprintf(out, "x = %v\n", []float64(x))
	fmt.Fprintf(out, "residual = %.3g\n", rn)

	return nil
}
