// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/matrix/ops"
	"github.com/spf13/cobra"
)

func newDecomposeCmd(app *cli) *cobra.Command {
	var flags problemFlags

	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Print the factors of A from a problem file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := flags.apply(cmd)
			if err != nil {
				return err
			}

			return app.decompose(cmd.OutOrStdout(), p)
		},
	}
	flags.register(cmd)

	return cmd
}

func (app *cli) decompose(out io.Writer, p *problem) error {
	A, err := p.dense()
	if err != nil {
		return err
	}
	opts, err := p.options()
	if err != nil {
		return err
	}

	f, err := ops.Decompose(p.Method, A, opts...)
	if err != nil {
		app.logger.Error("Decomposition failed", "method", p.Method, "error", err)
		return err
	}
	app.logger.Info("Decomposed matrix", "method", p.Method)

	fmt.Fprintf(out, "method: %s\n", f.Method())
	switch f.Method() {
	case ops.MethodLU:
		printFactor(out, "L", f.L())
		printFactor(out, "U", f.U())
	case ops.MethodCholesky:
		printFactor(out, "L", f.L())
	case ops.MethodQR:
		printFactor(out, "Q", f.Q())
		printFactor(out, "R", f.R())
	}

	return nil
}

func printFactor(out io.Writer, name string, m matrix.Matrix) {
	fmt.Fprintf(out, "%s =\n%v", name, m)
}
