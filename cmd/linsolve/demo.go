// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/matrix/ops"
	"github.com/spf13/cobra"
)

// scenario is one built-in demonstration system.
type scenario struct {
	name    string
	methods []ops.Method
	a       [][]float64
	b       []float64
}

var scenarios = []scenario{
	{
		name:    "LU decomposition",
		methods: []ops.Method{ops.MethodLU},
		a:       [][]float64{{2, 1, 1}, {4, 3, 3}, {8, 7, 9}},
		b:       []float64{1, 3, 2},
	},
	{
		name:    "Cholesky decomposition",
		methods: []ops.Method{ops.MethodCholesky},
		a:       [][]float64{{4, 2, -2}, {2, 5, 1}, {-2, 1, 10}},
		b:       []float64{4, 1, -3},
	},
	{
		name:    "QR decomposition",
		methods: []ops.Method{ops.MethodQR},
		a:       [][]float64{{1, 1, 1}, {1, 2, 4}, {1, 3, 9}},
		b:       []float64{6, 15, 38},
	},
	{
		name:    "Singular matrix",
		methods: []ops.Method{ops.MethodLU, ops.MethodQR},
		a:       [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}},
		b:       []float64{1, 2, 3},
	},
}

func newDemoCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in example systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.demo(cmd.OutOrStdout())
		},
	}
}

// demo runs every scenario. Factorization failures are part of the output, not errors.
func (app *cli) demo(out io.Writer) error {
	for _, sc := range scenarios {
		A, err := matrix.NewDenseFromRows(sc.a)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "== %s ==\n", sc.name)
		for _, m := range sc.methods {
			x, err := ops.Solve(m, A, sc.b)
			if err != nil {
				app.logger.Warn("Scenario failed", "scenario", sc.name, "method", m, "error", err)
				fmt.Fprintf(out, "%s: error: %v\n", m, err)
				continue
			}
			ax, err := matrix.MatVec(A, x)
			if err != nil {
				return err
			}
			app.logger.Debug("Scenario solved", "scenario", sc.name, "method", m)
			fmt.Fprintf(out, "%s: x = %.6g\n", m, []float64(x))
			fmt.Fprintf(out, "%s: A·x = %.6g\n", m, []float64(ax))
		}
	}

	return nil
}
