package ops_test

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/matrix/ops"
)

func ExampleSolve() {
	A, _ := matrix.NewDenseFromRows([][]float64{{2, 1, 1}, {4, 3, 3}, {8, 7, 9}})
	b := matrix.Vector{7, 19, 49}

	for _, m := range ops.Methods() {
		x, err := ops.Solve(m, A, b)
		if err != nil {
			fmt.Printf("%s: failed\n", m)
			continue
		}
		fmt.Printf("%s: %.4f\n", m, []float64(x))
	}

	// Output:
	// lu: [1.0000 2.0000 3.0000]
	// cholesky: failed
	// qr: [1.0000 2.0000 3.0000]
}
