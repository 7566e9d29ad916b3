// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/matrix/ops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errNoMatrix = errors.New("problem: missing matrix a")

// problem is the YAML description of a linear system.
type problem struct {
	Method    ops.Method  `yaml:"method"`
	A         [][]float64 `yaml:"a"`
	B         []float64   `yaml:"b"`
	Tolerance tolerance   `yaml:"tolerance"`
}

// tolerance holds optional overrides; nil keeps the library default.
type tolerance struct {
	Abs *float64 `yaml:"abs"`
	Rel *float64 `yaml:"rel"`
}

// loadProblem reads and decodes a problem file. Unknown keys are rejected.
func loadProblem(path string) (*problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}

	return decodeProblem(data)
}

func decodeProblem(data []byte) (*problem, error) {
	p := &problem{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse problem file: %w", err)
	}
	if len(p.A) == 0 {
		return nil, errNoMatrix
	}

	return p, nil
}

// problemFlags are the command-line overrides shared by solve and decompose.
type problemFlags struct {
	file   string
	method ops.Method
	eps    float64
	rtol   float64
}

func (f *problemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Path to the problem file (YAML)")
	cmd.Flags().VarP(&f.method, "method", "m", "Factorization method (lu, cholesky, qr)")
	cmd.Flags().Float64Var(&f.eps, "eps", matrix.DefaultEpsilon, "Absolute zero tolerance")
	cmd.Flags().Float64Var(&f.rtol, "rtol", matrix.DefaultRelTolerance, "Relative zero tolerance")
	_ = cmd.MarkFlagRequired("file")
}

// apply loads the problem file and lets explicitly set flags override it.
func (f *problemFlags) apply(cmd *cobra.Command) (*problem, error) {
	p, err := loadProblem(f.file)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("method") {
		p.Method = f.method
	}
	if flags.Changed("eps") {
		p.Tolerance.Abs = &f.eps
	}
	if flags.Changed("rtol") {
		p.Tolerance.Rel = &f.rtol
	}

	return p, nil
}

// dense converts A; ragged rows and non-finite values are reported by the matrix package.
func (p *problem) dense() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(p.A)
}

// options translates the tolerance overrides into matrix options.
func (p *problem) options() ([]matrix.Option, error) {
	var opts []matrix.Option
	if p.Tolerance.Abs != nil {
		if err := checkTolerance("abs", *p.Tolerance.Abs); err != nil {
			return nil, err
		}
		opts = append(opts, matrix.WithEpsilon(*p.Tolerance.Abs))
	}
	if p.Tolerance.Rel != nil {
		if err := checkTolerance("rel", *p.Tolerance.Rel); err != nil {
			return nil, err
		}
		opts = append(opts, matrix.WithRelTolerance(*p.Tolerance.Rel))
	}

	return opts, nil
}

func checkTolerance(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("tolerance.%s = %g: must be finite and non-negative", name, v)
	}

	return nil
}
