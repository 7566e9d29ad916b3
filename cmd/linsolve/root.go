// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = logFormatText
)

// cli carries state shared by the subcommands.
type cli struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// newRootCmd creates the root command and its subcommands.
func newRootCmd() *cobra.Command {
	app := &cli{}

	rootCmd := &cobra.Command{
		Use:   "linsolve",
		Short: "Dense LU, Cholesky and QR solvers",
		Long: `linsolve factorizes a dense matrix A and solves A x = b.

Problems are read from YAML files:

  method: cholesky        # lu | cholesky | qr (default lu)
  a:
    - [4, 2, -2]
    - [2, 5, 1]
    - [-2, 1, 10]
  b: [4, 1, -3]
  tolerance:              # optional
    abs: 1e-8
    rel: 1e-5

Example:
  linsolve solve -f problem.yaml --method qr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), app.logLevel, app.logFormat)
			if err != nil {
				return err
			}
			app.logger = logger

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.logLevel, "log-level", "l", defaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&app.logFormat, "log-format", defaultLogFormat, "Log format (text, json)")

	rootCmd.AddCommand(
		newDemoCmd(app),
		newSolveCmd(app),
		newDecomposeCmd(app),
	)

	return rootCmd
}
