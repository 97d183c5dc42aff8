// SPDX-License-Identifier: MIT

// Command relax solves linear systems with parallel Jacobi or Gauss-Seidel
// relaxation.
//
//	relax solve coefficients.txt rhs.txt 4 100 x.txt gauss-seidel
//	relax bench coefficients.txt rhs.txt --attempts 5
//	relax generate dominant 200 a.txt b.txt --seed 7
//	relax config --config relax.yaml
//
// Exit codes: 0 success, 1 usage or configuration error, 2 data error
// (unreadable or invalid input, failed or interrupted solve, unwritable output).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "relax:", err)
		return exitCode(err)
	}

	return exitOK
}
