// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relax/builder"
	"github.com/katalvlaran/relax/textio"
)

const (
	kindTridiagonal = "tridiagonal"
	kindDominant    = "dominant"
)

type generateFlags struct {
	seed        int64
	dominance   float64
	solutionOut string
}

func (a *app) newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate <tridiagonal|dominant> <size> <coefficients-out> <rhs-out>",
		Short: "Write a strictly diagonally dominant test system",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args, f)
		},
	}
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed for the dominant kind")
	cmd.Flags().Float64Var(&f.dominance, "dominance", builder.DefaultDominance, "diagonal dominance factor (> 1)")
	cmd.Flags().StringVar(&f.solutionOut, "solution-out", "", "also write the exact solution to this file")

	return cmd
}

func (a *app) runGenerate(_ *cobra.Command, args []string, f generateFlags) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return usageErrorf("size %q is not an integer", args[1])
	}
	if !(f.dominance > builder.MinDominance) {
		return usageErrorf("dominance %v must be > %v", f.dominance, builder.MinDominance)
	}

	var sys *builder.System
	switch args[0] {
	case kindTridiagonal:
		sys, err = builder.Tridiagonal(n, builder.WithDominance(f.dominance))
	case kindDominant:
		sys, err = builder.DiagonallyDominant(n, builder.WithSeed(f.seed), builder.WithDominance(f.dominance))
	default:
		return usageErrorf("unknown kind %q (want %s or %s)", args[0], kindTridiagonal, kindDominant)
	}
	if err != nil {
		return usageError(err)
	}

	if err = textio.WriteMatrixFile(args[2], sys.A); err != nil {
		return dataError(err)
	}
	if err = textio.WriteVectorFile(args[3], sys.B); err != nil {
		return dataError(err)
	}
	if f.solutionOut != "" {
		if err = textio.WriteVectorFile(f.solutionOut, sys.X); err != nil {
			return dataError(err)
		}
	}
	a.log.Info("system generated", "kind", args[0], "n", n, "coefficients", args[2], "rhs", args[3])
	fmt.Fprintf(a.stdout, "wrote %s system n=%d to %s and %s\n", args[0], n, args[2], args[3])

	return nil
}
