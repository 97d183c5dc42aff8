// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relax/config"
	"github.com/katalvlaran/relax/logging"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logJSON    bool

	cfg config.Config // defaults, then file, then global flags
	log *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, cfg: config.Default(), log: logging.Discard()}
	root := &cobra.Command{
		Use:               "relax",
		Short:             "Parallel Jacobi and Gauss-Seidel solver for A·x = b",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.logJSON, "log-json", false, "log as JSON instead of text")

	root.AddCommand(
		a.newSolveCmd(),
		a.newBenchCmd(),
		a.newGenerateCmd(),
		a.newConfigCmd(),
	)

	return root
}

// setup loads the config file and applies the global flags on top.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return usageError(err)
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	lc, err := cfg.Logging(a.stderr)
	if err != nil {
		return usageError(err)
	}
	a.cfg = cfg
	a.log = logging.New(lc)

	return nil
}
