// SPDX-License-Identifier: MIT

package main

import "github.com/spf13/cobra"

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			out, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(out)

			return err
		},
	}
}
