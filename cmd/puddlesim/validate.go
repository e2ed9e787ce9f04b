package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uwmisl/puddle-core/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load a chip description and report whether it is well-formed",
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, tuning, err := config.Load(chipPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "chip %q is valid: %d x %d, %d pins\n",
			chipPath, grid.MaxHeight(), grid.MaxWidth(), grid.MaxPin()+1)
		if tuning.RouterSeed != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "router seed: %d\n", *tuning.RouterSeed)
		}
		return nil
	},
}
