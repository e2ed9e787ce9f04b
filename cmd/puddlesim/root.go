package main

import (
	"github.com/spf13/cobra"
)

var chipPath string

var rootCmd = &cobra.Command{
	Use:           "puddlesim",
	Short:         "Replay a scripted droplet program against a chip description",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&chipPath, "chip", "", "path to a chip description YAML file")
	rootCmd.MarkPersistentFlagRequired("chip")
	rootCmd.AddCommand(validateCmd, runCmd)
}
