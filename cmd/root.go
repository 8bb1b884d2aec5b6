package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rampa",
	Short: "CLI editor for Zwift ZWO workout files",
}

func Execute() error {
	return rootCmd.Execute()
}
