package cmd

import (
	"fmt"

	"github.com/misterclayt0n/rampa/internal/utils"
	"github.com/spf13/cobra"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the workout in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No workout in progress")
		}

		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to discard workout: %w", err)
		}

		fmt.Println("✅ Workout discarded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}
