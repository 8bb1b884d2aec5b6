package cmd

import (
	"fmt"

	"github.com/misterclayt0n/rampa/internal/utils"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [segment-index]",
	Short: "Remove a segment from the workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadSession()
		if err != nil {
			return err
		}

		seg, err := segmentAt(w, args[0])
		if err != nil {
			return err
		}

		w.RemoveSegment(seg.ID())

		if err := utils.SaveSessionState(w); err != nil {
			return fmt.Errorf("Failed to save workout: %w", err)
		}

		fmt.Printf("✅ Removed %s segment\n", seg.Tag())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
