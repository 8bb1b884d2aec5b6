package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/rampa/internal/utils"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move [segment-index] [target-index]",
	Short: "Move a segment to another position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadSession()
		if err != nil {
			return err
		}

		seg, err := segmentAt(w, args[0])
		if err != nil {
			return err
		}

		target, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("Invalid target index. Must be an integer")
		}

		// The model clamps the target into range.
		w.MoveSegment(seg.ID(), target-1)

		if err := utils.SaveSessionState(w); err != nil {
			return fmt.Errorf("Failed to save workout: %w", err)
		}

		fmt.Printf("✅ Moved %s segment\n", seg.Tag())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
