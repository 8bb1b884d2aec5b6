package cmd

import (
	"fmt"

	"github.com/misterclayt0n/rampa/internal/utils"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set [segment-index] [field] [value]",
	Short: "Edit one field of a segment (powers in % of FTP, durations as \"M:SS\" or seconds)",
	Long: `Edit one field of a segment.

Field names per segment type:
  Warmup/CoolDown/Ramp  duration, power_low, power_high
  SteadyState           duration, power
  IntervalsT            repeat, on_duration, on_power, off_duration, off_power
  IntervalsBlock3       repeat, duration_1..3, power_1..3
  FreeRide/MaxEffort    duration`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadSession()
		if err != nil {
			return err
		}

		seg, err := segmentAt(w, args[0])
		if err != nil {
			return err
		}

		if err := w.UpdateField(seg.ID(), args[1], args[2]); err != nil {
			return err
		}

		if err := utils.SaveSessionState(w); err != nil {
			return fmt.Errorf("Failed to save workout: %w", err)
		}

		fmt.Printf("✅ Updated %s of %s segment\n", args[1], seg.Tag())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
