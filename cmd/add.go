package cmd

import (
	"fmt"
	"strings"

	"github.com/misterclayt0n/rampa/internal/models"
	"github.com/misterclayt0n/rampa/internal/utils"
	"github.com/spf13/cobra"
)

var (
	addDuration    string
	addPower       string
	addPowerLow    string
	addPowerHigh   string
	addRepeat      string
	addOnDuration  string
	addOffDuration string
	addOnPower     string
	addOffPower    string
	addDurations   string
	addPowers      string
)

var addCmd = &cobra.Command{
	Use:   "add [type]",
	Short: "Append a segment (Warmup, CoolDown, Ramp, SteadyState, IntervalsT, IntervalsBlock3, FreeRide, MaxEffort)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadSession()
		if err != nil {
			return err
		}

		seg, err := w.AddSegment(args[0])
		if err != nil {
			return err
		}

		// Overrides go through the same field parser as 'rampa set', so
		// powers are percentages and durations accept "M:SS".
		overrides := map[string]string{
			"duration":     addDuration,
			"power":        addPower,
			"power_low":    addPowerLow,
			"power_high":   addPowerHigh,
			"repeat":       addRepeat,
			"on_duration":  addOnDuration,
			"off_duration": addOffDuration,
			"on_power":     addOnPower,
			"off_power":    addOffPower,
		}
		for field, raw := range overrides {
			if raw == "" {
				continue
			}
			if err := w.UpdateField(seg.ID(), field, raw); err != nil {
				return err
			}
		}
		if err := applyPhaseOverrides(w, seg.ID(), "duration", addDurations); err != nil {
			return err
		}
		if err := applyPhaseOverrides(w, seg.ID(), "power", addPowers); err != nil {
			return err
		}

		if err := utils.SaveSessionState(w); err != nil {
			return fmt.Errorf("Failed to save workout: %w", err)
		}

		fmt.Printf("✅ Added %s segment at position %d\n", seg.Tag(), len(w.Segments))
		return nil
	},
}

// applyPhaseOverrides spreads a comma-separated triple over the three
// phase fields of an IntervalsBlock3 segment.
func applyPhaseOverrides(w *models.Workout, id, prefix, raw string) error {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return fmt.Errorf("Expected three comma-separated values, got %q", raw)
	}
	for i, p := range parts {
		field := fmt.Sprintf("%s_%d", prefix, i+1)
		if err := w.UpdateField(id, field, strings.TrimSpace(p)); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	addCmd.Flags().StringVar(&addDuration, "duration", "", "Duration (\"M:SS\" or seconds)")
	addCmd.Flags().StringVar(&addPower, "power", "", "Power in % of FTP (SteadyState)")
	addCmd.Flags().StringVar(&addPowerLow, "power-low", "", "Start power in % of FTP (ramps)")
	addCmd.Flags().StringVar(&addPowerHigh, "power-high", "", "End power in % of FTP (ramps)")
	addCmd.Flags().StringVar(&addRepeat, "repeat", "", "Repetition count (interval blocks)")
	addCmd.Flags().StringVar(&addOnDuration, "on-duration", "", "On-phase duration (IntervalsT)")
	addCmd.Flags().StringVar(&addOffDuration, "off-duration", "", "Off-phase duration (IntervalsT)")
	addCmd.Flags().StringVar(&addOnPower, "on-power", "", "On-phase power in % of FTP (IntervalsT)")
	addCmd.Flags().StringVar(&addOffPower, "off-power", "", "Off-phase power in % of FTP (IntervalsT)")
	addCmd.Flags().StringVar(&addDurations, "durations", "", "Three phase durations, comma-separated (IntervalsBlock3)")
	addCmd.Flags().StringVar(&addPowers, "powers", "", "Three phase powers in % of FTP, comma-separated (IntervalsBlock3)")
	rootCmd.AddCommand(addCmd)
}
