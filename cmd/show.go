package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/rampa/internal/models"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the workout: segments, duration and estimated TSS",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadSession()
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow, color.Bold).SprintFunc()

		name := w.Metadata.Name
		if name == "" {
			name = "(unnamed workout)"
		}
		fmt.Printf("%s\n", green(name))
		if w.Metadata.Author != "" {
			fmt.Printf("%s %s\n", cyan("Author:"), w.Metadata.Author)
		}
		if w.Metadata.Description != "" {
			fmt.Printf("%s %s\n", cyan("Description:"), w.Metadata.Description)
		}
		if tags := w.Metadata.CleanTags(); len(tags) > 0 {
			fmt.Printf("%s %s\n", cyan("Tags:"), strings.Join(tags, ", "))
		}
		fmt.Println()

		if len(w.Segments) == 0 {
			fmt.Println("No segments yet. Add one with 'rampa add'.")
			return nil
		}

		fmt.Println("   ┌─────┬─────────────────┬──────────────────────────────────────┬──────┐")
		fmt.Println("   │ #   │ Type            │ Details                              │ Zone │")
		fmt.Println("   ├─────┼─────────────────┼──────────────────────────────────────┼──────┤")
		for i, seg := range w.Segments {
			zone := models.ZoneFor(peakPower(seg))
			painted := color.New(zone.Color).Sprint(seg.Tag())
			// Pad by hand, the color escape codes confuse %-15s.
			pad := 15 - len(seg.Tag())
			if pad < 0 {
				pad = 0
			}
			fmt.Printf("   │ %-3d │ %s%s │ %-36s │ Z%d   │\n",
				i+1, painted, strings.Repeat(" ", pad), describeSegment(seg), zone.Number)
		}
		fmt.Println("   └─────┴─────────────────┴──────────────────────────────────────┴──────┘")

		fmt.Println()
		fmt.Printf("  %s %s\n", yellow("Total duration:"), models.FormatTime(models.TotalDuration(w.Segments)))
		fmt.Printf("  %s %d\n", yellow("Estimated TSS:"), int(math.Round(models.TSS(w.Segments))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
