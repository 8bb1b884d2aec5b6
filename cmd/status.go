package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/rampa/internal/models"
	"github.com/misterclayt0n/rampa/internal/utils"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summary of the workout in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			fmt.Println("No workout in progress. Run 'rampa init' to start one.")
			return nil
		}

		w, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load workout: %w", err)
		}

		printBoxedHeader("RAMPA")

		name := w.Metadata.Name
		if name == "" {
			name = "(unnamed workout)"
		}
		printMetric("Workout", name)
		if w.Metadata.Author != "" {
			printMetric("Author", w.Metadata.Author)
		}
		printMetric("Segments", len(w.Segments))
		printMetric("Total duration", models.FormatTime(models.TotalDuration(w.Segments)))
		printMetric("Estimated TSS", int(math.Round(models.TSS(w.Segments))))
		fmt.Println()

		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
