package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/rampa/internal/models"
	"github.com/spf13/cobra"
)

const profileBarWidth = 50

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Draw the power profile of the workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadSession()
		if err != nil {
			return err
		}

		points := models.Project(w.Segments)
		if len(points) == 0 {
			fmt.Println("No segments yet. Add one with 'rampa add'.")
			return nil
		}

		// Scale bars against the hardest point, with 120% FTP as a floor so
		// easy workouts don't fill the whole width.
		maxPower := 1.2
		for _, p := range points {
			if p.Power > maxPower {
				maxPower = p.Power
			}
		}

		for _, p := range points {
			zone := models.ZoneFor(p.Power)
			width := int(p.Power / maxPower * profileBarWidth)
			bar := color.New(zone.Color).Sprint(strings.Repeat("█", width))
			fmt.Printf("%7s │%s %d%%\n", models.FormatTime(p.Time), bar, int(p.Power*100+0.5))
		}

		fmt.Println()
		for _, z := range models.Zones {
			fmt.Printf("  %s Z%d %s", color.New(z.Color).Sprint("■"), z.Number, z.Name)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
