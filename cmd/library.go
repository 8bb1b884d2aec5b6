package cmd

import (
	"fmt"
	"math"

	"github.com/fatih/color"
	"github.com/misterclayt0n/rampa/internal/models"
	"github.com/misterclayt0n/rampa/internal/storage"
	"github.com/misterclayt0n/rampa/internal/zwo"
	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "List the workouts saved in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		workouts, err := st.ListWorkouts()
		if err != nil {
			return err
		}

		if len(workouts) == 0 {
			fmt.Println("The library is empty. Save a workout with 'rampa save'.")
			return nil
		}

		fmt.Println("   ┌──────────────────────────────┬────────────┬───────┬────────────┐")
		fmt.Println("   │ Name                         │ Duration   │ TSS   │ Saved      │")
		fmt.Println("   ├──────────────────────────────┼────────────┼───────┼────────────┤")
		for _, sw := range workouts {
			w := zwo.Decode(sw.ZWO)
			name := sw.Name
			if len(name) > 28 {
				name = name[:25] + "..."
			}
			fmt.Printf("   │ %-28s │ %-10s │ %-5d │ %s │\n",
				name,
				models.FormatTime(models.TotalDuration(w.Segments)),
				int(math.Round(models.TSS(w.Segments))),
				sw.CreatedAt.Format("2006-01-02"))
		}
		fmt.Println("   └──────────────────────────────┴────────────┴───────┴────────────┘")

		fmt.Printf("\n  %s %d\n", color.New(color.FgYellow, color.Bold).Sprint("Workouts:"), len(workouts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(libraryCmd)
}
