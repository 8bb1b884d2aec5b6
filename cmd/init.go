package cmd

import (
	"fmt"

	"github.com/misterclayt0n/rampa/internal/models"
	"github.com/misterclayt0n/rampa/internal/utils"
	"github.com/spf13/cobra"
)

var (
	initName        string
	initAuthor      string
	initDescription string
	initSport       string
	initEmpty       bool
	initForce       bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Start a new workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.SessionExists() && !initForce {
			return fmt.Errorf("A workout is already in progress. Use --force to discard it")
		}

		w := models.NewWorkout()
		w.Metadata.Name = initName
		w.Metadata.Author = initAuthor
		w.Metadata.Description = initDescription
		if initSport != "" {
			w.Metadata.SportType = initSport
		}

		// Same starting point as a fresh editor: a warmup and a steady block.
		if !initEmpty {
			warmup, _ := w.AddSegment(models.TagWarmup)
			warmup.(*models.Warmup).Duration = 600
			steady, _ := w.AddSegment(models.TagSteadyState)
			steady.(*models.SteadyState).Duration = 300
			steady.(*models.SteadyState).Power = 0.90
		}

		if err := utils.SaveSessionState(w); err != nil {
			return fmt.Errorf("Failed to save workout: %w", err)
		}

		fmt.Printf("✅ Started workout with %d segments\n", len(w.Segments))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initName, "name", "n", "", "Workout name")
	initCmd.Flags().StringVarP(&initAuthor, "author", "a", "", "Workout author")
	initCmd.Flags().StringVarP(&initDescription, "description", "d", "", "Workout description")
	initCmd.Flags().StringVarP(&initSport, "sport", "s", "", "Sport type (defaults to bike)")
	initCmd.Flags().BoolVar(&initEmpty, "empty", false, "Start with no segments")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Discard any workout in progress")
	rootCmd.AddCommand(initCmd)
}
