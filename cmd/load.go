package cmd

import (
	"fmt"

	"github.com/misterclayt0n/rampa/internal/storage"
	"github.com/misterclayt0n/rampa/internal/utils"
	"github.com/misterclayt0n/rampa/internal/zwo"
	"github.com/spf13/cobra"
)

var loadForce bool

var loadCmd = &cobra.Command{
	Use:   "load [name]",
	Short: "Load a workout from the library, replacing the workout in progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.SessionExists() && !loadForce {
			return fmt.Errorf("A workout is already in progress. Use --force to discard it")
		}

		st := storage.NewStorage()
		stored, err := st.GetWorkoutByName(args[0])
		if err != nil {
			return err
		}

		w := zwo.Decode(stored.ZWO)

		if err := utils.SaveSessionState(w); err != nil {
			return fmt.Errorf("Failed to save workout: %w", err)
		}

		fmt.Printf("✅ Loaded %q with %d segments\n", w.Metadata.Name, len(w.Segments))
		return nil
	},
}

func init() {
	loadCmd.Flags().BoolVar(&loadForce, "force", false, "Discard any workout in progress")
	rootCmd.AddCommand(loadCmd)
}
