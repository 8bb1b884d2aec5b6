package cmd

import (
	"fmt"

	"github.com/misterclayt0n/rampa/internal/storage"
	"github.com/spf13/cobra"
)

var deleteWorkoutCmd = &cobra.Command{
	Use:   "delete-workout [name]",
	Short: "Delete a workout from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		if err := st.DeleteWorkout(args[0]); err != nil {
			return err
		}

		fmt.Printf("✅ Deleted %q from the library\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteWorkoutCmd)
}
