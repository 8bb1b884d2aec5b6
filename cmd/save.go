package cmd

import (
	"fmt"

	"github.com/misterclayt0n/rampa/internal/storage"
	"github.com/misterclayt0n/rampa/internal/zwo"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the workout to the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadSession()
		if err != nil {
			return err
		}

		if w.Metadata.Name == "" {
			return fmt.Errorf("Workout has no name. Set one with 'rampa meta --name'")
		}

		text, err := zwo.Encode(w)
		if err != nil {
			return fmt.Errorf("Failed to encode workout: %w", err)
		}

		st := storage.NewStorage()
		if err := st.SaveWorkout(w, text); err != nil {
			return err
		}

		fmt.Printf("✅ Saved %q to the library\n", w.Metadata.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
