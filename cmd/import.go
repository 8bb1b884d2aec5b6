package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/rampa/internal/utils"
	"github.com/misterclayt0n/rampa/internal/zwo"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Load a .zwo file, replacing the workout in progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read %s: %w", args[0], err)
		}

		// Decode is permissive: a broken document comes back as an empty
		// workout rather than an error.
		w := zwo.Decode(string(data))

		if err := utils.SaveSessionState(w); err != nil {
			return fmt.Errorf("Failed to save workout: %w", err)
		}

		fmt.Printf("✅ Imported %q with %d segments\n", w.Metadata.Name, len(w.Segments))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
