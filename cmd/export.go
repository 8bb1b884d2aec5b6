package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/rampa/internal/zwo"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the workout as a .zwo file (stdout if no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadSession()
		if err != nil {
			return err
		}

		text, err := zwo.Encode(w)
		if err != nil {
			return fmt.Errorf("Failed to encode workout: %w", err)
		}

		if len(args) == 0 {
			fmt.Print(text)
			return nil
		}

		if err := os.WriteFile(args[0], []byte(text), 0644); err != nil {
			return fmt.Errorf("Failed to write %s: %w", args[0], err)
		}

		fmt.Printf("✅ Exported workout to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
