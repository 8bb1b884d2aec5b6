package cmd

import (
	"fmt"
	"strings"

	"github.com/misterclayt0n/rampa/internal/utils"
	"github.com/spf13/cobra"
)

var (
	metaName        string
	metaAuthor      string
	metaDescription string
	metaSport       string
	metaAddTags     []string
	metaRemoveTags  []string
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Edit workout metadata (name, author, description, sport, tags)",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadSession()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("name") {
			w.Metadata.Name = metaName
		}
		if cmd.Flags().Changed("author") {
			w.Metadata.Author = metaAuthor
		}
		if cmd.Flags().Changed("description") {
			w.Metadata.Description = metaDescription
		}
		if cmd.Flags().Changed("sport") {
			w.Metadata.SportType = metaSport
		}

		w.Metadata.Tags = append(w.Metadata.Tags, metaAddTags...)
		if len(metaRemoveTags) > 0 {
			drop := make(map[string]bool)
			for _, t := range metaRemoveTags {
				drop[t] = true
			}
			var kept []string
			for _, t := range w.Metadata.Tags {
				if !drop[t] {
					kept = append(kept, t)
				}
			}
			w.Metadata.Tags = kept
		}
		w.Metadata.Tags = w.Metadata.CleanTags()

		if err := utils.SaveSessionState(w); err != nil {
			return fmt.Errorf("Failed to save workout: %w", err)
		}

		fmt.Printf("✅ Updated metadata for %q", w.Metadata.Name)
		if len(w.Metadata.Tags) > 0 {
			fmt.Printf(" [%s]", strings.Join(w.Metadata.Tags, ", "))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	metaCmd.Flags().StringVarP(&metaName, "name", "n", "", "Workout name")
	metaCmd.Flags().StringVarP(&metaAuthor, "author", "a", "", "Workout author")
	metaCmd.Flags().StringVarP(&metaDescription, "description", "d", "", "Workout description")
	metaCmd.Flags().StringVarP(&metaSport, "sport", "s", "", "Sport type")
	metaCmd.Flags().StringSliceVar(&metaAddTags, "add-tag", nil, "Tag to add (repeatable)")
	metaCmd.Flags().StringSliceVar(&metaRemoveTags, "remove-tag", nil, "Tag to remove (repeatable)")
	rootCmd.AddCommand(metaCmd)
}
