package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/pexy-app/pexy-data/pkg/catalog"
	"github.com/pexy-app/pexy-data/pkg/db"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories, marking hidden ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		language := db.LanguageFR
		if profile, err := db.GetUserProfile(); err == nil && profile != nil {
			language = profile.Language
		}
		hidden, err := db.GetHiddenCategories()
		if err != nil {
			return fmt.Errorf("read hidden categories: %w", err)
		}

		for _, category := range catalog.Categories {
			marker := " "
			if slices.Contains(hidden, category.ID) {
				marker = "H"
			}
			fmt.Printf("%s %s %-16s %s\n", marker, category.Icon, category.ID, category.Name(language))
		}
		return nil
	},
}
