package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pexy-app/pexy-data/pkg/db"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Manage favorited pictograms",
}

var favoriteAddCmd = &cobra.Command{
	Use:   "add <pictogram-id>",
	Short: "Favorite a pictogram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.AddFavorite(args[0]); err != nil {
			return fmt.Errorf("add favorite: %w", err)
		}
		fmt.Printf("Favorited %s\n", args[0])
		return nil
	},
}

var favoriteRemoveCmd = &cobra.Command{
	Use:   "remove <pictogram-id>",
	Short: "Unfavorite a pictogram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.RemoveFavorite(args[0]); err != nil {
			return fmt.Errorf("remove favorite: %w", err)
		}
		fmt.Printf("Unfavorited %s\n", args[0])
		return nil
	},
}

var favoriteToggleCmd = &cobra.Command{
	Use:   "toggle <pictogram-id>",
	Short: "Toggle a pictogram's favorite state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		favorited, err := db.ToggleFavorite(args[0])
		if err != nil {
			return fmt.Errorf("toggle favorite: %w", err)
		}
		if favorited {
			fmt.Printf("Favorited %s\n", args[0])
		} else {
			fmt.Printf("Unfavorited %s\n", args[0])
		}
		return nil
	},
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorited pictograms, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := db.GetFavorites()
		if err != nil {
			return fmt.Errorf("list favorites: %w", err)
		}
		if len(ids) == 0 {
			fmt.Println("No favorites")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	favoriteCmd.AddCommand(favoriteAddCmd)
	favoriteCmd.AddCommand(favoriteRemoveCmd)
	favoriteCmd.AddCommand(favoriteToggleCmd)
	favoriteCmd.AddCommand(favoriteListCmd)
}
