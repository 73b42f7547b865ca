package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/pexy-app/pexy-data/pkg/db"
)

var pictogramCmd = &cobra.Command{
	Use:   "pictogram",
	Short: "Manage custom pictograms",
}

var (
	pictogramName  string
	pictogramImage string
)

// maxPictogramNameLength matches the capture form limit.
const maxPictogramNameLength = 50

var pictogramAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a custom pictogram from a compressed image",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(pictogramName)
		if name == "" || pictogramImage == "" {
			return fmt.Errorf("--name and --image are required")
		}
		if utf8.RuneCountInString(name) > maxPictogramNameLength {
			return fmt.Errorf("name must be at most %d characters", maxPictogramNameLength)
		}

		data, err := os.ReadFile(pictogramImage)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

		customID := db.NewCustomID()
		imagePath, err := db.SaveCustomImage(customID, data)
		if err != nil {
			return fmt.Errorf("save image: %w", err)
		}

		pictogram := db.CustomPictogram{
			CustomID:  customID,
			Name:      name,
			ImagePath: imagePath,
		}
		if err := db.CreateCustomPictogram(&pictogram); err != nil {
			return fmt.Errorf("create pictogram: %w", err)
		}
		fmt.Printf("Pictogram created: %s\n", customID)
		return nil
	},
}

var pictogramListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom pictograms, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		pictograms, err := db.GetCustomPictograms()
		if err != nil {
			return fmt.Errorf("list pictograms: %w", err)
		}
		if len(pictograms) == 0 {
			fmt.Println("No custom pictograms")
			return nil
		}
		for _, pictogram := range pictograms {
			fmt.Printf("%s  %s  (%s)\n", pictogram.CustomID, pictogram.Name, pictogram.ImagePath)
		}
		return nil
	},
}

var pictogramRenameCmd = &cobra.Command{
	Use:   "rename <custom-id> <name>",
	Short: "Rename a custom pictogram",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[1])
		if name == "" {
			return fmt.Errorf("name must not be empty")
		}
		if utf8.RuneCountInString(name) > maxPictogramNameLength {
			return fmt.Errorf("name must be at most %d characters", maxPictogramNameLength)
		}
		updated, err := db.UpdateCustomPictogram(args[0], name)
		if err != nil {
			return fmt.Errorf("rename pictogram: %w", err)
		}
		if updated == nil {
			return fmt.Errorf("no pictogram with id %s", args[0])
		}
		fmt.Printf("Pictogram renamed to %s\n", updated.Name)
		return nil
	},
}

var pictogramDeleteCmd = &cobra.Command{
	Use:   "delete <custom-id>",
	Short: "Delete a custom pictogram, its image, and its phrases",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.DeleteCustomPictogram(args[0]); err != nil {
			return fmt.Errorf("delete pictogram: %w", err)
		}
		fmt.Printf("Pictogram %s deleted\n", args[0])
		return nil
	},
}

func init() {
	pictogramAddCmd.Flags().StringVar(&pictogramName, "name", "", "pictogram display name")
	pictogramAddCmd.Flags().StringVar(&pictogramImage, "image", "", "path to an already-compressed image file")

	pictogramCmd.AddCommand(pictogramAddCmd)
	pictogramCmd.AddCommand(pictogramListCmd)
	pictogramCmd.AddCommand(pictogramRenameCmd)
	pictogramCmd.AddCommand(pictogramDeleteCmd)
}
