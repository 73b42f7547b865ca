package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pexy-app/pexy-data/pkg/backup"
	"github.com/pexy-app/pexy-data/pkg/db"
)

var (
	exportDir    string
	assumeYes    bool
	assumeYesImp bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all user data to a checksummed backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := backup.Export()
		if err != nil {
			if errors.Is(err, backup.ErrNoData) {
				return fmt.Errorf("nothing to export: no profile exists")
			}
			return fmt.Errorf("export failed: %w", err)
		}

		path, err := backup.WriteFile(doc, exportDir)
		if err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Printf("Backup written to %s\n", path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore all user data from a backup file",
	Long: `Validates the backup file (structure, checksum, version), then wipes the
store and replays the backup's contents. Existing data is destroyed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup file: %w", err)
		}

		payload, err := backup.ParseAndValidate(raw)
		if err != nil {
			return describeBackupError(err)
		}

		if !assumeYesImp && !confirm("This will erase all existing data and restore the backup. Continue?") {
			return nil
		}

		if err := backup.Restore(payload); err != nil {
			return describeBackupError(err)
		}

		fmt.Printf("Restored %d favorites, %d fr / %d en phrases",
			len(payload.Favorites), len(payload.CustomPhrases.FR), len(payload.CustomPhrases.EN))
		if payload.CustomPictograms != nil {
			fmt.Printf(", %d custom pictograms", len(payload.CustomPictograms.Items))
		}
		fmt.Println()
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all user data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !assumeYes && !confirm("This will erase all user data. Continue?") {
			return nil
		}
		if err := db.ClearAllData(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		fmt.Println("All user data erased")
		return nil
	},
}

// describeBackupError maps the codec's typed errors to user-facing messages.
func describeBackupError(err error) error {
	switch {
	case errors.Is(err, backup.ErrInvalidFormat):
		return fmt.Errorf("this file is not a valid Pexy backup")
	case errors.Is(err, backup.ErrVersion):
		return fmt.Errorf("this backup was made with an incompatible app version")
	case errors.Is(err, backup.ErrCorrupt):
		return fmt.Errorf("this backup file is damaged and cannot be restored")
	default:
		return err
	}
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "out", ".", "directory to write the backup file into")
	importCmd.Flags().BoolVar(&assumeYesImp, "yes", false, "skip the confirmation prompt")
	resetCmd.Flags().BoolVar(&assumeYes, "yes", false, "skip the confirmation prompt")
}
