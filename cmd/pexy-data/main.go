// Package main provides the pexy-data CLI, the maintenance surface over the
// local store and backup codec.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pexy-app/pexy-data/pkg/config"
	"github.com/pexy-app/pexy-data/pkg/db"
	"github.com/pexy-app/pexy-data/pkg/logger"
)

// configFile is set by the --config flag.
var configFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pexy-data",
	Short: "Manage Pexy user data and backups",
	Long: `pexy-data manages the local Pexy store: user profile, favorites,
custom phrases, and custom pictograms. It exports the whole store to a
checksummed JSON backup and restores such backups.`,
	SilenceUsage:      true,
	PersistentPreRunE: initStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ~/.pexy/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(phraseCmd)
	rootCmd.AddCommand(pictogramCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local store",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The store is already initialized by PersistentPreRunE.
		fmt.Printf("Store initialized at %s\n", config.AppConfig.Data.Dir)
		return nil
	},
}

// initStore loads config, configures logging, and opens the store.
func initStore(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	if err := config.LoadConfig(configFile); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Configure(logger.Options{
		Level: config.AppConfig.Logging.Level,
		File:  config.AppConfig.Logging.File,
	}); err != nil {
		logger.Error("failed to configure logger", "error", err)
	}
	if err := db.InitDB(config.AppConfig.Data); err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	return nil
}

// confirm asks the user to approve a destructive operation. Declining is a
// silent no-op, not an error.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false
	}
	return answer == "y" || answer == "Y" || answer == "yes"
}
