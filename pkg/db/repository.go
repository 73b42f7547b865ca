// pkg/db/repository.go
package db

import (
	"os"
	"path/filepath"

	"github.com/pexy-app/pexy-data/pkg/config"
	"github.com/pexy-app/pexy-data/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Export DB variable
var DB *gorm.DB

// DocumentDir is the root under which ImagePath values are resolved.
var DocumentDir string

// ImagesSubdir is the directory (relative to DocumentDir) holding
// custom-pictogram image files.
const ImagesSubdir = "custom_pictograms"

func InitDB(cfg config.DataConfig) error {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		logger.Error("failed to create data directory", "dir", cfg.Dir, "error", err)
		return err
	}

	gormLogger, gormErr := newGormLogger(config.AppConfig.Logging.GormLevel)
	if gormErr != nil {
		logger.Error("invalid gorm log level", "value", config.AppConfig.Logging.GormLevel, "error", gormErr)
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.DatabasePath()), &gorm.Config{Logger: gormLogger})
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DatabasePath(), "error", err)
		return err
	}

	DocumentDir = cfg.Dir

	if err := DB.AutoMigrate(&UserProfile{}, &Favorite{}, &CustomPhrase{}, &CustomPictogram{}); err != nil {
		logger.Error("failed to auto-migrate database", "error", err)
		return err
	}

	if err := os.MkdirAll(ImagesDir(), 0o755); err != nil {
		logger.Error("failed to create images directory", "dir", ImagesDir(), "error", err)
		return err
	}

	// Legacy column cleanup is best-effort: a failed probe logs and does not
	// abort startup.
	if err := migrateDropAvatar(DB); err != nil {
		logger.Error("avatar column migration failed", "error", err)
	}

	return nil
}

// ImagesDir returns the absolute path of the custom-pictogram image directory.
func ImagesDir() string {
	return filepath.Join(DocumentDir, ImagesSubdir)
}

// ImageAbsPath resolves a stored relative image path against DocumentDir.
func ImageAbsPath(imagePath string) string {
	return filepath.Join(DocumentDir, imagePath)
}

// migrateDropAvatar removes the avatar_id column left behind by early
// profile schemas. Forward-only and non-destructive to current data.
func migrateDropAvatar(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	migrator := db.Migrator()
	if !migrator.HasColumn(&UserProfile{}, "avatar_id") {
		return nil
	}
	logger.Info("dropping legacy avatar_id column from user_profile")
	return migrator.DropColumn(&UserProfile{}, "avatar_id")
}
