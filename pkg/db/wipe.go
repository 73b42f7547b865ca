// pkg/db/wipe.go
package db

import (
	"fmt"

	"github.com/pexy-app/pexy-data/pkg/logger"
)

// ClearAllData deletes every custom pictogram image (best-effort per file),
// then all rows in dependency order: custom pictograms, custom phrases,
// favorites, profile. Used by the manual reset and as the first phase of a
// backup restore; a row-deletion failure is fatal to either workflow.
func ClearAllData() error {
	pictograms, err := GetCustomPictograms()
	if err != nil {
		return fmt.Errorf("list custom pictograms: %w", err)
	}
	logger.Info("clearing all data", "custom_pictograms", len(pictograms))

	for _, pictogram := range pictograms {
		if removal, err := removeImageFile(pictogram.ImagePath); removal == FileRemovalFailed {
			logger.Error("failed to delete pictogram image", "image_path", pictogram.ImagePath, "error", err)
		}
	}

	if err := DB.Where("1 = 1").Delete(&CustomPictogram{}).Error; err != nil {
		return fmt.Errorf("delete custom pictograms: %w", err)
	}
	if err := DB.Where("1 = 1").Delete(&CustomPhrase{}).Error; err != nil {
		return fmt.Errorf("delete custom phrases: %w", err)
	}
	if err := DB.Where("1 = 1").Delete(&Favorite{}).Error; err != nil {
		return fmt.Errorf("delete favorites: %w", err)
	}
	if err := DB.Where("1 = 1").Delete(&UserProfile{}).Error; err != nil {
		return fmt.Errorf("delete user profile: %w", err)
	}

	return nil
}
