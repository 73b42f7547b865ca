// pkg/db/pictograms.go
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pexy-app/pexy-data/pkg/logger"
	"gorm.io/gorm"
)

// FileRemoval reports what happened to an image file during a best-effort
// delete, so callers and tests can tell the cases apart instead of relying
// on a swallowed error.
type FileRemoval int

const (
	FileDeleted FileRemoval = iota
	FileAlreadyAbsent
	FileRemovalFailed
)

// NewCustomID generates an application-level custom pictogram id of the form
// custom_<unixmillis>_<suffix>.
func NewCustomID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("custom_%d_%s", time.Now().UnixMilli(), suffix)
}

// ImageFilename derives the image filename paired with a custom id. The
// extension matches the compressed format produced by the capture flow.
func ImageFilename(customID string) string {
	return "picto_" + strings.TrimPrefix(customID, "custom_") + ".webp"
}

// SaveCustomImage copies an already-compressed image into the image
// directory and returns the relative path to store on the record.
func SaveCustomImage(customID string, data []byte) (string, error) {
	if err := os.MkdirAll(ImagesDir(), 0o755); err != nil {
		return "", err
	}
	relPath := filepath.Join(ImagesSubdir, ImageFilename(customID))
	if err := os.WriteFile(ImageAbsPath(relPath), data, 0o644); err != nil {
		return "", err
	}
	return relPath, nil
}

// CreateCustomPictogram inserts the record. The image file must already
// exist at ImagePath; the capture flow persists it first.
func CreateCustomPictogram(pictogram *CustomPictogram) error {
	pictogram.ID = 0
	pictogram.CreatedAt = time.Time{}
	pictogram.UpdatedAt = time.Time{}
	if pictogram.CategoryID == "" {
		pictogram.CategoryID = CustomCategoryID
	}
	return DB.Create(pictogram).Error
}

// GetCustomPictogramByID looks a pictogram up by its custom id, returning
// nil when absent.
func GetCustomPictogramByID(customID string) (*CustomPictogram, error) {
	var pictogram CustomPictogram
	err := DB.Where("custom_id = ?", customID).First(&pictogram).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pictogram, nil
}

// GetCustomPictograms returns all custom pictograms, newest first.
func GetCustomPictograms() ([]CustomPictogram, error) {
	pictograms := []CustomPictogram{}
	err := DB.Order("created_at DESC, id DESC").Find(&pictograms).Error
	return pictograms, err
}

// UpdateCustomPictogram renames a pictogram and stamps UpdatedAt. A missing
// custom id is a silent no-op returning nil.
func UpdateCustomPictogram(customID string, name string) (*CustomPictogram, error) {
	result := DB.Model(&CustomPictogram{}).
		Where("custom_id = ?", customID).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return GetCustomPictogramByID(customID)
}

// DeleteCustomPictogram removes the image file, cascade-deletes the
// pictogram's phrases, then deletes the row, in that order. Deleting the
// file first means a crash mid-deletion can only orphan a file, never leave
// a row pointing at nothing.
func DeleteCustomPictogram(customID string) error {
	pictogram, err := GetCustomPictogramByID(customID)
	if err != nil {
		return err
	}
	if pictogram == nil {
		return nil
	}

	if removal, err := removeImageFile(pictogram.ImagePath); removal == FileRemovalFailed {
		logger.Error("failed to delete pictogram image", "image_path", pictogram.ImagePath, "error", err)
		// Continue: the file must never outlive the record.
	}

	if err := DB.Where("pictogram_id = ?", customID).Delete(&CustomPhrase{}).Error; err != nil {
		return err
	}
	return DB.Where("custom_id = ?", customID).Delete(&CustomPictogram{}).Error
}

// removeImageFile deletes the backing file for a stored relative path.
// A missing file is reported, not treated as an error.
func removeImageFile(imagePath string) (FileRemoval, error) {
	err := os.Remove(ImageAbsPath(imagePath))
	if err == nil {
		return FileDeleted, nil
	}
	if os.IsNotExist(err) {
		return FileAlreadyAbsent, nil
	}
	return FileRemovalFailed, err
}
