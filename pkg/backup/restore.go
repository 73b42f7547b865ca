// pkg/backup/restore.go
package backup

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pexy-app/pexy-data/pkg/db"
	"github.com/pexy-app/pexy-data/pkg/logger"
)

// Restore replaces the entire store with a validated payload: wipe, then
// replay profile, favorites, phrases, and custom pictograms in dependency
// order. A wipe failure aborts as-is; a replay failure normalizes to
// ErrCorrupt. There is no rollback of a partially-applied restore — the wipe
// has already destroyed the prior state by then.
func Restore(payload *Payload) error {
	if err := db.ClearAllData(); err != nil {
		return fmt.Errorf("clear store before restore: %w", err)
	}

	if err := replay(payload); err != nil {
		logger.Error("restore failed mid-replay", "error", err)
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}

func replay(payload *Payload) error {
	if payload.UserProfile != nil {
		profile := *payload.UserProfile
		if err := db.CreateUserProfile(&profile); err != nil {
			return fmt.Errorf("restore profile: %w", err)
		}
	}

	for _, pictogramID := range payload.Favorites {
		if err := db.AddFavorite(pictogramID); err != nil {
			return fmt.Errorf("restore favorite %s: %w", pictogramID, err)
		}
	}

	for _, phrase := range payload.CustomPhrases.FR {
		if err := db.AddCustomPhrase(&phrase); err != nil {
			return fmt.Errorf("restore phrase: %w", err)
		}
	}
	for _, phrase := range payload.CustomPhrases.EN {
		if err := db.AddCustomPhrase(&phrase); err != nil {
			return fmt.Errorf("restore phrase: %w", err)
		}
	}

	if payload.CustomPictograms != nil {
		if err := restorePictograms(payload.CustomPictograms); err != nil {
			return err
		}
	}

	return nil
}

// restorePictograms writes image files before inserting their records: a
// crash mid-restore can orphan a file, but a record is never inserted
// without at least attempting its image write first.
func restorePictograms(archive *PictogramArchive) error {
	if err := os.MkdirAll(db.ImagesDir(), 0o755); err != nil {
		return fmt.Errorf("create images dir: %w", err)
	}

	for imagePath, encoded := range archive.Images {
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return fmt.Errorf("decode image %s: %w", imagePath, err)
		}
		absPath := db.ImageAbsPath(imagePath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			return fmt.Errorf("create image dir for %s: %w", imagePath, err)
		}
		if err := os.WriteFile(absPath, data, 0o644); err != nil {
			return fmt.Errorf("write image %s: %w", imagePath, err)
		}
	}

	for _, pictogram := range archive.Items {
		if err := db.CreateCustomPictogram(&pictogram); err != nil {
			return fmt.Errorf("restore pictogram %s: %w", pictogram.CustomID, err)
		}
	}

	return nil
}
