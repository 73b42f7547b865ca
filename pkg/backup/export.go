// pkg/backup/export.go
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pexy-app/pexy-data/pkg/logger"
)

// ExportFilename builds the artifact name: pexy-backup-<YYYY-MM-DD-HHmmss>.json.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("pexy-backup-%s.json", now.Format("2006-01-02-150405"))
}

// WriteFile serializes the document into dir under the timestamped filename
// and returns the full path. The artifact is transient: hand it to the share
// mechanism, then reclaim it with ScheduleCleanup.
func WriteFile(doc *Document, dir string) (string, error) {
	encoded, err := Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%w: encode document: %v", ErrCorrupt, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create export dir: %v", ErrCorrupt, err)
	}
	path := filepath.Join(dir, ExportFilename(time.Now()))
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", fmt.Errorf("%w: write backup file: %v", ErrCorrupt, err)
	}
	return path, nil
}

// ScheduleCleanup removes the exported file after the share consumer has had
// its window. Fire-and-forget: a leaked temp file is logged, never surfaced.
func ScheduleCleanup(path string, delay time.Duration) {
	time.AfterFunc(delay, func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Error("failed to clean up temporary backup file", "path", path, "error", err)
		}
	})
}
