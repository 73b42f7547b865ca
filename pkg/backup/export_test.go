package backup_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pexy-app/pexy-data/pkg/backup"
	"github.com/pexy-app/pexy-data/pkg/internal/testutil"
)

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "pexy-backup-2026-03-14-092653.json", backup.ExportFilename(now))
}

func TestWriteFile(t *testing.T) {
	testutil.SetupTestDB(t)
	seedStore(t)

	doc, err := backup.Export()
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "exports")
	path, err := backup.WriteFile(doc, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = backup.ParseAndValidate(raw)
	assert.NoError(t, err, "a written artifact must validate as-is")
}

func TestScheduleCleanup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pexy-backup-doomed.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	backup.ScheduleCleanup(path, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("expected the exported file to be removed after the delay")
}
