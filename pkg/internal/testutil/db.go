package testutil

import (
	"os"
	"testing"

	"github.com/pexy-app/pexy-data/pkg/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB points the store at an in-memory database and a temp document
// dir for the duration of the test.
func SetupTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.UserProfile{}, &db.Favorite{}, &db.CustomPhrase{}, &db.CustomPictogram{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	db.DB = gdb
	db.DocumentDir = t.TempDir()
	if err := os.MkdirAll(db.ImagesDir(), 0o755); err != nil {
		t.Fatalf("failed to create images dir: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to access underlying DB: %v", err)
	}

	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}
		db.DB = nil
		db.DocumentDir = ""
	})
}
