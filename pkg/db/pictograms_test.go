package db_test

import (
	"os"
	"strings"
	"testing"

	"github.com/pexy-app/pexy-data/pkg/db"
	"github.com/pexy-app/pexy-data/pkg/internal/testutil"
)

func createPictogram(t *testing.T, name string) db.CustomPictogram {
	t.Helper()
	customID := db.NewCustomID()
	imagePath, err := db.SaveCustomImage(customID, []byte("fake webp bytes"))
	if err != nil {
		t.Fatalf("SaveCustomImage returned error: %v", err)
	}
	pictogram := db.CustomPictogram{CustomID: customID, Name: name, ImagePath: imagePath}
	if err := db.CreateCustomPictogram(&pictogram); err != nil {
		t.Fatalf("CreateCustomPictogram returned error: %v", err)
	}
	return pictogram
}

func TestNewCustomIDFormat(t *testing.T) {
	id := db.NewCustomID()
	if !strings.HasPrefix(id, "custom_") {
		t.Errorf("expected custom_ prefix, got %q", id)
	}
	if parts := strings.Split(id, "_"); len(parts) != 3 {
		t.Errorf("expected custom_<timestamp>_<suffix>, got %q", id)
	}
	if id == db.NewCustomID() {
		t.Error("expected two generated ids to differ")
	}
}

func TestCreateCustomPictogram(t *testing.T) {
	testutil.SetupTestDB(t)

	pictogram := createPictogram(t, "Doudou")
	if pictogram.CategoryID != db.CustomCategoryID {
		t.Errorf("expected the custom sentinel category, got %q", pictogram.CategoryID)
	}
	if _, err := os.Stat(db.ImageAbsPath(pictogram.ImagePath)); err != nil {
		t.Errorf("expected a backing image file: %v", err)
	}

	found, err := db.GetCustomPictogramByID(pictogram.CustomID)
	if err != nil {
		t.Fatalf("GetCustomPictogramByID returned error: %v", err)
	}
	if found == nil || found.Name != "Doudou" {
		t.Errorf("unexpected pictogram %+v", found)
	}

	missing, err := db.GetCustomPictogramByID("custom_0_nope")
	if err != nil {
		t.Fatalf("GetCustomPictogramByID returned error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for an unknown id, got %+v", missing)
	}
}

func TestUpdateCustomPictogram(t *testing.T) {
	testutil.SetupTestDB(t)

	pictogram := createPictogram(t, "Avant")
	updated, err := db.UpdateCustomPictogram(pictogram.CustomID, "Après")
	if err != nil {
		t.Fatalf("UpdateCustomPictogram returned error: %v", err)
	}
	if updated == nil || updated.Name != "Après" {
		t.Errorf("unexpected pictogram %+v", updated)
	}
}

func TestDeleteCustomPictogramCascades(t *testing.T) {
	testutil.SetupTestDB(t)

	pictogram := createPictogram(t, "Doudou")
	addPhrase(t, pictogram.CustomID, "C'est mon doudou", "fr")
	addPhrase(t, pictogram.CustomID, "This is my plush", "en")

	if err := db.DeleteCustomPictogram(pictogram.CustomID); err != nil {
		t.Fatalf("DeleteCustomPictogram returned error: %v", err)
	}

	if _, err := os.Stat(db.ImageAbsPath(pictogram.ImagePath)); !os.IsNotExist(err) {
		t.Error("expected the image file to be deleted")
	}
	for _, language := range db.SupportedLanguages {
		phrases, err := db.GetCustomPhrases(pictogram.CustomID, language)
		if err != nil {
			t.Fatalf("GetCustomPhrases returned error: %v", err)
		}
		if len(phrases) != 0 {
			t.Errorf("expected no %s phrases after cascade delete, got %+v", language, phrases)
		}
	}
	found, err := db.GetCustomPictogramByID(pictogram.CustomID)
	if err != nil {
		t.Fatalf("GetCustomPictogramByID returned error: %v", err)
	}
	if found != nil {
		t.Error("expected the pictogram row to be deleted")
	}
}

func TestDeleteCustomPictogramToleratesMissingFile(t *testing.T) {
	testutil.SetupTestDB(t)

	pictogram := createPictogram(t, "Doudou")
	if err := os.Remove(db.ImageAbsPath(pictogram.ImagePath)); err != nil {
		t.Fatalf("failed to remove image file: %v", err)
	}

	if err := db.DeleteCustomPictogram(pictogram.CustomID); err != nil {
		t.Errorf("a missing image file should not fail the delete: %v", err)
	}
}

func TestDeleteCustomPictogramMissingIsNoOp(t *testing.T) {
	testutil.SetupTestDB(t)

	if err := db.DeleteCustomPictogram("custom_0_nope"); err != nil {
		t.Errorf("deleting an unknown pictogram should be a no-op: %v", err)
	}
}
