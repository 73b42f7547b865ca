package db_test

import (
	"os"
	"testing"

	"github.com/pexy-app/pexy-data/pkg/db"
	"github.com/pexy-app/pexy-data/pkg/internal/testutil"
)

func TestClearAllData(t *testing.T) {
	testutil.SetupTestDB(t)

	if err := db.CreateUserProfile(&db.UserProfile{Name: "Léa", Language: "fr", TTSSpeed: 1.0}); err != nil {
		t.Fatalf("CreateUserProfile returned error: %v", err)
	}
	if err := db.AddFavorite("transport_car"); err != nil {
		t.Fatalf("AddFavorite returned error: %v", err)
	}
	pictogram := createPictogram(t, "Doudou")
	addPhrase(t, pictogram.CustomID, "C'est mon doudou", "fr")

	if err := db.ClearAllData(); err != nil {
		t.Fatalf("ClearAllData returned error: %v", err)
	}

	profile, err := db.GetUserProfile()
	if err != nil {
		t.Fatalf("GetUserProfile returned error: %v", err)
	}
	if profile != nil {
		t.Error("expected no profile after wipe")
	}
	if ids, _ := db.GetFavorites(); len(ids) != 0 {
		t.Errorf("expected no favorites after wipe, got %v", ids)
	}
	for _, language := range db.SupportedLanguages {
		if phrases, _ := db.GetAllCustomPhrases(language); len(phrases) != 0 {
			t.Errorf("expected no %s phrases after wipe, got %+v", language, phrases)
		}
	}
	if pictograms, _ := db.GetCustomPictograms(); len(pictograms) != 0 {
		t.Errorf("expected no pictograms after wipe, got %+v", pictograms)
	}

	entries, err := os.ReadDir(db.ImagesDir())
	if err != nil {
		t.Fatalf("failed to read images dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected an empty images dir after wipe, found %d entries", len(entries))
	}
}

func TestClearAllDataOnEmptyStore(t *testing.T) {
	testutil.SetupTestDB(t)

	if err := db.ClearAllData(); err != nil {
		t.Errorf("wiping an empty store should succeed: %v", err)
	}
}
