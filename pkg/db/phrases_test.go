package db_test

import (
	"testing"

	"github.com/pexy-app/pexy-data/pkg/db"
	"github.com/pexy-app/pexy-data/pkg/internal/testutil"
)

func addPhrase(t *testing.T, pictogramID, text, language string) db.CustomPhrase {
	t.Helper()
	phrase := db.CustomPhrase{PictogramID: pictogramID, Text: text, Language: language}
	if err := db.AddCustomPhrase(&phrase); err != nil {
		t.Fatalf("AddCustomPhrase returned error: %v", err)
	}
	return phrase
}

func TestCustomPhrasesPartitionedByLanguage(t *testing.T) {
	testutil.SetupTestDB(t)

	addPhrase(t, "transport_car", "Je veux aller en voiture", "fr")
	addPhrase(t, "transport_car", "I want to go by car", "en")
	addPhrase(t, "transport_bus", "Le bus arrive", "fr")

	fr, err := db.GetCustomPhrases("transport_car", "fr")
	if err != nil {
		t.Fatalf("GetCustomPhrases returned error: %v", err)
	}
	if len(fr) != 1 || fr[0].Text != "Je veux aller en voiture" {
		t.Errorf("unexpected fr phrases %+v", fr)
	}

	en, err := db.GetCustomPhrases("transport_car", "en")
	if err != nil {
		t.Fatalf("GetCustomPhrases returned error: %v", err)
	}
	if len(en) != 1 || en[0].Text != "I want to go by car" {
		t.Errorf("unexpected en phrases %+v", en)
	}

	allFR, err := db.GetAllCustomPhrases("fr")
	if err != nil {
		t.Fatalf("GetAllCustomPhrases returned error: %v", err)
	}
	if len(allFR) != 2 {
		t.Errorf("expected 2 fr phrases in total, got %d", len(allFR))
	}
}

func TestGetCustomPhrasesNewestFirst(t *testing.T) {
	testutil.SetupTestDB(t)

	addPhrase(t, "p1", "older", "fr")
	addPhrase(t, "p1", "newer", "fr")

	phrases, err := db.GetCustomPhrases("p1", "fr")
	if err != nil {
		t.Fatalf("GetCustomPhrases returned error: %v", err)
	}
	if len(phrases) != 2 || phrases[0].Text != "newer" || phrases[1].Text != "older" {
		t.Errorf("expected newest first, got %+v", phrases)
	}
}

func TestUpdateCustomPhrase(t *testing.T) {
	testutil.SetupTestDB(t)

	phrase := addPhrase(t, "p1", "avant", "fr")

	text := "après"
	emoji := "🚗"
	updated, err := db.UpdateCustomPhrase(phrase.ID, &text, &emoji)
	if err != nil {
		t.Fatalf("UpdateCustomPhrase returned error: %v", err)
	}
	if updated == nil {
		t.Fatal("expected the updated phrase")
	}
	if updated.Text != "après" || updated.Emoji == nil || *updated.Emoji != "🚗" {
		t.Errorf("unexpected phrase %+v", updated)
	}

	missing, err := db.UpdateCustomPhrase(9999, &text, nil)
	if err != nil {
		t.Fatalf("UpdateCustomPhrase returned error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for a missing id, got %+v", missing)
	}
}

func TestDeleteCustomPhrase(t *testing.T) {
	testutil.SetupTestDB(t)

	phrase := addPhrase(t, "p1", "à supprimer", "fr")
	if err := db.DeleteCustomPhrase(phrase.ID); err != nil {
		t.Fatalf("DeleteCustomPhrase returned error: %v", err)
	}

	phrases, err := db.GetCustomPhrases("p1", "fr")
	if err != nil {
		t.Fatalf("GetCustomPhrases returned error: %v", err)
	}
	if len(phrases) != 0 {
		t.Errorf("expected no phrases after delete, got %+v", phrases)
	}
}
