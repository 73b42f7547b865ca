package catalog_test

import (
	"testing"

	"github.com/pexy-app/pexy-data/pkg/catalog"
)

func TestByID(t *testing.T) {
	category := catalog.ByID("transport")
	if category == nil {
		t.Fatal("expected the transport category to exist")
	}
	if category.NameFR == "" || category.NameEN == "" {
		t.Errorf("expected names in both languages, got %+v", category)
	}
	if category.Name("fr") != category.NameFR {
		t.Error("Name(fr) should return the French name")
	}
	if category.Name("en") != category.NameEN {
		t.Error("Name(en) should return the English name")
	}

	if catalog.ByID("nope") != nil {
		t.Error("expected an unknown id to miss")
	}
}

func TestIsValid(t *testing.T) {
	if !catalog.IsValid("custom") {
		t.Error("the custom sentinel category must be valid")
	}
	if catalog.IsValid("") {
		t.Error("the empty id must be invalid")
	}
}

func TestCatalogIsWellFormed(t *testing.T) {
	seen := make(map[string]bool, len(catalog.Categories))
	for _, category := range catalog.Categories {
		if category.ID == "" {
			t.Fatalf("category with empty id: %+v", category)
		}
		if seen[category.ID] {
			t.Errorf("duplicate category id %q", category.ID)
		}
		seen[category.ID] = true
	}
}
