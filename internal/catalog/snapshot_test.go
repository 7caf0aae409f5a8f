package catalog

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"forkful/models"
)

func TestNewSnapshotSortsCollections(t *testing.T) {
	t.Parallel()

	foods := []models.Food{
		{Model: gorm.Model{ID: 2}, Name: "Rice"},
		{Model: gorm.Model{ID: 1}, Name: "Milk"},
	}
	recipes := []models.Recipe{
		{Model: gorm.Model{ID: 2}, Name: "Stew"},
		{Model: gorm.Model{ID: 1}, Name: "Porridge"},
	}
	soon := time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	items := []models.PantryItem{
		{Model: gorm.Model{ID: 1}},
		{Model: gorm.Model{ID: 2}, ExpirationDate: &later},
		{Model: gorm.Model{ID: 3}, ExpirationDate: &soon},
	}

	snapshot := NewSnapshot(foods, recipes, items)

	if snapshot.Foods[0].Name != "Milk" {
		t.Fatalf("foods not sorted by name: %v", snapshot.Foods)
	}
	if snapshot.Recipes[0].Name != "Porridge" {
		t.Fatalf("recipes not sorted by name: %v", snapshot.Recipes)
	}
	if snapshot.PantryItems[0].ID != 3 || snapshot.PantryItems[2].ID != 1 {
		t.Fatalf("pantry not sorted by expiration: %+v", snapshot.PantryItems)
	}
}

func TestNewSnapshotComputesReadiness(t *testing.T) {
	t.Parallel()

	recipes := []models.Recipe{
		{
			Model: gorm.Model{ID: 1},
			Name:  "Rice Bowl",
			Ingredients: []models.Ingredient{
				{FoodID: 1, Quantity: 100, ServingUnit: "g"},
			},
		},
	}
	items := []models.PantryItem{
		{Model: gorm.Model{ID: 1}, FoodID: 1, CurrentSize: 500, CurrentUnit: "g", Status: models.StatusGood},
	}

	snapshot := NewSnapshot(nil, recipes, items)

	readiness, ok := snapshot.Readiness[1]
	if !ok {
		t.Fatal("expected readiness entry for recipe 1")
	}
	if readiness.Score != 100 {
		t.Fatalf("Score = %d, want 100", readiness.Score)
	}
}

func TestSnapshotExpiringSoon(t *testing.T) {
	t.Parallel()

	items := []models.PantryItem{
		{Model: gorm.Model{ID: 1}, Status: models.StatusGood},
		{Model: gorm.Model{ID: 2}, Status: models.StatusExpiringSoon},
		{Model: gorm.Model{ID: 3}, Status: models.StatusExpired},
	}

	snapshot := Snapshot{PantryItems: items}
	flagged := snapshot.ExpiringSoon()
	if len(flagged) != 1 || flagged[0].ID != 2 {
		t.Fatalf("ExpiringSoon returned %+v", flagged)
	}
}

func TestEmptySnapshot(t *testing.T) {
	t.Parallel()

	snapshot := EmptySnapshot()
	if snapshot.Readiness == nil {
		t.Fatal("empty snapshot should carry a usable readiness map")
	}
	if lookup := snapshot.FoodLookup(); len(lookup) != 0 {
		t.Fatalf("expected empty lookup, got %v", lookup)
	}
}
