package engine

import (
	"math"
	"testing"

	"gorm.io/gorm"

	"forkful/models"
)

func pantryItem(id, foodID uint, size float64, unit, status string) models.PantryItem {
	return models.PantryItem{
		Model:       gorm.Model{ID: id},
		FoodID:      foodID,
		CurrentSize: size,
		CurrentUnit: unit,
		Status:      status,
	}
}

func TestIngredientAvailabilityAddsNonExpiredEntries(t *testing.T) {
	t.Parallel()

	ingredient := models.Ingredient{FoodID: 1, Quantity: 200, ServingUnit: "g"}
	pantry := []models.PantryItem{
		pantryItem(1, 1, 100, "g", models.StatusGood),
		pantryItem(2, 1, 150, "g", models.StatusExpiringSoon),
		pantryItem(3, 2, 400, "g", models.StatusGood),
	}

	got := IngredientAvailability(ingredient, pantry)
	if got.Available != 250 {
		t.Fatalf("Available = %v, want 250", got.Available)
	}
	if !got.Sufficient {
		t.Fatal("250 g on hand should satisfy 200 g needed")
	}
	if got.Shortage != 0 {
		t.Fatalf("Shortage = %v, want 0", got.Shortage)
	}
	if got.Unit != "g" || got.Needed != 200 {
		t.Fatalf("result carries wrong needed/unit: %+v", got)
	}
}

func TestIngredientAvailabilityIgnoresExpiredStock(t *testing.T) {
	t.Parallel()

	ingredient := models.Ingredient{FoodID: 1, Quantity: 100, ServingUnit: "g"}
	pantry := []models.PantryItem{
		pantryItem(1, 1, 500, "g", models.StatusExpired),
		pantryItem(2, 1, 40, "g", models.StatusGood),
	}

	got := IngredientAvailability(ingredient, pantry)
	if got.Available != 40 {
		t.Fatalf("expired stock contributed: Available = %v, want 40", got.Available)
	}
	if got.Sufficient {
		t.Fatal("40 g cannot satisfy 100 g")
	}
	if got.Shortage != 60 {
		t.Fatalf("Shortage = %v, want 60", got.Shortage)
	}
}

func TestIngredientAvailabilityConvertsCompatibleUnits(t *testing.T) {
	t.Parallel()

	ingredient := models.Ingredient{FoodID: 1, Quantity: 1, ServingUnit: "kg"}
	pantry := []models.PantryItem{
		pantryItem(1, 1, 600, "g", models.StatusGood),
		pantryItem(2, 1, 0.5, "kg", models.StatusGood),
		// Incompatible unit: skipped silently, never an error.
		pantryItem(3, 1, 2, "slice", models.StatusGood),
	}

	got := IngredientAvailability(ingredient, pantry)
	if math.Abs(got.Available-1.1) > 1e-9 {
		t.Fatalf("Available = %v, want 1.1", got.Available)
	}
	if !got.Sufficient {
		t.Fatal("1.1 kg should satisfy 1 kg")
	}
}

func TestIngredientAvailabilityEmptyPantryIsMissingNotError(t *testing.T) {
	t.Parallel()

	ingredient := models.Ingredient{FoodID: 9, Quantity: 3, ServingUnit: "cup"}

	got := IngredientAvailability(ingredient, nil)
	if got.Available != 0 {
		t.Fatalf("Available = %v, want 0", got.Available)
	}
	if got.Sufficient {
		t.Fatal("empty pantry cannot be sufficient")
	}
	if got.Shortage != 3 {
		t.Fatalf("Shortage = %v, want 3", got.Shortage)
	}
}

func TestIngredientAvailabilityShortageNeverNegative(t *testing.T) {
	t.Parallel()

	ingredient := models.Ingredient{FoodID: 1, Quantity: 10, ServingUnit: "g"}
	pantry := []models.PantryItem{pantryItem(1, 1, 500, "g", models.StatusGood)}

	got := IngredientAvailability(ingredient, pantry)
	if got.Shortage != 0 {
		t.Fatalf("Shortage = %v, want 0 when oversupplied", got.Shortage)
	}
}
