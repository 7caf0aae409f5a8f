package engine

import (
	"forkful/models"
)

// Availability describes how much of one recipe ingredient the pantry can
// currently cover. Zero availability means the ingredient is simply missing;
// it is not an error state.
type Availability struct {
	Ingredient models.Ingredient `json:"ingredient"`
	Available  float64           `json:"available"`
	Needed     float64           `json:"needed"`
	Unit       string            `json:"unit"`
	Sufficient bool              `json:"is_sufficient"`
	Shortage   float64           `json:"shortage"`
}

// IngredientAvailability sums the pantry's non-expired stock of the
// ingredient's food, expressed in the ingredient's unit.
//
// Items are matched on food ID and filtered on their cached Status field;
// stale statuses are honored deliberately, so a refresh may change the
// outcome. Item sizes in the same unit add directly, convertible units add
// after conversion, and incompatible units are skipped silently.
func IngredientAvailability(ingredient models.Ingredient, pantry []models.PantryItem) Availability {
	available := 0.0
	for _, item := range pantry {
		if item.FoodID != ingredient.FoodID || item.Status == models.StatusExpired {
			continue
		}
		if SameUnit(item.CurrentUnit, ingredient.ServingUnit) {
			available += item.CurrentSize
			continue
		}
		if converted, ok := ConvertUnit(item.CurrentSize, item.CurrentUnit, ingredient.ServingUnit); ok {
			available += converted
		}
	}

	shortage := ingredient.Quantity - available
	if shortage < 0 {
		shortage = 0
	}

	return Availability{
		Ingredient: ingredient,
		Available:  available,
		Needed:     ingredient.Quantity,
		Unit:       ingredient.ServingUnit,
		Sufficient: available >= ingredient.Quantity,
		Shortage:   shortage,
	}
}
