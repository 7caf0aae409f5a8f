package engine

import (
	"math"

	"forkful/models"
)

// Readiness aggregates per-ingredient availability for one recipe. Score is
// a 0-100 percentage with partially covered ingredients counted at half
// weight.
type Readiness struct {
	RecipeID             uint           `json:"recipe_id"`
	TotalIngredients     int            `json:"total_ingredients"`
	AvailableIngredients int            `json:"available_ingredients"`
	PartialIngredients   int            `json:"partial_ingredients"`
	MissingIngredients   int            `json:"missing_ingredients"`
	Score                int            `json:"readiness_score"`
	Ingredients          []Availability `json:"ingredients"`
}

// RecipeReadiness resolves availability for every ingredient of the recipe
// and folds the results into a readiness score. A recipe with no
// ingredients scores zero.
func RecipeReadiness(recipe models.Recipe, pantry []models.PantryItem) Readiness {
	readiness := Readiness{
		RecipeID:         recipe.ID,
		TotalIngredients: len(recipe.Ingredients),
		Ingredients:      make([]Availability, 0, len(recipe.Ingredients)),
	}

	for _, ingredient := range recipe.Ingredients {
		availability := IngredientAvailability(ingredient, pantry)
		readiness.Ingredients = append(readiness.Ingredients, availability)

		switch {
		case availability.Sufficient:
			readiness.AvailableIngredients++
		case availability.Available > 0:
			readiness.PartialIngredients++
		default:
			readiness.MissingIngredients++
		}
	}

	if readiness.TotalIngredients > 0 {
		weighted := float64(readiness.AvailableIngredients) + 0.5*float64(readiness.PartialIngredients)
		readiness.Score = int(math.Round(weighted / float64(readiness.TotalIngredients) * 100))
	}

	return readiness
}

// RecipesReadiness scores every recipe in the collection independently,
// keyed by recipe ID. Pantry quantities are not decremented or reserved
// across recipes: each score reflects the full current inventory regardless
// of what other recipes would consume. That isolation is deliberate.
func RecipesReadiness(recipes []models.Recipe, pantry []models.PantryItem) map[uint]Readiness {
	results := make(map[uint]Readiness, len(recipes))
	for _, recipe := range recipes {
		results[recipe.ID] = RecipeReadiness(recipe, pantry)
	}
	return results
}
