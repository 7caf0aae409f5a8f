package store

import (
	"context"
	"fmt"
	"time"

	applog "forkful/internal/log"
	"forkful/models"
)

type seedIngredient struct {
	food     string
	quantity float64
	unit     string
}

type seedRecipe struct {
	name        string
	category    string
	description string
	ingredients []seedIngredient
}

type seedPantryItem struct {
	food         string
	quantity     float64
	size         float64
	unit         string
	expiresIn    int // days from seeding; < 0 means no tracked expiry
	frozen       bool
	quantityLeft float64
}

// Seed loads a representative catalog, recipe book, and pantry. A recipe or
// pantry line naming a food that the catalog does not define is a fatal
// configuration error and aborts the whole seed.
func (s *Store) Seed(ctx context.Context) error {
	applog.Debug(ctx, "seeding store")

	foods := []FoodInput{
		{Name: "Chicken Breast", Calories: 165, Protein: 31, Carbohydrates: 0, Fats: 3.6,
			ServingSize: 100, ServingUnit: "g", Measurements: []string{"kg", "oz", "lb"}},
		{Name: "Basmati Rice", Calories: 350, Protein: 7, Carbohydrates: 77, Fats: 0.6,
			ServingSize: 100, ServingUnit: "g", Measurements: []string{"kg", "cup"}},
		{Name: "Whole Milk", Calories: 64, Protein: 3.3, Carbohydrates: 4.7, Fats: 3.6,
			ServingSize: 100, ServingUnit: "ml", Measurements: []string{"l", "cup"}},
		{Name: "Sourdough Bread", Calories: 110, Protein: 4, Carbohydrates: 21, Fats: 0.8,
			ServingSize: 1, ServingUnit: "slice", Measurements: []string{"loaf"}},
		{Name: "Cheddar", Calories: 403, Protein: 23, Carbohydrates: 1.3, Fats: 33,
			ServingSize: 100, ServingUnit: "g", Measurements: []string{"oz", "slice"}},
		{Name: "Smoked Ham", Calories: 145, Protein: 21, Carbohydrates: 1.5, Fats: 5.5,
			ServingSize: 100, ServingUnit: "g", Measurements: []string{"oz", "slice"}},
		{Name: "Olive Oil", Calories: 884, Protein: 0, Carbohydrates: 0, Fats: 100,
			ServingSize: 100, ServingUnit: "ml", Measurements: []string{"l", "tsp", "Tbs"}},
	}

	byName := make(map[string]uint, len(foods))
	for _, input := range foods {
		food, err := s.CreateFood(ctx, input)
		if err != nil {
			return fmt.Errorf("seed food %q: %w", input.Name, err)
		}
		byName[input.Name] = food.ID
	}

	recipes := []seedRecipe{
		{
			name:        "Ham & Cheese Toast",
			category:    models.MealBreakfast,
			description: "Grilled open sandwich with a sharp cheddar melt.",
			ingredients: []seedIngredient{
				{"Sourdough Bread", 2, "slice"},
				{"Smoked Ham", 60, "g"},
				{"Cheddar", 40, "g"},
			},
		},
		{
			name:        "Chicken Rice Bowl",
			category:    models.MealDinner,
			description: "Pan-seared chicken over steamed basmati.",
			ingredients: []seedIngredient{
				{"Chicken Breast", 200, "g"},
				{"Basmati Rice", 150, "g"},
				{"Olive Oil", 1, "Tbs"},
			},
		},
		{
			name:        "Croque Forkful",
			category:    models.MealLunch,
			description: "House take on the croque monsieur.",
			ingredients: []seedIngredient{
				{"Sourdough Bread", 2, "slice"},
				{"Smoked Ham", 80, "g"},
				{"Cheddar", 50, "g"},
				{"Whole Milk", 100, "ml"},
			},
		},
	}

	for _, seed := range recipes {
		input := RecipeInput{
			Name:         seed.name,
			MealCategory: seed.category,
			Description:  seed.description,
		}
		for _, line := range seed.ingredients {
			foodID, ok := byName[line.food]
			if !ok {
				return fmt.Errorf("seed recipe %q references unknown food %q", seed.name, line.food)
			}
			input.Ingredients = append(input.Ingredients, IngredientInput{
				FoodID:      foodID,
				Quantity:    line.quantity,
				ServingUnit: line.unit,
			})
		}
		recipe, err := s.CreateRecipe(ctx, input)
		if err != nil {
			return fmt.Errorf("seed recipe %q: %w", seed.name, err)
		}
		if _, err := s.PublishRecipe(ctx, recipe.ID); err != nil {
			return fmt.Errorf("seed recipe %q: %w", seed.name, err)
		}
	}

	pantry := []seedPantryItem{
		{food: "Chicken Breast", quantity: 1, size: 250, unit: "g", expiresIn: 3},
		{food: "Basmati Rice", quantity: 1, size: 1, unit: "kg", expiresIn: 300},
		{food: "Whole Milk", quantity: 2, size: 1, unit: "l", expiresIn: 6},
		{food: "Sourdough Bread", quantity: 1, size: 12, unit: "slice", expiresIn: 4},
		{food: "Cheddar", quantity: 1, size: 200, unit: "g", expiresIn: 21},
		{food: "Smoked Ham", quantity: 1, size: 150, unit: "g", expiresIn: 5, frozen: true},
		{food: "Olive Oil", quantity: 1, size: 500, unit: "ml", expiresIn: -1},
	}

	now := nowFunc().UTC()
	for _, seed := range pantry {
		foodID, ok := byName[seed.food]
		if !ok {
			return fmt.Errorf("seed pantry references unknown food %q", seed.food)
		}

		input := PantryItemInput{
			FoodID:       foodID,
			Quantity:     seed.quantity,
			QuantityLeft: seed.quantityLeft,
			OriginalSize: seed.size,
			OriginalUnit: seed.unit,
		}
		if seed.expiresIn >= 0 {
			expiration := now.AddDate(0, 0, seed.expiresIn)
			input.ExpirationDate = &expiration
		}
		if seed.frozen {
			frozen := now.Add(-24 * time.Hour)
			input.FrozenDate = &frozen
		}

		if _, err := s.CreatePantryItem(ctx, input); err != nil {
			return fmt.Errorf("seed pantry %q: %w", seed.food, err)
		}
	}

	applog.Debug(ctx, "store seeded",
		"foods", len(foods), "recipes", len(recipes), "pantry_items", len(pantry))
	return nil
}
