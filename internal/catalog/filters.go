// Package catalog provides the list-view helpers: filtering, sorting, and
// an aggregate snapshot with readiness scores. It renders nothing; callers
// feed the results to whatever surface they own.
package catalog

import (
	"sort"
	"strings"

	"forkful/models"
)

// FoodFilters capture the client-driven state for catalog lookups.
type FoodFilters struct {
	Query string
	Unit  string
}

// FilterFoods applies the provided filters to a list of foods.
func FilterFoods(all []models.Food, filters FoodFilters) []models.Food {
	query := strings.ToLower(strings.TrimSpace(filters.Query))
	unit := strings.TrimSpace(filters.Unit)
	if query == "" && unit == "" {
		return all
	}

	filtered := make([]models.Food, 0, len(all))
	for _, food := range all {
		if query != "" && !containsFold(food.Name, query) {
			continue
		}
		if unit != "" && !food.HasMeasurement(unit) {
			continue
		}
		filtered = append(filtered, food)
	}
	return filtered
}

// RecipeFilters capture the client-driven state for recipe lookups.
type RecipeFilters struct {
	Query         string
	MealCategory  string
	PublishedOnly bool
}

// FilterRecipes applies the provided filters to a list of recipes.
func FilterRecipes(all []models.Recipe, filters RecipeFilters) []models.Recipe {
	query := strings.ToLower(strings.TrimSpace(filters.Query))
	category := strings.ToLower(strings.TrimSpace(filters.MealCategory))
	if query == "" && category == "" && !filters.PublishedOnly {
		return all
	}

	filtered := make([]models.Recipe, 0, len(all))
	for _, recipe := range all {
		if query != "" && !containsFold(recipe.Name, query) && !containsFold(recipe.Description, query) {
			continue
		}
		if category != "" && recipe.MealCategory != category {
			continue
		}
		if filters.PublishedOnly && !recipe.Published() {
			continue
		}
		filtered = append(filtered, recipe)
	}
	return filtered
}

// PantryFilters capture the client-driven state for pantry lookups.
type PantryFilters struct {
	Query  string
	Status string
}

// FilterPantryItems applies the provided filters to a list of pantry items.
// The query matches against the linked food's name.
func FilterPantryItems(all []models.PantryItem, filters PantryFilters) []models.PantryItem {
	query := strings.ToLower(strings.TrimSpace(filters.Query))
	status := strings.TrimSpace(filters.Status)
	if query == "" && status == "" {
		return all
	}

	filtered := make([]models.PantryItem, 0, len(all))
	for _, item := range all {
		if query != "" {
			name := ""
			if item.Food != nil {
				name = item.Food.Name
			}
			if !containsFold(name, query) {
				continue
			}
		}
		if status != "" && item.Status != status {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// SortPantryByExpiration orders items soonest-expiring first; items without
// a tracked expiry sort last, by ID for stability.
func SortPantryByExpiration(items []models.PantryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].ExpirationDate, items[j].ExpirationDate
		switch {
		case a == nil && b == nil:
			return items[i].ID < items[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.Before(*b)
		default:
			return items[i].ID < items[j].ID
		}
	})
}

// FindFood returns the first food matching the requested identifier.
func FindFood(all []models.Food, id uint) *models.Food {
	for i := range all {
		if all[i].ID == id {
			return &all[i]
		}
	}
	return nil
}

// FindRecipe returns the first recipe matching the requested identifier.
func FindRecipe(all []models.Recipe, id uint) *models.Recipe {
	for i := range all {
		if all[i].ID == id {
			return &all[i]
		}
	}
	return nil
}

// FindPantryItem returns the first item matching the requested identifier.
func FindPantryItem(all []models.PantryItem, id uint) *models.PantryItem {
	for i := range all {
		if all[i].ID == id {
			return &all[i]
		}
	}
	return nil
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}
