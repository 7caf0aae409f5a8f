package catalog

import (
	"sort"

	"forkful/internal/engine"
	"forkful/models"
)

// Snapshot aggregates the collections a list view needs, sorted
// deterministically, together with the readiness score of every recipe
// against the snapshot's pantry.
type Snapshot struct {
	Foods       []models.Food
	Recipes     []models.Recipe
	PantryItems []models.PantryItem
	Readiness   map[uint]engine.Readiness
}

// NewSnapshot normalises and sorts the supplied collections and computes
// each recipe's readiness. The snapshot never mutates the pantry: readiness
// is evaluated per recipe against the full inventory.
func NewSnapshot(foods []models.Food, recipes []models.Recipe, items []models.PantryItem) Snapshot {
	sort.SliceStable(foods, func(i, j int) bool {
		return foods[i].Name < foods[j].Name
	})

	sort.SliceStable(recipes, func(i, j int) bool {
		if recipes[i].Name == recipes[j].Name {
			return recipes[i].ID < recipes[j].ID
		}
		return recipes[i].Name < recipes[j].Name
	})

	SortPantryByExpiration(items)

	return Snapshot{
		Foods:       foods,
		Recipes:     recipes,
		PantryItems: items,
		Readiness:   engine.RecipesReadiness(recipes, items),
	}
}

// EmptySnapshot returns a zero-value snapshot to simplify call sites when no
// data is available.
func EmptySnapshot() Snapshot {
	return Snapshot{Readiness: map[uint]engine.Readiness{}}
}

// FoodLookup builds a map of food IDs to names.
func (s Snapshot) FoodLookup() map[uint]string {
	lookup := make(map[uint]string, len(s.Foods))
	for _, food := range s.Foods {
		lookup[food.ID] = food.Name
	}
	return lookup
}

// ExpiringSoon lists the pantry items currently flagged for attention,
// preserving the snapshot's expiration ordering.
func (s Snapshot) ExpiringSoon() []models.PantryItem {
	flagged := make([]models.PantryItem, 0)
	for _, item := range s.PantryItems {
		if item.Status == models.StatusExpiringSoon {
			flagged = append(flagged, item)
		}
	}
	return flagged
}
