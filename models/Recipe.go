package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Recipe groups an ordered list of ingredients under a meal category.
// DatePublished is nil while the recipe is still a draft.
type Recipe struct {
	gorm.Model
	Name          string       `gorm:"not null" json:"name"`
	MealCategory  string       `gorm:"type:varchar(32);default:dinner" json:"meal_category"`
	Description   string       `gorm:"type:text" json:"description"`
	Ingredients   []Ingredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
	DateAdded     time.Time    `json:"date_added"`
	DatePublished *time.Time   `json:"date_published,omitempty"`
}

// Meal category vocabulary.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
	MealDessert   = "dessert"

	DefaultMealCategory = MealDinner
)

var mealCategories = []string{MealBreakfast, MealLunch, MealDinner, MealSnack, MealDessert}

// MealCategories returns the list of canonical meal category values.
func MealCategories() []string {
	result := make([]string, len(mealCategories))
	copy(result, mealCategories)
	return result
}

// ValidMealCategory reports whether the value is a known meal category.
func ValidMealCategory(value string) bool {
	for _, category := range mealCategories {
		if value == category {
			return true
		}
	}
	return false
}

// NormalizeMealCategory lowercases and trims the value, falling back to the
// default category when it is not part of the vocabulary.
func NormalizeMealCategory(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if ValidMealCategory(normalized) {
		return normalized
	}
	return DefaultMealCategory
}

// Published reports whether the recipe has left the draft state.
func (r Recipe) Published() bool {
	return r.DatePublished != nil
}

// IngredientNames collects the names of all linked foods, preserving the
// ingredient order. Lines whose food has not been loaded are skipped.
func (r Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for _, ingredient := range r.Ingredients {
		if ingredient.Food != nil && ingredient.Food.Name != "" {
			names = append(names, ingredient.Food.Name)
		}
	}
	return names
}
