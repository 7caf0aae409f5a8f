package models

import (
	"gorm.io/gorm"
)

// Ingredient is one line item of a recipe. The serving unit is the unit used
// in this recipe and may differ from the food's base unit when the two are
// convertible.
type Ingredient struct {
	gorm.Model
	RecipeID uint `gorm:"not null" json:"recipe_id"`
	FoodID   uint `gorm:"not null" json:"food_id"`

	// Quantity may be zero while a form is being filled in, but zero is
	// rejected when the parent recipe is persisted.
	Quantity    float64 `json:"quantity"`
	ServingUnit string  `gorm:"not null" json:"serving_unit"`

	// Calories caches the calorie calculator's result for this line item.
	// It is recomputed on every recipe write and can go stale otherwise.
	Calories float64 `json:"calories"`

	Food *Food `gorm:"foreignKey:FoodID" json:"food,omitempty"`
}

// DisplayName returns the linked food's name when it has been loaded.
func (i Ingredient) DisplayName() string {
	if i.Food != nil && i.Food.Name != "" {
		return i.Food.Name
	}
	return "Unassigned Ingredient"
}
