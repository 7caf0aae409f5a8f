package models

import (
	"strings"

	"gorm.io/gorm"
)

// Food is a catalog entry. Calories and the macro profile are defined per
// ServingSize units of ServingUnit; names are unique case-insensitively.
type Food struct {
	gorm.Model
	Name          string        `gorm:"uniqueIndex;not null" json:"name"`
	Calories      float64       `gorm:"not null" json:"calories"`
	Protein       float64       `json:"protein"`
	Carbohydrates float64       `json:"carbohydrates"`
	Fats          float64       `json:"fats"`
	ServingSize   float64       `gorm:"not null" json:"serving_size"`
	ServingUnit   string        `gorm:"not null" json:"serving_unit"`
	Measurements  []Measurement `gorm:"foreignKey:FoodID" json:"measurements"`
}

// Measurement holds one unit the food may be measured in. The serving unit
// is always part of the set; the store enforces this on create and update.
type Measurement struct {
	gorm.Model
	Unit   string `gorm:"not null" json:"unit"`
	FoodID uint
}

// DefaultServingUnit is assumed when a food is created without a unit.
const DefaultServingUnit = "serving"

// HasMeasurement reports whether the unit belongs to the food's permitted
// measurement set. Comparison ignores case and surrounding whitespace.
func (f Food) HasMeasurement(unit string) bool {
	needle := normalizeUnitLabel(unit)
	if needle == "" {
		return false
	}
	if normalizeUnitLabel(f.ServingUnit) == needle {
		return true
	}
	for _, m := range f.Measurements {
		if normalizeUnitLabel(m.Unit) == needle {
			return true
		}
	}
	return false
}

func normalizeUnitLabel(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}
