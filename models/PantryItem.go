package models

import (
	"time"

	"gorm.io/gorm"
)

// PantryItem is one purchased lot of a food sitting in the pantry.
//
// A nil ExpirationDate means the item never expires. Status caches the
// freshness classification derived from ExpirationDate and the clock; it is
// authoritative only until time passes and is recomputed on create, update,
// and explicit bulk refresh. There is no background timer, so a stale value
// can persist past actual expiry until a refresh runs.
type PantryItem struct {
	gorm.Model
	FoodID uint  `gorm:"not null" json:"food_id"`
	Food   *Food `gorm:"foreignKey:FoodID" json:"food,omitempty"`

	Quantity     float64 `json:"quantity"`
	QuantityLeft float64 `json:"quantity_left"`

	OriginalSize float64 `json:"original_size"`
	OriginalUnit string  `json:"original_unit"`
	CurrentSize  float64 `json:"current_size"`
	CurrentUnit  string  `json:"current_unit"`

	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	AddedDate      time.Time  `json:"added_date"`
	FrozenDate     *time.Time `json:"frozen_date,omitempty"`

	Status string `gorm:"type:varchar(16);default:good" json:"status"`
}

// Freshness vocabulary.
const (
	StatusGood         = "good"
	StatusExpiringSoon = "expiring-soon"
	StatusExpired      = "expired"
)

var itemStatuses = []string{StatusGood, StatusExpiringSoon, StatusExpired}

// ItemStatuses returns the list of canonical freshness values.
func ItemStatuses() []string {
	result := make([]string, len(itemStatuses))
	copy(result, itemStatuses)
	return result
}

// ValidItemStatus reports whether the value is a known freshness state.
func ValidItemStatus(value string) bool {
	for _, status := range itemStatuses {
		if value == status {
			return true
		}
	}
	return false
}

// Frozen reports whether the item has been marked as frozen. The marker is
// informational and plays no part in the freshness computation.
func (p PantryItem) Frozen() bool {
	return p.FrozenDate != nil
}
