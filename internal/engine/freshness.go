package engine

import (
	"math"
	"time"

	"forkful/models"
)

// ExpiringSoonDays is the attention window before expiry.
const ExpiringSoonDays = 7

const millisPerDay = 24 * 60 * 60 * 1000

// ItemStatus classifies a pantry item's freshness from its expiration date
// and the supplied clock reading. A nil expiration means the item never
// expires and is always good.
//
// Days until expiry use millisecond-based ceiling division: an item less
// than a full day past its expiration still rounds to day zero and reports
// expiring-soon; only a full day past expiry reports expired. Exactly seven
// days out is still expiring-soon, eight is good.
func ItemStatus(expiration *time.Time, now time.Time) string {
	if expiration == nil {
		return models.StatusGood
	}

	days := math.Ceil(float64(expiration.Sub(now).Milliseconds()) / millisPerDay)
	switch {
	case days < 0:
		return models.StatusExpired
	case days <= ExpiringSoonDays:
		return models.StatusExpiringSoon
	default:
		return models.StatusGood
	}
}
