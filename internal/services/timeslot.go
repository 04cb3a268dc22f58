package services

import (
	"time"
	"travel-itinerary-service/internal/domain"
)

// ScoreTimeCategory rates (0-30) how well a spot's categories fit the
// current time of day.
//
// The base is 10 (neutral), or 30 when the active slot prefers one of the
// spot's categories. Categories the slot avoids cost 20. Repeating the
// immediately preceding visit's category costs 10. A meal followed by a
// cafe/dessert candidate in the post-lunch window earns 15. The result is
// clamped to [0, 30]; hours outside every slot score the neutral base.
func (c Config) ScoreTimeCategory(spot *domain.CatalogSpot, at time.Time, lastCategory string) float64 {
	slot := c.slotFor(at.Hour())

	score := 10.0
	if slot != nil {
		if slot.Prefers(spot) {
			score = 30
		}
		if slot.Avoids(spot) {
			score -= 20
		}
	}

	if lastCategory != "" && spot.HasCategory(lastCategory) {
		score -= 10
	}

	if slot != nil && slot.Label == c.PostLunchLabel && c.isMeal(lastCategory) && c.isCafe(spot) {
		score += 15
	}

	if score < 0 {
		score = 0
	}
	if score > 30 {
		score = 30
	}
	return score
}
