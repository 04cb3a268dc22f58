package services

import (
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/geo"
)

// DirectionScore rates (0-100) how much net progress toward the day's
// destination a candidate represents versus the detour it costs.
//
// Visiting a candidate that moves the traveler away from the destination
// scores exactly 0: a hard reverse-direction exclusion, not a penalty.
func DirectionScore(current, candidate, destination domain.SpotLocation) float64 {
	direct := geo.HaversineKm(current.Latitude, current.Longitude, destination.Latitude, destination.Longitude)
	toSpot := geo.HaversineKm(current.Latitude, current.Longitude, candidate.Latitude, candidate.Longitude)
	spotToDest := geo.HaversineKm(candidate.Latitude, candidate.Longitude, destination.Latitude, destination.Longitude)

	// Already at (or on top of) the destination: no progress is possible.
	if direct < 1e-9 {
		return 0
	}

	progress := direct - spotToDest
	if progress < 0 {
		return 0
	}

	detour := toSpot + spotToDest - direct

	efficiency := 100.0
	if detour > 0 {
		efficiency = 100 - 100*detour/direct
		if efficiency < 0 {
			efficiency = 0
		}
	}

	progressRatio := 100 * progress / direct

	score := 0.7*efficiency + 0.3*progressRatio
	if score > 100 {
		score = 100
	}
	return score
}
