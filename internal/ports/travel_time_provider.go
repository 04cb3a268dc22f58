package ports

import (
	"context"
	"time"
	"travel-itinerary-service/internal/domain"
)

// Travel time and distance for one origin->destination pair.
type TravelEstimate struct {
	DurationMinutes int
	DistanceKm      float64
}

// Contract for the external travel-time oracle. One batched call is issued
// per evaluation round, covering all still-remaining candidates.
type TravelTimeProvider interface {
	// Return estimates from one origin to many destinations, ordered to
	// match the destinations slice.
	EstimateTravelTimes(
		ctx context.Context,
		origin domain.SpotLocation,
		destinations []domain.SpotLocation,
		departAt time.Time,
	) ([]TravelEstimate, error)
}
