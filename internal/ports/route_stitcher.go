package ports

import (
	"context"
	"travel-itinerary-service/internal/domain"
)

// Contract for the external routing oracle that turns the final ordered
// waypoint list into turn-by-turn route segments.
type RouteStitcher interface {
	StitchRoute(ctx context.Context, waypoints []domain.SpotLocation) ([]domain.RouteSegment, error)
}
