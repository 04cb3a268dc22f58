package travel

import (
	"context"
	"fmt"
	"math"
	"time"

	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/geo"
	"travel-itinerary-service/internal/ports"
)

// StraightLineTravelProvider estimates travel offline from great-circle
// distance at a fixed average speed. It backs local development runs without
// an ORS key and deterministic tests; estimates ignore the road network.
type StraightLineTravelProvider struct {
	SpeedKmh float64
}

func NewStraightLineTravelProvider(speedKmh float64) *StraightLineTravelProvider {
	if speedKmh <= 0 {
		speedKmh = 40
	}
	return &StraightLineTravelProvider{SpeedKmh: speedKmh}
}

func (p *StraightLineTravelProvider) estimate(from, to domain.SpotLocation) ports.TravelEstimate {
	km := geo.HaversineKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
	return ports.TravelEstimate{
		DurationMinutes: int(math.Round(km / p.SpeedKmh * 60)),
		DistanceKm:      km,
	}
}

// EstimateTravelTimes implements ports.TravelTimeProvider.
func (p *StraightLineTravelProvider) EstimateTravelTimes(
	ctx context.Context,
	origin domain.SpotLocation,
	destinations []domain.SpotLocation,
	_ time.Time,
) ([]ports.TravelEstimate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]ports.TravelEstimate, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, p.estimate(origin, d))
	}
	return out, nil
}

// StitchRoute implements ports.RouteStitcher with one synthetic segment per
// waypoint pair.
func (p *StraightLineTravelProvider) StitchRoute(
	ctx context.Context,
	waypoints []domain.SpotLocation,
) ([]domain.RouteSegment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(waypoints) < 2 {
		return []domain.RouteSegment{}, nil
	}

	out := make([]domain.RouteSegment, 0, len(waypoints)-1)
	for i := 0; i < len(waypoints)-1; i++ {
		est := p.estimate(waypoints[i], waypoints[i+1])
		out = append(out, domain.RouteSegment{
			From:            waypoints[i].Name,
			To:              waypoints[i+1].Name,
			DurationMinutes: est.DurationMinutes,
			DistanceKm:      est.DistanceKm,
			Steps: []string{
				fmt.Sprintf("Head from %s to %s (%.1f km)", waypoints[i].Name, waypoints[i+1].Name, est.DistanceKm),
			},
		})
	}
	return out, nil
}
