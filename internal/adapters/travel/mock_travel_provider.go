package travel

import (
	"context"
	"fmt"
	"time"

	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/ports"
)

type MockLeg struct {
	From, To string
	Minutes  int
	Km       float64
}

// MockTravelProvider serves fixed estimates keyed by waypoint names.
// Missing legs fail loudly so tests notice incomplete fixtures.
type MockTravelProvider struct {
	m map[string]ports.TravelEstimate
}

func NewMockTravelProvider(legs []MockLeg) *MockTravelProvider {
	m := make(map[string]ports.TravelEstimate, len(legs))
	for _, l := range legs {
		m[l.From+"|"+l.To] = ports.TravelEstimate{DurationMinutes: l.Minutes, DistanceKm: l.Km}
	}
	return &MockTravelProvider{m: m}
}

func (p *MockTravelProvider) EstimateTravelTimes(
	_ context.Context,
	origin domain.SpotLocation,
	destinations []domain.SpotLocation,
	_ time.Time,
) ([]ports.TravelEstimate, error) {
	out := make([]ports.TravelEstimate, 0, len(destinations))
	for _, d := range destinations {
		est, ok := p.m[origin.Name+"|"+d.Name]
		if !ok {
			return nil, fmt.Errorf("missing leg %q -> %q", origin.Name, d.Name)
		}
		out = append(out, est)
	}
	return out, nil
}
