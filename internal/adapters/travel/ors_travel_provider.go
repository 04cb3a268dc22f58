package travel

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"travel-itinerary-service/internal/adapters/cache"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/platform/obs"
	"travel-itinerary-service/internal/ports"
)

// ORSTravelProvider implements both oracle ports against OpenRouteService:
// TravelTimeProvider via the matrix endpoint and RouteStitcher via the
// directions endpoint.
//
// It coordinates:
//   - Coordinate-keyed persistent caching of matrix results
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type ORSTravelProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
	cache   cache.TravelTimeCache
}

func NewORSTravelProvider(apiKey string, travelCache cache.TravelTimeCache) (*ORSTravelProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSTravelProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		profile: "driving-car",
		cache:   travelCache,
	}, nil
}

// EstimateTravelTimes returns estimates from one origin to many
// destinations, ordered to match the destinations slice.
//
// The departure time is accepted for interface fidelity but not forwarded;
// the matrix endpoint has no departure parameter, so estimates are
// time-of-day independent (which is also why they are cacheable).
func (o *ORSTravelProvider) EstimateTravelTimes(
	ctx context.Context,
	origin domain.SpotLocation,
	destinations []domain.SpotLocation,
	_ time.Time,
) (_ []ports.TravelEstimate, err error) {
	defer obs.Time(ctx, "ors.EstimateTravelTimes")(&err)

	if len(destinations) == 0 {
		return []ports.TravelEstimate{}, nil
	}

	originKey := origin.Key()

	// Deduplicate lookup keys; the same coordinates may appear twice in one
	// batch. Destinations equal to the origin cost nothing.
	byKey := make(map[string]domain.SpotLocation, len(destinations))
	lookupKeys := make([]string, 0, len(destinations))
	for _, d := range destinations {
		k := d.Key()
		if k == originKey {
			continue
		}
		if _, ok := byKey[k]; ok {
			continue
		}
		byKey[k] = d
		lookupKeys = append(lookupKeys, k)
	}

	hits := make(map[string]ports.TravelEstimate)
	if o.cache != nil && len(lookupKeys) > 0 {
		hits, err = o.cache.GetMany(ctx, originKey, lookupKeys)
		if err != nil {
			return nil, fmt.Errorf("ORS get travel time cache: %w", err)
		}
	}

	missKeys := make([]string, 0, len(lookupKeys))
	missLocs := make([]domain.SpotLocation, 0, len(lookupKeys))
	for _, k := range lookupKeys {
		if _, ok := hits[k]; !ok {
			missKeys = append(missKeys, k)
			missLocs = append(missLocs, byKey[k])
		}
	}

	if len(missKeys) > 0 {
		fetched, err := o.fetchMatrixRow(ctx, origin, missKeys, missLocs)
		if err != nil {
			return nil, fmt.Errorf("fetching matrix row: %w", err)
		}

		if o.cache != nil {
			if err := o.cache.PutMany(ctx, originKey, fetched); err != nil {
				log.Printf("travel time cache write failed: %v", err)
			}
		}

		for k, v := range fetched {
			hits[k] = v
		}
	}

	out := make([]ports.TravelEstimate, 0, len(destinations))
	for _, d := range destinations {
		k := d.Key()
		if k == originKey {
			out = append(out, ports.TravelEstimate{})
			continue
		}
		est, ok := hits[k]
		if !ok {
			return nil, fmt.Errorf("missing travel estimate for %q -> %q", originKey, k)
		}
		out = append(out, est)
	}

	return out, nil
}
