// Package cache provides persistent caches for travel-time oracle results,
// keyed by normalized origin/destination coordinate keys. Departure time is
// deliberately not part of the key; the oracle's estimates are treated as
// time-of-day independent, matching the upstream matrix API.
package cache

import (
	"context"
	"travel-itinerary-service/internal/ports"
)

// TravelTimeCache is the contract both cache backends satisfy. Keys are
// expected to be consistent (e.g., already produced by SpotLocation.Key)
// by the caller.
type TravelTimeCache interface {
	// Fetch cached estimates for one origin and multiple destinations.
	// Missing destinations are simply absent from the result map.
	GetMany(ctx context.Context, origin string, destinations []string) (map[string]ports.TravelEstimate, error)
	// Store many estimates for a single origin.
	PutMany(ctx context.Context, origin string, results map[string]ports.TravelEstimate) error
}
