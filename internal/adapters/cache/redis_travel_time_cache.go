package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"travel-itinerary-service/internal/platform/obs"
	"travel-itinerary-service/internal/ports"
)

const defaultTravelTimeTTL = 7 * 24 * time.Hour

// RedisTravelTimeCache is a Redis-backed cache for origin->destination
// travel estimates, useful when several instances share one cache.
// Entries expire after TTL so stale road conditions age out.
type RedisTravelTimeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisTravelTimeCache(client *redis.Client, ttl time.Duration) *RedisTravelTimeCache {
	if ttl <= 0 {
		ttl = defaultTravelTimeTTL
	}
	return &RedisTravelTimeCache{Client: client, TTL: ttl}
}

func travelTimeKey(origin, destination string) string {
	return "tt:" + origin + "|" + destination
}

// Fetch cached estimates for one origin and multiple destinations.
func (r *RedisTravelTimeCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.TravelEstimate, err error) {
	defer obs.Time(ctx, "travel.rediscache.GetMany")(&err)

	if r.Client == nil {
		return nil, errors.New("travel time cache: redis client is nil")
	}
	if origin == "" {
		return nil, errors.New("get travel time cache: origin must not be empty")
	}
	if len(destinations) == 0 {
		return map[string]ports.TravelEstimate{}, nil
	}

	keys := make([]string, 0, len(destinations))
	for _, d := range destinations {
		keys = append(keys, travelTimeKey(origin, d))
	}

	values, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get travel time cache: redis mget: %w", err)
	}

	out := make(map[string]ports.TravelEstimate, len(destinations))
	for i, v := range values {
		if v == nil {
			continue
		}
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var est ports.TravelEstimate
		if err := json.Unmarshal([]byte(raw), &est); err != nil {
			// A corrupt entry behaves like a miss; it will be overwritten.
			continue
		}
		out[destinations[i]] = est
	}

	return out, nil
}

// Store many estimates for a single origin.
func (r *RedisTravelTimeCache) PutMany(
	ctx context.Context,
	origin string,
	results map[string]ports.TravelEstimate,
) error {
	if r.Client == nil {
		return errors.New("travel time cache: redis client is nil")
	}
	if origin == "" {
		return errors.New("insert travel time cache: origin must not be empty")
	}
	if len(results) == 0 {
		return nil
	}

	pipe := r.Client.Pipeline()
	for dest, est := range results {
		payload, err := json.Marshal(est)
		if err != nil {
			return fmt.Errorf("insert travel time cache dest=%q: marshal: %w", dest, err)
		}
		pipe.Set(ctx, travelTimeKey(origin, dest), payload, r.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert travel time cache: redis pipeline: %w", err)
	}
	return nil
}
