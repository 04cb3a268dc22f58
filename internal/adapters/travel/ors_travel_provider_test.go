package travel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel-itinerary-service/internal/adapters/cache"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/ports"
)

type memTravelCache struct {
	entries map[string]ports.TravelEstimate
}

func newMemTravelCache() *memTravelCache {
	return &memTravelCache{entries: make(map[string]ports.TravelEstimate)}
}

func (c *memTravelCache) GetMany(_ context.Context, origin string, destinations []string) (map[string]ports.TravelEstimate, error) {
	out := make(map[string]ports.TravelEstimate)
	for _, d := range destinations {
		if est, ok := c.entries[origin+"|"+d]; ok {
			out[d] = est
		}
	}
	return out, nil
}

func (c *memTravelCache) PutMany(_ context.Context, origin string, estimates map[string]ports.TravelEstimate) error {
	for d, est := range estimates {
		c.entries[origin+"|"+d] = est
	}
	return nil
}

// matrixServer answers every matrix call with durations of 600s*(i+1) and
// distances of 5000m*(i+1) per destination, counting requests.
func matrixServer(t *testing.T, calls *int, failFirst bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		if failFirst && *calls == 1 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}

		var req matrixRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode matrix request: %v", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		n := len(req.Destinations)
		durations := make([]*float64, n)
		distances := make([]*float64, n)
		for i := 0; i < n; i++ {
			d := float64(600 * (i + 1))
			m := float64(5000 * (i + 1))
			durations[i] = &d
			distances[i] = &m
		}
		json.NewEncoder(w).Encode(matrixResponse{
			Durations: [][]*float64{durations},
			Distances: [][]*float64{distances},
		})
	}))
}

func testProvider(srvURL string, c cache.TravelTimeCache) *ORSTravelProvider {
	return &ORSTravelProvider{
		session: &http.Client{Timeout: 5 * time.Second},
		apiKey:  "test-key",
		baseURL: srvURL,
		profile: "driving-car",
		cache:   c,
	}
}

func TestORSTravelProviderBatchedEstimates(t *testing.T) {
	calls := 0
	srv := matrixServer(t, &calls, false)
	defer srv.Close()

	p := testProvider(srv.URL, newMemTravelCache())

	origin := domain.SpotLocation{Name: "제주공항", Latitude: 33.5066, Longitude: 126.4931}
	destinations := []domain.SpotLocation{
		{Name: "용두암", Latitude: 33.47, Longitude: 126.50},
		origin, // zero-cost self leg
		{Name: "중문", Latitude: 33.25, Longitude: 126.41},
	}

	out, err := p.EstimateTravelTimes(context.Background(), origin, destinations, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Fatalf("matrix endpoint called %d times, want 1 batched call", calls)
	}
	if len(out) != 3 {
		t.Fatalf("got %d estimates, want 3 (ordered to match destinations)", len(out))
	}
	if out[0].DurationMinutes != 10 || out[0].DistanceKm != 5 {
		t.Fatalf("first estimate = %+v, want 10min/5km", out[0])
	}
	if out[1] != (ports.TravelEstimate{}) {
		t.Fatalf("self leg = %+v, want zero estimate", out[1])
	}
	if out[2].DurationMinutes != 20 || out[2].DistanceKm != 10 {
		t.Fatalf("third estimate = %+v, want 20min/10km", out[2])
	}
}

func TestORSTravelProviderServesRepeatFromCache(t *testing.T) {
	calls := 0
	srv := matrixServer(t, &calls, false)
	defer srv.Close()

	p := testProvider(srv.URL, newMemTravelCache())

	origin := domain.SpotLocation{Name: "제주공항", Latitude: 33.5066, Longitude: 126.4931}
	destinations := []domain.SpotLocation{{Name: "용두암", Latitude: 33.47, Longitude: 126.50}}

	if _, err := p.EstimateTravelTimes(context.Background(), origin, destinations, time.Now()); err != nil {
		t.Fatalf("first call: %v", err)
	}
	out, err := p.EstimateTravelTimes(context.Background(), origin, destinations, time.Now())
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if calls != 1 {
		t.Fatalf("matrix endpoint called %d times, want cached repeat", calls)
	}
	if out[0].DurationMinutes != 10 {
		t.Fatalf("cached estimate = %+v, want 10min", out[0])
	}
}

func TestORSTravelProviderRetriesTransientFailure(t *testing.T) {
	calls := 0
	srv := matrixServer(t, &calls, true)
	defer srv.Close()

	p := testProvider(srv.URL, nil)

	origin := domain.SpotLocation{Name: "제주공항", Latitude: 33.5066, Longitude: 126.4931}
	destinations := []domain.SpotLocation{{Name: "용두암", Latitude: 33.47, Longitude: 126.50}}

	out, err := p.EstimateTravelTimes(context.Background(), origin, destinations, time.Now())
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if calls != 2 {
		t.Fatalf("matrix endpoint called %d times, want 502 then success", calls)
	}
	if out[0].DurationMinutes != 10 {
		t.Fatalf("estimate after retry = %+v, want 10min", out[0])
	}
}
