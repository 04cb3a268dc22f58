package travel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/ports"
)

type matrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
	Sources      []int       `json:"sources"`
}

type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// fetchMatrixRow retrieves travel duration and distance from one origin to
// many destinations using the OpenRouteService matrix endpoint.
func (o *ORSTravelProvider) fetchMatrixRow(
	ctx context.Context,
	origin domain.SpotLocation,
	destinationKeys []string,
	destinations []domain.SpotLocation,
) (map[string]ports.TravelEstimate, error) {
	if len(destinationKeys) != len(destinations) {
		return nil, errors.New("destinationKeys and destinations are expected to have the same length")
	}

	if len(destinations) == 0 {
		return map[string]ports.TravelEstimate{}, nil
	}

	endpoint := fmt.Sprintf("%s/v2/matrix/%s", o.baseURL, o.profile)

	locations := make([][]float64, 0, 1+len(destinations))
	locations = append(locations, origin.CoordsToList())
	for _, d := range destinations {
		locations = append(locations, d.CoordsToList())
	}

	destIdx := make([]int, 0, len(destinations))
	for i := 1; i < len(locations); i++ {
		destIdx = append(destIdx, i)
	}

	bodyObj := matrixRequest{
		Locations:    locations,
		Destinations: destIdx,
		Metrics:      []string{"distance", "duration"},
		Sources:      []int{0},
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("marshal matrix request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return o.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		return nil, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("decode matrix response: %w", err)
	}

	if len(mr.Distances) != 1 || len(mr.Durations) != 1 {
		return nil, fmt.Errorf(
			"expected 1 source row; got distances=%d durations=%d",
			len(mr.Distances), len(mr.Durations),
		)
	}

	rowDistances := mr.Distances[0]
	rowDurations := mr.Durations[0]

	if len(rowDistances) != len(destinations) || len(rowDurations) != len(destinations) {
		return nil, fmt.Errorf(
			"row lengths do not match destinations: distances=%d durations=%d destinations=%d",
			len(rowDistances), len(rowDurations), len(destinations),
		)
	}

	out := make(map[string]ports.TravelEstimate, len(destinations))
	for i, key := range destinationKeys {
		metersPtr := rowDistances[i]
		secondsPtr := rowDurations[i]

		if metersPtr == nil || secondsPtr == nil {
			return nil, fmt.Errorf("matrix returned invalid metrics for %q", key)
		}

		// ORS returns meters and seconds; the planner budgets in whole
		// minutes and kilometers.
		out[key] = ports.TravelEstimate{
			DurationMinutes: int(math.Round(*secondsPtr / 60)),
			DistanceKm:      *metersPtr / 1000,
		}
	}

	return out, nil
}
