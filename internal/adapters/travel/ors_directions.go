package travel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/platform/obs"
)

type directionsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Instructions bool        `json:"instructions"`
}

type directionsResponse struct {
	Routes []struct {
		Segments []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
			Steps    []struct {
				Instruction string `json:"instruction"`
			} `json:"steps"`
		} `json:"segments"`
	} `json:"routes"`
}

// StitchRoute submits the final ordered waypoint list to the OpenRouteService
// directions endpoint and maps each leg between consecutive waypoints to one
// RouteSegment with its textual steps.
func (o *ORSTravelProvider) StitchRoute(
	ctx context.Context,
	waypoints []domain.SpotLocation,
) (_ []domain.RouteSegment, err error) {
	defer obs.Time(ctx, "ors.StitchRoute")(&err)

	if len(waypoints) < 2 {
		return []domain.RouteSegment{}, nil
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)

	coords := make([][]float64, 0, len(waypoints))
	for _, w := range waypoints {
		coords = append(coords, w.CoordsToList())
	}

	payload, err := json.Marshal(directionsRequest{Coordinates: coords, Instructions: true})
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Routes) == 0 {
		return nil, fmt.Errorf("directions returned no routes for %d waypoints", len(waypoints))
	}

	segments := dr.Routes[0].Segments
	if len(segments) != len(waypoints)-1 {
		return nil, fmt.Errorf(
			"directions returned %d segments for %d waypoints",
			len(segments), len(waypoints),
		)
	}

	out := make([]domain.RouteSegment, 0, len(segments))
	for i, seg := range segments {
		steps := make([]string, 0, len(seg.Steps))
		for _, s := range seg.Steps {
			steps = append(steps, s.Instruction)
		}

		out = append(out, domain.RouteSegment{
			From:            waypoints[i].Name,
			To:              waypoints[i+1].Name,
			DurationMinutes: int(math.Round(seg.Duration / 60)),
			DistanceKm:      seg.Distance / 1000,
			Steps:           steps,
		})
	}

	return out, nil
}
