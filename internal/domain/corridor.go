package domain

import "fmt"

// DefaultCorridorRadiusKm is the corridor half-width applied when a request
// does not specify one.
const DefaultCorridorRadiusKm = 12.0

// TravelCorridor is the capsule-shaped region considered for one day's leg:
// the segment between the day's start and end waypoints, widened by RadiusKm.
// Built once per day and read-only afterwards.
type TravelCorridor struct {
	Start    SpotLocation
	End      SpotLocation
	RadiusKm float64
	// CenterLine holds the two [lat, lng] endpoints of the segment.
	CenterLine [2][2]float64
}

// BuildCorridor constructs the corridor for a single day's leg. A zero-length
// segment (start equals end) is a valid corridor: a disc of RadiusKm around
// the point. The only failure mode is a non-positive radius.
func BuildCorridor(start, end SpotLocation, radiusKm float64) (TravelCorridor, error) {
	if radiusKm <= 0 {
		return TravelCorridor{}, fmt.Errorf("build corridor: radius must be positive, got %g", radiusKm)
	}

	return TravelCorridor{
		Start:    start,
		End:      end,
		RadiusKm: radiusKm,
		CenterLine: [2][2]float64{
			{start.Latitude, start.Longitude},
			{end.Latitude, end.Longitude},
		},
	}, nil
}
