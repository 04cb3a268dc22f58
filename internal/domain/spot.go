package domain

import "strings"

// CatalogSpot is a point of interest owned by the external catalog; this
// service only reads it. Latitude/Longitude are pointers because catalog
// data quality is uneven and coordinates can be missing.
type CatalogSpot struct {
	ID           string
	Name         string
	Region       string
	Categories   []string
	Latitude     *float64
	Longitude    *float64
	VisitMinutes int
	// OperatingHours is a free-form hint from the catalog. It is treated as
	// present/absent only: a spot is open unless the hint explicitly marks
	// it closed. No hour-range parsing is attempted.
	OperatingHours string
}

// HasCoordinates reports whether the catalog provided usable coordinates.
func (s *CatalogSpot) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// Location converts the spot into a waypoint. Callers must check
// HasCoordinates first.
func (s *CatalogSpot) Location() SpotLocation {
	return SpotLocation{
		Name:      s.Name,
		Latitude:  *s.Latitude,
		Longitude: *s.Longitude,
	}
}

// PrimaryCategory returns the first catalog category, or "" when none.
func (s *CatalogSpot) PrimaryCategory() string {
	if len(s.Categories) == 0 {
		return ""
	}
	return s.Categories[0]
}

// HasCategory reports whether the spot carries the given category.
func (s *CatalogSpot) HasCategory(category string) bool {
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// closedMarkers are the only operating-hours hints interpreted as "closed".
var closedMarkers = []string{"closed", "휴무", "휴업"}

// OpenNow reports the best-effort open flag. Absent hours data means open.
func (s *CatalogSpot) OpenNow() bool {
	hint := strings.ToLower(strings.TrimSpace(s.OperatingHours))
	if hint == "" {
		return true
	}
	for _, m := range closedMarkers {
		if strings.Contains(hint, m) {
			return false
		}
	}
	return true
}

// CandidateSpot wraps a catalog spot that fell inside a day's corridor.
// RelevanceScore starts at zero and is assigned exactly once from the
// external relevance scorer before planning begins.
type CandidateSpot struct {
	Spot                   *CatalogSpot
	RelevanceScore         float64
	DistanceFromCorridorKm float64
	InCorridor             bool
}

// SpotEvaluation is the ephemeral result of scoring one candidate during a
// single evaluation round. It is never persisted.
type SpotEvaluation struct {
	Candidate         *CandidateSpot
	TravelMinutes     int
	TravelDistanceKm  float64
	DirectionScore    float64
	PreferenceScore   float64
	TravelEfficiency  float64
	TimeCategoryScore float64
	IsOpenNow         bool
	IsMandatory       bool
	TotalScore        float64
}
