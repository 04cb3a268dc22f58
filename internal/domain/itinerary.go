package domain

import "time"

// ItinerarySpot is one committed visit inside a day plan: the chosen spot,
// its clock times, and the travel spent reaching it from the previous stop.
// Immutable once appended to a DayPlan.
type ItinerarySpot struct {
	Spot                  *CatalogSpot
	ArriveAt              time.Time
	DepartAt              time.Time
	StayMinutes           int
	TravelMinutesFromPrev int
	DistanceFromPrevKm    float64
}

// DayPlan is the finalized ordered visit sequence for one calendar day,
// together with the corridor it was planned inside and cumulative totals.
// The invariant TotalTravelMinutes+TotalActivityMinutes <= the day's budget
// holds at every intermediate state because the planner checks it before
// each commit.
type DayPlan struct {
	Date                 time.Time
	DayNumber            int
	Start                SpotLocation
	End                  SpotLocation
	Corridor             TravelCorridor
	Spots                []ItinerarySpot
	TotalTravelMinutes   int
	TotalActivityMinutes int
	// Note documents empty or degraded days ("no feasible candidates",
	// "external scorer failed" in best-effort mode).
	Note string
}

// RouteSegment is one stitched leg of the final route, produced by the
// external routing oracle after all days are planned.
type RouteSegment struct {
	From            string
	To              string
	DurationMinutes int
	DistanceKm      float64
	Steps           []string
}

// ItinerarySummary aggregates statistics across the whole trip.
type ItinerarySummary struct {
	DayCount             int
	SpotCount            int
	TotalTravelMinutes   int
	TotalActivityMinutes int
	RegionsCovered       []string
}

// TravelItinerary is the root aggregate returned to the caller: the original
// request, the planned days (exclusive ownership), the stitched route and
// summary statistics. Warnings carry per-day degradations in best-effort mode.
type TravelItinerary struct {
	ID        string
	Request   ItineraryRequest
	Days      []*DayPlan
	Route     []RouteSegment
	Summary   ItinerarySummary
	Warnings  []string
	CreatedAt time.Time
}
