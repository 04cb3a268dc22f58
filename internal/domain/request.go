package domain

import "time"

// TravelerPreferences are forwarded opaquely to the external relevance
// scorer; the planner itself only inspects them for the heuristic fallback.
type TravelerPreferences struct {
	Tags           []string
	CompanionType  string
	Pace           string
	BudgetTier     string
	PreferRainyDay bool
	PreferHidden   bool
	AvoidCrowds    bool
}

// ItineraryRequest is the caller's trip specification.
type ItineraryRequest struct {
	StartDate time.Time
	EndDate   time.Time
	// DailyHours is the per-day time budget (travel + activity) in hours.
	DailyHours int
	Start      SpotLocation
	End        SpotLocation
	// Accommodations holds one optional waypoint per trip day; entry i is
	// where the traveler sleeps after day i+1. A nil entry (or a shorter
	// slice) means no accommodation is known for that day.
	Accommodations   []*SpotLocation
	Preferences      TravelerPreferences
	MandatorySpotIDs []string
	// CorridorRadiusKm widens or narrows the per-day corridor;
	// zero selects DefaultCorridorRadiusKm.
	CorridorRadiusKm float64
	// BestEffort keeps planning after a day's external dependency fails,
	// yielding that day empty with a warning instead of aborting.
	BestEffort bool
}

// DayCount returns the number of calendar days in [StartDate, EndDate].
// The range is validated before planning, so a non-positive count only
// occurs on malformed requests.
func (r ItineraryRequest) DayCount() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// AccommodationFor returns the accommodation waypoint assigned to the given
// 1-based day number, or nil when none is known.
func (r ItineraryRequest) AccommodationFor(dayNumber int) *SpotLocation {
	idx := dayNumber - 1
	if idx < 0 || idx >= len(r.Accommodations) {
		return nil
	}
	return r.Accommodations[idx]
}

// DailyBudgetMinutes converts the requested daily hours into the minute
// budget enforced by the day planner.
func (r ItineraryRequest) DailyBudgetMinutes() int {
	return r.DailyHours * 60
}

// MandatorySet returns the mandatory spot ids as a set for O(1) lookups.
func (r ItineraryRequest) MandatorySet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.MandatorySpotIDs))
	for _, id := range r.MandatorySpotIDs {
		set[id] = struct{}{}
	}
	return set
}
