package dto

import "time"

type LocationDTO struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
	PlaceID string  `json:"place_id,omitempty"`
}

type PreferencesDTO struct {
	Tags           []string `json:"tags"`
	Companion      string   `json:"companion"`
	Pace           string   `json:"pace"`
	Budget         string   `json:"budget"`
	PreferRainyDay bool     `json:"prefer_rainy_day"`
	PreferHidden   bool     `json:"prefer_hidden_gems"`
	AvoidCrowds    bool     `json:"avoid_crowds"`
}

type GenerateItineraryRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	// DailyHours is the per-day time budget (travel + activity) in hours.
	DailyHours int          `json:"daily_hours"`
	Start      *LocationDTO `json:"start"`
	End        *LocationDTO `json:"end"`
	// Accommodations holds one optional entry per trip day; null entries
	// mean no accommodation is known for that day.
	Accommodations   []*LocationDTO `json:"accommodations"`
	Preferences      PreferencesDTO `json:"preferences"`
	MandatorySpotIDs []string       `json:"mandatory_spot_ids"`
	CorridorRadiusKm float64        `json:"corridor_radius_km"`
	BestEffort       bool           `json:"best_effort"`
}

type ItinerarySpotResponse struct {
	SpotID              string    `json:"spot_id"`
	Name                string    `json:"name"`
	Categories          []string  `json:"categories"`
	ArriveAt            time.Time `json:"arrive_at"`
	DepartAt            time.Time `json:"depart_at"`
	StayMinutes         int       `json:"stay_minutes"`
	TravelMinutesToNext int       `json:"travel_minutes_to_next"`
}

type DayPlanResponse struct {
	Date                 string                  `json:"date"`
	DayNumber            int                     `json:"day_number"`
	Start                LocationDTO             `json:"start"`
	End                  LocationDTO             `json:"end"`
	Spots                []ItinerarySpotResponse `json:"spots"`
	TotalTravelMinutes   int                     `json:"total_travel_minutes"`
	TotalActivityMinutes int                     `json:"total_activity_minutes"`
	Note                 string                  `json:"note,omitempty"`
}

type RouteSegmentResponse struct {
	From            string   `json:"from"`
	To              string   `json:"to"`
	DurationMinutes int      `json:"duration_minutes"`
	DistanceKm      float64  `json:"distance_km"`
	Steps           []string `json:"steps"`
}

type SummaryResponse struct {
	DayCount             int      `json:"day_count"`
	SpotCount            int      `json:"spot_count"`
	TotalTravelMinutes   int      `json:"total_travel_minutes"`
	TotalActivityMinutes int      `json:"total_activity_minutes"`
	RegionsCovered       []string `json:"regions_covered"`
}

type ItineraryResponse struct {
	ID        string                 `json:"id"`
	Days      []DayPlanResponse      `json:"days"`
	Route     []RouteSegmentResponse `json:"route"`
	Summary   SummaryResponse        `json:"summary"`
	Warnings  []string               `json:"warnings,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
