package services

import (
	"context"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"

	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/platform/obs"
	"travel-itinerary-service/internal/ports"
)

// GenerateItinerary plans the whole trip, one calendar day at a time.
//
// Days are strictly sequential: day N+1 starts where day N ended, so there
// is no fan-out across days. For each day it builds the corridor, filters
// the catalog, scores the in-corridor candidates once via the external
// relevance scorer, and runs the greedy day planner. After all days are
// planned the visited waypoints are flattened into one ordered list and
// handed to the external routing oracle for segment stitching.
//
// A scorer or travel-oracle failure aborts generation by default. With
// req.BestEffort set, the failed day is yielded empty with a warning and
// planning continues from that day's resolved end waypoint.
func GenerateItinerary(
	ctx context.Context,
	req domain.ItineraryRequest,
	repo ports.SpotRepository,
	scorer ports.RelevanceScorer,
	travel ports.TravelTimeProvider,
	stitcher ports.RouteStitcher,
	cfg Config,
) (_ *domain.TravelItinerary, err error) {
	defer obs.Time(ctx, "services.GenerateItinerary")(&err)

	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	catalog, err := repo.ListSpotsWithCoordinates(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: list catalog spots: %w", err)
	}

	radius := req.CorridorRadiusKm
	if radius == 0 {
		radius = domain.DefaultCorridorRadiusKm
	}

	itinerary := &domain.TravelItinerary{
		ID:        uuid.NewString(),
		Request:   req,
		Days:      make([]*domain.DayPlan, 0, req.DayCount()),
		CreatedAt: time.Now().UTC(),
	}

	mandatory := req.MandatorySet()
	visited := make(map[string]struct{})
	currentStart := req.Start

	for day := 1; day <= req.DayCount(); day++ {
		date := req.StartDate.AddDate(0, 0, day-1)
		dayEnd := resolveDayEnd(req, day)

		corridor, err := domain.BuildCorridor(currentStart, dayEnd, radius)
		if err != nil {
			return nil, fmt.Errorf("generate itinerary: day %d: %w", day, err)
		}

		plan, dayErr := planSingleDay(ctx, req, corridor, date, day, currentStart, dayEnd, catalog, visited, mandatory, scorer, travel, cfg)
		if dayErr != nil {
			if !req.BestEffort {
				return nil, dayErr
			}
			log.Printf("generate itinerary: day=%d degraded: %v", day, dayErr)
			itinerary.Warnings = append(itinerary.Warnings, dayErr.Error())
			plan = &domain.DayPlan{
				Date:      date,
				DayNumber: day,
				Start:     currentStart,
				End:       dayEnd,
				Corridor:  corridor,
				Spots:     []domain.ItinerarySpot{},
				Note:      "planning skipped: " + dayErr.Error(),
			}
		}

		for _, s := range plan.Spots {
			visited[s.Spot.ID] = struct{}{}
		}

		itinerary.Days = append(itinerary.Days, plan)
		currentStart = dayEnd
	}

	waypoints := flattenWaypoints(req, itinerary.Days)
	segments, stitchErr := stitcher.StitchRoute(ctx, waypoints)
	if stitchErr != nil {
		wrapped := &DayError{DayNumber: 0, Dependency: "route oracle", Err: stitchErr}
		if !req.BestEffort {
			return nil, wrapped
		}
		itinerary.Warnings = append(itinerary.Warnings, wrapped.Error())
	} else {
		itinerary.Route = segments
	}

	itinerary.Summary = summarize(itinerary.Days)
	return itinerary, nil
}

// ValidateRequest rejects malformed trip requests before any planning begins.
func ValidateRequest(req domain.ItineraryRequest) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return &ValidationError{Field: "dates", Reason: "start and end dates are required"}
	}
	if req.EndDate.Before(req.StartDate) {
		return &ValidationError{Field: "dates", Reason: "end date precedes start date"}
	}
	if req.DailyHours <= 0 {
		return &ValidationError{Field: "daily_hours", Reason: "daily time budget must be positive"}
	}
	if req.CorridorRadiusKm < 0 {
		return &ValidationError{Field: "corridor_radius_km", Reason: "radius must be positive"}
	}
	if req.Start.Latitude == 0 && req.Start.Longitude == 0 {
		return &ValidationError{Field: "start", Reason: "start waypoint coordinates are required"}
	}
	if req.End.Latitude == 0 && req.End.Longitude == 0 {
		return &ValidationError{Field: "end", Reason: "end waypoint coordinates are required"}
	}
	return nil
}

// resolveDayEnd picks where a day should head: that day's accommodation when
// known, otherwise the trip end waypoint. The last day always ends the trip.
func resolveDayEnd(req domain.ItineraryRequest, day int) domain.SpotLocation {
	if day == req.DayCount() {
		return req.End
	}
	if acc := req.AccommodationFor(day); acc != nil {
		return *acc
	}
	return req.End
}

func planSingleDay(
	ctx context.Context,
	req domain.ItineraryRequest,
	corridor domain.TravelCorridor,
	date time.Time,
	day int,
	start, end domain.SpotLocation,
	catalog []*domain.CatalogSpot,
	visited map[string]struct{},
	mandatory map[string]struct{},
	scorer ports.RelevanceScorer,
	travel ports.TravelTimeProvider,
	cfg Config,
) (*domain.DayPlan, error) {
	candidates := FilterByCorridor(catalog, corridor)

	// A spot identity appears at most once across the whole itinerary.
	remaining := make(map[string]*domain.CandidateSpot, len(candidates))
	for _, c := range candidates {
		if _, seen := visited[c.Spot.ID]; seen {
			continue
		}
		remaining[c.Spot.ID] = c
	}

	if len(remaining) > 0 {
		if err := scoreCandidates(ctx, remaining, req.Preferences, scorer); err != nil {
			return nil, &DayError{DayNumber: day, Dependency: "relevance scorer", Err: err}
		}
	}

	plan, err := PlanDay(ctx, DayRequest{
		Date:          date,
		DayNumber:     day,
		Start:         start,
		End:           end,
		Corridor:      corridor,
		BudgetMinutes: req.DailyBudgetMinutes(),
		MandatoryIDs:  mandatory,
	}, remaining, travel, cfg)
	if err != nil {
		return nil, &DayError{DayNumber: day, Dependency: "travel-time oracle", Err: err}
	}

	return plan, nil
}

// scoreCandidates assigns each candidate's relevance score exactly once from
// one batched scorer call.
func scoreCandidates(
	ctx context.Context,
	remaining map[string]*domain.CandidateSpot,
	prefs domain.TravelerPreferences,
	scorer ports.RelevanceScorer,
) (err error) {
	defer obs.Time(ctx, "scorer.ScoreRelevance")(&err)

	inputs := make([]ports.ScoreCandidate, 0, len(remaining))
	for _, c := range remaining {
		inputs = append(inputs, ports.ScoreCandidate{
			ID:         c.Spot.ID,
			Categories: c.Spot.Categories,
			Attributes: map[string]string{"region": c.Spot.Region},
		})
	}

	results, err := scorer.ScoreRelevance(ctx, inputs, prefs)
	if err != nil {
		return fmt.Errorf("score candidates: %w", err)
	}

	for _, r := range results {
		if c, ok := remaining[r.ID]; ok {
			c.RelevanceScore = r.Score
		}
	}
	return nil
}

// flattenWaypoints produces the ordered waypoint list submitted to the route
// oracle: the trip start, every committed visit in order, and each day's end
// waypoint. Consecutive duplicates (a day's end doubling as the next start)
// collapse to one entry.
func flattenWaypoints(req domain.ItineraryRequest, days []*domain.DayPlan) []domain.SpotLocation {
	waypoints := []domain.SpotLocation{req.Start}
	for _, day := range days {
		for _, s := range day.Spots {
			waypoints = appendWaypoint(waypoints, s.Spot.Location())
		}
		waypoints = appendWaypoint(waypoints, day.End)
	}
	return waypoints
}

func appendWaypoint(list []domain.SpotLocation, w domain.SpotLocation) []domain.SpotLocation {
	if len(list) > 0 && list[len(list)-1].Key() == w.Key() {
		return list
	}
	return append(list, w)
}

func summarize(days []*domain.DayPlan) domain.ItinerarySummary {
	summary := domain.ItinerarySummary{DayCount: len(days)}

	regions := make(map[string]struct{})
	for _, day := range days {
		summary.SpotCount += len(day.Spots)
		summary.TotalTravelMinutes += day.TotalTravelMinutes
		summary.TotalActivityMinutes += day.TotalActivityMinutes
		for _, s := range day.Spots {
			if s.Spot.Region != "" {
				regions[s.Spot.Region] = struct{}{}
			}
		}
	}

	summary.RegionsCovered = make([]string, 0, len(regions))
	for r := range regions {
		summary.RegionsCovered = append(summary.RegionsCovered, r)
	}
	slices.Sort(summary.RegionsCovered)

	return summary
}
