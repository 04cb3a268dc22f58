package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/ports"
)

// DayRequest describes one calendar day handed to the planner.
type DayRequest struct {
	Date          time.Time
	DayNumber     int
	Start         domain.SpotLocation
	End           domain.SpotLocation
	Corridor      domain.TravelCorridor
	BudgetMinutes int
	MandatoryIDs  map[string]struct{}
}

// PlanDay runs the greedy selection loop for a single day.
//
// Starting at the day's start waypoint and start-of-day clock, it repeatedly
// evaluates all remaining candidates, commits the top-scoring one, advances
// the simulated clock and location, and stops when no candidate survives
// evaluation or when committing the best one would exceed the daily budget.
// The budget check happens before each commit, never after, so cumulative
// travel+activity minutes stay within budget at every intermediate state.
//
// The remaining map is the day's working set, removed by key on commit; the
// caller keeps ownership and can inspect which candidates were left over.
func PlanDay(
	ctx context.Context,
	req DayRequest,
	remaining map[string]*domain.CandidateSpot,
	travel ports.TravelTimeProvider,
	cfg Config,
) (*domain.DayPlan, error) {
	plan := &domain.DayPlan{
		Date:      req.Date,
		DayNumber: req.DayNumber,
		Start:     req.Start,
		End:       req.End,
		Corridor:  req.Corridor,
		Spots:     []domain.ItinerarySpot{},
	}

	if len(remaining) == 0 {
		plan.Note = "no candidates inside the day's corridor"
		return plan, nil
	}

	currentLocation := req.Start
	currentTime := time.Date(
		req.Date.Year(), req.Date.Month(), req.Date.Day(),
		cfg.DayStartHour, 0, 0, 0, req.Date.Location(),
	)
	lastCategory := ""

	for len(remaining) > 0 {
		state := EvalState{
			Current:      currentLocation,
			CurrentTime:  currentTime,
			Destination:  req.End,
			LastCategory: lastCategory,
		}

		evaluations, err := EvaluateSpots(ctx, state, remaining, req.MandatoryIDs, travel, cfg)
		if err != nil {
			return nil, fmt.Errorf("plan day %d: %w", req.DayNumber, err)
		}
		if len(evaluations) == 0 {
			if len(plan.Spots) == 0 {
				plan.Note = "no candidate survived direction and travel-time filters"
			}
			break
		}

		best := evaluations[0]
		spot := best.Candidate.Spot

		stayMinutes := spot.VisitMinutes
		if stayMinutes <= 0 {
			stayMinutes = cfg.DefaultStayMinutes
		}

		// Budget is checked before commit; exceeding it ends the day.
		if plan.TotalTravelMinutes+plan.TotalActivityMinutes+best.TravelMinutes+stayMinutes > req.BudgetMinutes {
			break
		}

		arriveAt := currentTime.Add(time.Duration(best.TravelMinutes) * time.Minute)
		departAt := arriveAt.Add(time.Duration(stayMinutes) * time.Minute)

		plan.Spots = append(plan.Spots, domain.ItinerarySpot{
			Spot:                  spot,
			ArriveAt:              arriveAt,
			DepartAt:              departAt,
			StayMinutes:           stayMinutes,
			TravelMinutesFromPrev: best.TravelMinutes,
			DistanceFromPrevKm:    best.TravelDistanceKm,
		})
		plan.TotalTravelMinutes += best.TravelMinutes
		plan.TotalActivityMinutes += stayMinutes

		log.Printf(
			"day=%d pick spot=%s score=%.1f travel=%dmin arrive=%s",
			req.DayNumber, spot.ID, best.TotalScore, best.TravelMinutes, arriveAt.Format("15:04"),
		)

		currentLocation = spot.Location()
		currentTime = departAt
		lastCategory = spot.PrimaryCategory()
		delete(remaining, spot.ID)
	}

	return plan, nil
}
