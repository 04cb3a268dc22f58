package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/exp/maps"

	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/ports"
)

// EvalState is the planner state a single evaluation round scores against.
type EvalState struct {
	Current      domain.SpotLocation
	CurrentTime  time.Time
	Destination  domain.SpotLocation
	LastCategory string
}

// EvaluateSpots scores every remaining candidate against the current planner
// state and returns the survivors ranked best-first.
//
// Candidates are dropped by two hard filters before scoring: a direction
// score under the configured floor (reverse-direction), and a travel time
// over the per-hop ceiling. Travel times come from one batched oracle call
// covering all remaining candidates. Ties in the final ordering break on
// catalog identity so rankings are deterministic.
func EvaluateSpots(
	ctx context.Context,
	state EvalState,
	remaining map[string]*domain.CandidateSpot,
	mandatory map[string]struct{},
	travel ports.TravelTimeProvider,
	cfg Config,
) ([]domain.SpotEvaluation, error) {
	if len(remaining) == 0 {
		return nil, nil
	}

	ids := maps.Keys(remaining)
	slices.Sort(ids)

	destinations := make([]domain.SpotLocation, 0, len(ids))
	for _, id := range ids {
		destinations = append(destinations, remaining[id].Spot.Location())
	}

	estimates, err := travel.EstimateTravelTimes(ctx, state.Current, destinations, state.CurrentTime)
	if err != nil {
		return nil, fmt.Errorf("evaluate spots: estimate travel times from %q: %w", state.Current.Name, err)
	}
	if len(estimates) != len(ids) {
		return nil, fmt.Errorf("evaluate spots: got %d estimates for %d candidates", len(estimates), len(ids))
	}

	evaluations := make([]domain.SpotEvaluation, 0, len(ids))
	for i, id := range ids {
		candidate := remaining[id]

		direction := DirectionScore(state.Current, candidate.Spot.Location(), state.Destination)
		if direction < cfg.DirectionFloor {
			continue
		}

		travelMinutes := estimates[i].DurationMinutes
		if travelMinutes > cfg.TravelCeilingMinutes {
			continue
		}

		travelEfficiency := 100 - 100*float64(travelMinutes)/float64(cfg.TravelCeilingMinutes)
		if travelEfficiency < 0 {
			travelEfficiency = 0
		}

		timeCategory := cfg.ScoreTimeCategory(candidate.Spot, state.CurrentTime, state.LastCategory)
		isOpen := candidate.Spot.OpenNow()
		_, isMandatory := mandatory[id]

		total := cfg.RelevanceWeight*candidate.RelevanceScore +
			cfg.DirectionWeight*direction +
			cfg.TravelEfficiencyWeight*travelEfficiency +
			cfg.TimeCategoryWeight*timeCategory
		if isOpen {
			total += cfg.OpenNowBonus
		}
		if isMandatory {
			total += cfg.MandatoryBonus
		}

		evaluations = append(evaluations, domain.SpotEvaluation{
			Candidate:         candidate,
			TravelMinutes:     travelMinutes,
			TravelDistanceKm:  estimates[i].DistanceKm,
			DirectionScore:    direction,
			PreferenceScore:   candidate.RelevanceScore,
			TravelEfficiency:  travelEfficiency,
			TimeCategoryScore: timeCategory,
			IsOpenNow:         isOpen,
			IsMandatory:       isMandatory,
			TotalScore:        total,
		})
	}

	// Rank best-first; tie-breaker ensures deterministic ordering.
	slices.SortStableFunc(evaluations, func(a, b domain.SpotEvaluation) int {
		if a.TotalScore > b.TotalScore {
			return -1
		}
		if a.TotalScore < b.TotalScore {
			return 1
		}
		if a.Candidate.Spot.ID < b.Candidate.Spot.ID {
			return -1
		}
		if a.Candidate.Spot.ID > b.Candidate.Spot.ID {
			return 1
		}
		return 0
	})

	return evaluations, nil
}
