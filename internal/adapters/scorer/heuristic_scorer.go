package scorer

import (
	"context"
	"strings"

	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/ports"
)

// HeuristicScorer is a deterministic in-process stand-in for the external
// AI relevance model: category/tag overlap plus small flag adjustments.
// It keeps local runs and tests independent of the scoring service.
type HeuristicScorer struct {
	BaseScore float64
}

func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{BaseScore: 50}
}

func (h *HeuristicScorer) ScoreRelevance(
	ctx context.Context,
	candidates []ports.ScoreCandidate,
	prefs domain.TravelerPreferences,
) ([]ports.RelevanceResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tags := make(map[string]struct{}, len(prefs.Tags))
	for _, t := range prefs.Tags {
		tags[strings.TrimSpace(t)] = struct{}{}
	}

	out := make([]ports.RelevanceResult, 0, len(candidates))
	for _, c := range candidates {
		score := h.BaseScore
		matched := make([]string, 0, 2)

		for _, cat := range c.Categories {
			if _, ok := tags[cat]; ok {
				score += 15
				matched = append(matched, cat)
			}
		}
		if prefs.PreferHidden {
			score += 5
		}
		if score > 100 {
			score = 100
		}

		reasoning := "no preference overlap"
		if len(matched) > 0 {
			reasoning = "matches preferred categories: " + strings.Join(matched, ", ")
		}

		out = append(out, ports.RelevanceResult{
			ID:        c.ID,
			Score:     score,
			Reasoning: reasoning,
		})
	}
	return out, nil
}
