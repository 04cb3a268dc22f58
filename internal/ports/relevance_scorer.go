package ports

import (
	"context"
	"travel-itinerary-service/internal/domain"
)

// Candidate payload sent to the external relevance scorer.
type ScoreCandidate struct {
	ID         string
	Categories []string
	Attributes map[string]string
}

// Externally computed 0-100 suitability score for one candidate.
type RelevanceResult struct {
	ID        string
	Score     float64
	Reasoning string
}

// Contract for the external relevance-scoring model. Called once per day,
// batched over all in-corridor candidates; preferences are forwarded opaquely.
type RelevanceScorer interface {
	ScoreRelevance(
		ctx context.Context,
		candidates []ScoreCandidate,
		prefs domain.TravelerPreferences,
	) ([]RelevanceResult, error)
}
