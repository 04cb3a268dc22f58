// Package scorer provides implementations of the relevance-scorer port: an
// HTTP client for the external AI scoring service and a deterministic
// in-process heuristic used when no service is configured.
package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/platform/obs"
	"travel-itinerary-service/internal/ports"
)

// HTTPRelevanceScorer calls the external AI relevance-scoring service.
// Traveler preferences are forwarded opaquely; the model's reasoning comes
// back as free text per candidate.
type HTTPRelevanceScorer struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewHTTPRelevanceScorer(baseURL, apiKey string) (*HTTPRelevanceScorer, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("scorer base URL is empty")
	}

	return &HTTPRelevanceScorer{
		session: &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}, nil
}

type scoreRequest struct {
	Candidates  []scoreCandidate `json:"candidates"`
	Preferences scorePreferences `json:"preferences"`
}

type scoreCandidate struct {
	ID         string            `json:"id"`
	Categories []string          `json:"categories"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

type scorePreferences struct {
	Tags           []string `json:"tags"`
	Companion      string   `json:"companion"`
	Pace           string   `json:"pace"`
	Budget         string   `json:"budget"`
	PreferRainyDay bool     `json:"prefer_rainy_day"`
	PreferHidden   bool     `json:"prefer_hidden_gems"`
	AvoidCrowds    bool     `json:"avoid_crowds"`
}

type scoreResponse struct {
	Results []struct {
		ID        string  `json:"id"`
		Score     float64 `json:"score"`
		Reasoning string  `json:"reasoning"`
	} `json:"results"`
}

// ScoreRelevance implements ports.RelevanceScorer with one batched call.
func (s *HTTPRelevanceScorer) ScoreRelevance(
	ctx context.Context,
	candidates []ports.ScoreCandidate,
	prefs domain.TravelerPreferences,
) (_ []ports.RelevanceResult, err error) {
	defer obs.Time(ctx, "scorer.http.ScoreRelevance")(&err)

	if len(candidates) == 0 {
		return []ports.RelevanceResult{}, nil
	}

	body := scoreRequest{
		Candidates: make([]scoreCandidate, 0, len(candidates)),
		Preferences: scorePreferences{
			Tags:           prefs.Tags,
			Companion:      prefs.CompanionType,
			Pace:           prefs.Pace,
			Budget:         prefs.BudgetTier,
			PreferRainyDay: prefs.PreferRainyDay,
			PreferHidden:   prefs.PreferHidden,
			AvoidCrowds:    prefs.AvoidCrowds,
		},
	}
	for _, c := range candidates {
		body.Candidates = append(body.Candidates, scoreCandidate{
			ID:         c.ID,
			Categories: c.Categories,
			Attributes: c.Attributes,
		})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal score request: %w", err)
	}

	resp, err := s.doWithRetry(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("score request failed: %w", err)
	}
	defer resp.Body.Close()

	var sr scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode score response: %w", err)
	}

	out := make([]ports.RelevanceResult, 0, len(sr.Results))
	for _, r := range sr.Results {
		out = append(out, ports.RelevanceResult{
			ID:        r.ID,
			Score:     clampScore(r.Score),
			Reasoning: r.Reasoning,
		})
	}
	return out, nil
}

// clampScore keeps externally supplied scores inside the documented 0-100
// range; the model occasionally overshoots.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// doWithRetry retries transient failures (network errors, 429/5xx) with
// exponential backoff, honoring context cancellation.
func (s *HTTPRelevanceScorer) doWithRetry(ctx context.Context, payload []byte) (*http.Response, error) {
	const maxAttempts = 3
	backoff := 500 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/relevance", bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if s.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+s.apiKey)
		}

		resp, err := s.session.Do(req)
		if err == nil && resp.StatusCode < 400 {
			return resp, nil
		}

		if err != nil {
			lastErr = err
		} else {
			b, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("scorer status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
			if resp.StatusCode != 429 && resp.StatusCode < 500 {
				return nil, lastErr
			}
		}

		if attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
