package services

import (
	"math"
	"testing"

	"travel-itinerary-service/internal/domain"
)

func loc(lat, lng float64) domain.SpotLocation {
	return domain.SpotLocation{Latitude: lat, Longitude: lng}
}

// Along a meridian haversine distances are exactly additive, so a candidate
// halfway to the destination has zero detour and 50% progress: 0.7*100 + 0.3*50.
func TestDirectionScoreCollinearMidpoint(t *testing.T) {
	current := loc(33.0, 126.5)
	destination := loc(34.0, 126.5)
	candidate := loc(33.5, 126.5)

	got := DirectionScore(current, candidate, destination)
	if math.Abs(got-85) > 1e-9 {
		t.Fatalf("collinear midpoint score = %.6f, want 85", got)
	}
}

func TestDirectionScoreReverseDirectionIsZero(t *testing.T) {
	current := loc(33.0, 126.5)
	destination := loc(34.0, 126.5)
	behind := loc(32.5, 126.5)

	if got := DirectionScore(current, behind, destination); got != 0 {
		t.Fatalf("reverse-direction score = %.6f, want exactly 0", got)
	}
}

func TestDirectionScoreCandidateAtDestination(t *testing.T) {
	current := loc(33.0, 126.5)
	destination := loc(34.0, 126.5)

	got := DirectionScore(current, destination, destination)
	if math.Abs(got-100) > 1e-9 {
		t.Fatalf("candidate at destination score = %.6f, want 100", got)
	}
}

func TestDirectionScoreDegenerateLeg(t *testing.T) {
	p := loc(33.5, 126.5)
	if got := DirectionScore(p, loc(33.4, 126.4), p); got != 0 {
		t.Fatalf("current==destination score = %.6f, want 0", got)
	}
}

func TestDirectionScoreBounded(t *testing.T) {
	current := loc(33.5066, 126.4931)
	destination := loc(33.2541, 126.5601)

	candidates := []domain.SpotLocation{
		loc(33.45, 126.50),
		loc(33.38, 126.60),
		loc(33.30, 126.55),
		loc(33.26, 126.56),
		loc(33.40, 126.49),
	}
	for _, c := range candidates {
		got := DirectionScore(current, c, destination)
		if got < 0 || got > 100 {
			t.Fatalf("score for (%.2f,%.2f) = %.4f outside [0,100]", c.Latitude, c.Longitude, got)
		}
	}
}
