package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-itinerary-service/internal/adapters/scorer"
	"travel-itinerary-service/internal/adapters/travel"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/ports"
)

type stubRepo struct {
	spots []*domain.CatalogSpot
}

func (r *stubRepo) ListSpotsWithCoordinates(context.Context) ([]*domain.CatalogSpot, error) {
	return r.spots, nil
}

// flakyScorer fails from call N onward, one call per planned day.
type flakyScorer struct {
	inner   ports.RelevanceScorer
	calls   int
	failOn  int
	failErr error
}

func (s *flakyScorer) ScoreRelevance(
	ctx context.Context,
	candidates []ports.ScoreCandidate,
	prefs domain.TravelerPreferences,
) ([]ports.RelevanceResult, error) {
	s.calls++
	if s.calls >= s.failOn {
		return nil, s.failErr
	}
	return s.inner.ScoreRelevance(ctx, candidates, prefs)
}

type failingStitcher struct{ err error }

func (s *failingStitcher) StitchRoute(context.Context, []domain.SpotLocation) ([]domain.RouteSegment, error) {
	return nil, s.err
}

func jejuCatalog() []*domain.CatalogSpot {
	return []*domain.CatalogSpot{
		{ID: "yongduam", Name: "용두암", Region: "제주시",
			Categories: []string{"관광지"}, Latitude: ptr(33.47), Longitude: ptr(126.50)},
		{ID: "cafe-saebil", Name: "카페새빌", Region: "제주시",
			Categories: []string{"카페"}, Latitude: ptr(33.40), Longitude: ptr(126.52)},
		{ID: "jungmun-beach", Name: "중문해수욕장", Region: "서귀포시",
			Categories: []string{"해변"}, Latitude: ptr(33.30), Longitude: ptr(126.55)},
	}
}

func jejuRequest() domain.ItineraryRequest {
	acc := &domain.SpotLocation{Name: "중산간숙소", Latitude: 33.39, Longitude: 126.52}
	return domain.ItineraryRequest{
		StartDate:      time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC),
		DailyHours:     10,
		Start:          domain.SpotLocation{Name: "제주공항", Latitude: 33.5066, Longitude: 126.4931},
		End:            domain.SpotLocation{Name: "서귀포", Latitude: 33.2541, Longitude: 126.5601},
		Accommodations: []*domain.SpotLocation{acc},
		Preferences:    domain.TravelerPreferences{Tags: []string{"관광지"}},
	}
}

func TestGenerateItineraryTwoDayTrip(t *testing.T) {
	repo := &stubRepo{spots: jejuCatalog()}
	oracle := travel.NewStraightLineTravelProvider(60)

	it, err := GenerateItinerary(context.Background(), jejuRequest(),
		repo, scorer.NewHeuristicScorer(), oracle, oracle, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if it.ID == "" {
		t.Fatal("itinerary must carry an identifier")
	}
	if len(it.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(it.Days))
	}
	if len(it.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", it.Warnings)
	}

	// Day 1 heads for the accommodation and picks up the two northern spots;
	// the beach near Seogwipo is saved for day 2.
	day1IDs := make(map[string]struct{})
	for _, s := range it.Days[0].Spots {
		day1IDs[s.Spot.ID] = struct{}{}
	}
	if len(day1IDs) != 2 {
		t.Fatalf("day 1 visited %d spots, want 2", len(day1IDs))
	}
	if _, ok := day1IDs["yongduam"]; !ok {
		t.Fatal("day 1 should include yongduam")
	}
	if _, ok := day1IDs["cafe-saebil"]; !ok {
		t.Fatal("day 1 should include cafe-saebil")
	}
	if it.Days[0].End.Name != "중산간숙소" {
		t.Fatalf("day 1 ends at %q, want the accommodation", it.Days[0].End.Name)
	}

	if len(it.Days[1].Spots) != 1 || it.Days[1].Spots[0].Spot.ID != "jungmun-beach" {
		t.Fatalf("day 2 spots = %+v, want only jungmun-beach", it.Days[1].Spots)
	}
	if it.Days[1].Start.Name != "중산간숙소" {
		t.Fatalf("day 2 starts at %q, want the accommodation", it.Days[1].Start.Name)
	}
	if it.Days[1].End.Name != "서귀포" {
		t.Fatalf("day 2 ends at %q, want the trip end", it.Days[1].End.Name)
	}

	// A spot identity appears at most once across the whole itinerary.
	seen := make(map[string]int)
	for _, day := range it.Days {
		for _, s := range day.Spots {
			seen[s.Spot.ID]++
		}
	}
	for id, n := range seen {
		if n > 1 {
			t.Fatalf("spot %s visited %d times", id, n)
		}
	}

	if it.Summary.DayCount != 2 || it.Summary.SpotCount != 3 {
		t.Fatalf("summary = %+v, want 2 days / 3 spots", it.Summary)
	}
	if len(it.Summary.RegionsCovered) != 2 {
		t.Fatalf("regions covered = %v, want both", it.Summary.RegionsCovered)
	}
	if len(it.Route) == 0 {
		t.Fatal("stitched route must not be empty")
	}
}

func TestGenerateItineraryBestEffortDegradesFailedDay(t *testing.T) {
	repo := &stubRepo{spots: jejuCatalog()}
	oracle := travel.NewStraightLineTravelProvider(60)
	flaky := &flakyScorer{
		inner:   scorer.NewHeuristicScorer(),
		failOn:  2,
		failErr: errors.New("scoring service unavailable"),
	}

	req := jejuRequest()
	req.BestEffort = true

	it, err := GenerateItinerary(context.Background(), req, repo, flaky, oracle, oracle, DefaultConfig())
	if err != nil {
		t.Fatalf("best-effort run must not abort: %v", err)
	}
	if len(it.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(it.Days))
	}
	if len(it.Days[0].Spots) == 0 {
		t.Fatal("day 1 planned before the failure must keep its spots")
	}
	if len(it.Days[1].Spots) != 0 || it.Days[1].Note == "" {
		t.Fatalf("failed day 2 should be empty with a note, got %+v", it.Days[1])
	}
	if len(it.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", it.Warnings)
	}
}

func TestGenerateItineraryScorerFailureAborts(t *testing.T) {
	repo := &stubRepo{spots: jejuCatalog()}
	oracle := travel.NewStraightLineTravelProvider(60)
	flaky := &flakyScorer{
		inner:   scorer.NewHeuristicScorer(),
		failOn:  2,
		failErr: errors.New("scoring service unavailable"),
	}

	_, err := GenerateItinerary(context.Background(), jejuRequest(), repo, flaky, oracle, oracle, DefaultConfig())

	var dayErr *DayError
	if !errors.As(err, &dayErr) {
		t.Fatalf("want *DayError, got %v", err)
	}
	if dayErr.DayNumber != 2 || dayErr.Dependency != "relevance scorer" {
		t.Fatalf("day error = %+v, want day 2 relevance scorer", dayErr)
	}
}

func TestGenerateItineraryStitchFailure(t *testing.T) {
	repo := &stubRepo{spots: jejuCatalog()}
	oracle := travel.NewStraightLineTravelProvider(60)
	stitcher := &failingStitcher{err: errors.New("routing service unavailable")}

	if _, err := GenerateItinerary(context.Background(), jejuRequest(),
		repo, scorer.NewHeuristicScorer(), oracle, stitcher, DefaultConfig()); err == nil {
		t.Fatal("stitch failure must abort by default")
	}

	req := jejuRequest()
	req.BestEffort = true
	it, err := GenerateItinerary(context.Background(), req,
		repo, scorer.NewHeuristicScorer(), oracle, stitcher, DefaultConfig())
	if err != nil {
		t.Fatalf("best-effort run must not abort on stitch failure: %v", err)
	}
	if len(it.Route) != 0 {
		t.Fatal("degraded itinerary must not carry a route")
	}
	if len(it.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", it.Warnings)
	}
}

// A same-start-and-end day makes forward progress impossible: every candidate
// fails the reverse-direction rule and the day comes back empty, not failed.
func TestGenerateItineraryDegenerateDayIsEmpty(t *testing.T) {
	repo := &stubRepo{spots: jejuCatalog()}
	oracle := travel.NewStraightLineTravelProvider(60)

	req := jejuRequest()
	req.EndDate = req.StartDate
	req.Accommodations = nil
	req.End = req.Start

	it, err := GenerateItinerary(context.Background(), req,
		repo, scorer.NewHeuristicScorer(), oracle, oracle, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(it.Days) != 1 || len(it.Days[0].Spots) != 0 {
		t.Fatalf("degenerate day should be empty, got %+v", it.Days)
	}
}

func TestValidateRequest(t *testing.T) {
	base := jejuRequest()

	cases := []struct {
		name   string
		mutate func(*domain.ItineraryRequest)
		field  string
	}{
		{"missing dates", func(r *domain.ItineraryRequest) { r.StartDate, r.EndDate = time.Time{}, time.Time{} }, "dates"},
		{"end before start", func(r *domain.ItineraryRequest) { r.EndDate = r.StartDate.AddDate(0, 0, -1) }, "dates"},
		{"zero daily hours", func(r *domain.ItineraryRequest) { r.DailyHours = 0 }, "daily_hours"},
		{"negative radius", func(r *domain.ItineraryRequest) { r.CorridorRadiusKm = -5 }, "corridor_radius_km"},
		{"missing start", func(r *domain.ItineraryRequest) { r.Start = domain.SpotLocation{} }, "start"},
		{"missing end", func(r *domain.ItineraryRequest) { r.End = domain.SpotLocation{} }, "end"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)

			var verr *ValidationError
			if err := ValidateRequest(req); !errors.As(err, &verr) {
				t.Fatalf("want *ValidationError, got %v", err)
			} else if verr.Field != tc.field {
				t.Fatalf("field = %q, want %q", verr.Field, tc.field)
			}
		})
	}

	if err := ValidateRequest(base); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}
