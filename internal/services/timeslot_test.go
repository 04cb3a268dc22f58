package services

import (
	"testing"
	"time"

	"travel-itinerary-service/internal/domain"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.September, 12, hour, minute, 0, 0, time.UTC)
}

func spotWith(categories ...string) *domain.CatalogSpot {
	return &domain.CatalogSpot{ID: "s", Categories: categories}
}

func TestScoreTimeCategoryTable(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name         string
		spot         *domain.CatalogSpot
		at           time.Time
		lastCategory string
		want         float64
	}{
		{"morning sightseeing preferred", spotWith("관광지"), at(10, 0), "", 30},
		{"morning bar avoided", spotWith("술집"), at(10, 0), "", 0},
		{"lunch restaurant preferred", spotWith("맛집"), at(12, 30), "", 30},
		{"uncategorized is neutral", spotWith(), at(10, 0), "", 10},
		{"before first slot is neutral", spotWith("관광지"), at(8, 0), "", 10},
		{"after last slot is neutral", spotWith("술집"), at(23, 0), "", 10},
		{"dinner cafe avoided and repeated", spotWith("카페"), at(19, 30), "카페", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cfg.ScoreTimeCategory(tc.spot, tc.at, tc.lastCategory)
			if got != tc.want {
				t.Fatalf("score = %.1f, want %.1f", got, tc.want)
			}
		})
	}
}

// Repeating the previous visit's category costs 10 even when the slot
// prefers it: two sights back to back score 20, not 30.
func TestScoreTimeCategoryRepetitionPenalty(t *testing.T) {
	cfg := DefaultConfig()
	sight := spotWith("관광지")

	fresh := cfg.ScoreTimeCategory(sight, at(10, 0), "")
	repeated := cfg.ScoreTimeCategory(sight, at(10, 0), "관광지")

	if fresh != 30 {
		t.Fatalf("fresh sight score = %.1f, want 30", fresh)
	}
	if repeated != 20 {
		t.Fatalf("repeated sight score = %.1f, want 20", repeated)
	}
}

func TestScoreTimeCategoryMealToCafeChaining(t *testing.T) {
	cfg := DefaultConfig()
	cafe := spotWith("카페")

	// In the post-lunch window a cafe after a meal earns the chaining bonus
	// on top of the preferred base; the clamp caps the sum at 30.
	chained := cfg.ScoreTimeCategory(cafe, at(14, 30), "맛집")
	if chained != 30 {
		t.Fatalf("post-lunch chained cafe score = %.1f, want 30 (clamped)", chained)
	}

	// Outside the post-lunch window the same sequence gets no bonus and the
	// afternoon slot does not prefer cafes.
	unchained := cfg.ScoreTimeCategory(cafe, at(15, 30), "맛집")
	if unchained != 10 {
		t.Fatalf("afternoon cafe after meal score = %.1f, want 10", unchained)
	}
}

func TestScoreTimeCategoryClampedRange(t *testing.T) {
	cfg := DefaultConfig()

	hours := []int{8, 9, 12, 14, 15, 18, 19, 21, 23}
	spots := []*domain.CatalogSpot{
		spotWith("관광지"), spotWith("맛집"), spotWith("카페"),
		spotWith("술집"), spotWith("전망대"), spotWith(),
	}
	for _, h := range hours {
		for _, s := range spots {
			for _, last := range []string{"", "관광지", "맛집", s.PrimaryCategory()} {
				got := cfg.ScoreTimeCategory(s, at(h, 0), last)
				if got < 0 || got > 30 {
					t.Fatalf("score %.1f outside [0,30] at hour=%d categories=%v last=%q",
						got, h, s.Categories, last)
				}
			}
		}
	}
}
