package services

import "travel-itinerary-service/internal/domain"

// Config carries every scoring weight, threshold and the time-slot table
// used by the evaluator and day planner. The constants live here rather
// than inline so test suites can substitute deterministic values.
type Config struct {
	// Weighted-sum coefficients for the evaluator's total score.
	RelevanceWeight        float64
	DirectionWeight        float64
	TravelEfficiencyWeight float64
	TimeCategoryWeight     float64

	// Flat bonuses.
	OpenNowBonus   float64
	MandatoryBonus float64

	// Hard filters. Candidates below the direction floor are treated as
	// reverse-direction; candidates above the travel ceiling are unreachable
	// within a reasonable hop.
	DirectionFloor       float64
	TravelCeilingMinutes int

	// Planning clock.
	DayStartHour       int
	DefaultStayMinutes int

	// Time-slot preference table and the category sets driving the
	// meal->cafe chaining bonus.
	Slots          []domain.TimeSlotPreference
	MealCategories []string
	CafeCategories []string
	PostLunchLabel string
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() Config {
	return Config{
		RelevanceWeight:        0.30,
		DirectionWeight:        0.25,
		TravelEfficiencyWeight: 0.15,
		TimeCategoryWeight:     0.20,
		OpenNowBonus:           10,
		MandatoryBonus:         50,
		DirectionFloor:         20,
		TravelCeilingMinutes:   40,
		DayStartHour:           9,
		DefaultStayMinutes:     60,
		Slots:                  DefaultTimeSlots(),
		MealCategories:         []string{"맛집", "음식점"},
		CafeCategories:         []string{"카페", "디저트"},
		PostLunchLabel:         "post_lunch_cafe",
	}
}

// DefaultTimeSlots covers 09:00-23:00: morning sightseeing, lunch, a
// post-lunch cafe window, afternoon sightseeing/shopping, sunset viewpoints,
// dinner and evening nightlife. Gaps (and anything outside) score neutral.
func DefaultTimeSlots() []domain.TimeSlotPreference {
	return []domain.TimeSlotPreference{
		{
			StartHour: 9, EndHour: 12, Label: "morning_sightseeing",
			PreferredCategories: []string{"관광지", "자연경관", "박물관", "해변"},
			AvoidCategories:     []string{"술집"},
		},
		{
			StartHour: 12, EndHour: 14, Label: "lunch",
			PreferredCategories: []string{"맛집", "음식점"},
		},
		{
			StartHour: 14, EndHour: 15, Label: "post_lunch_cafe",
			PreferredCategories: []string{"카페", "디저트"},
		},
		{
			StartHour: 15, EndHour: 18, Label: "afternoon",
			PreferredCategories: []string{"관광지", "쇼핑", "자연경관"},
		},
		{
			StartHour: 18, EndHour: 19, Label: "sunset",
			PreferredCategories: []string{"전망대", "해변"},
		},
		{
			StartHour: 19, EndHour: 21, Label: "dinner",
			PreferredCategories: []string{"맛집", "음식점"},
			AvoidCategories:     []string{"카페"},
		},
		{
			StartHour: 21, EndHour: 23, Label: "evening",
			PreferredCategories: []string{"술집", "야경"},
			AvoidCategories:     []string{"관광지"},
		},
	}
}

func (c Config) slotFor(hour int) *domain.TimeSlotPreference {
	for i := range c.Slots {
		if c.Slots[i].Contains(hour) {
			return &c.Slots[i]
		}
	}
	return nil
}

func (c Config) isMeal(category string) bool {
	for _, m := range c.MealCategories {
		if m == category {
			return true
		}
	}
	return false
}

func (c Config) isCafe(spot *domain.CatalogSpot) bool {
	for _, cat := range c.CafeCategories {
		if spot.HasCategory(cat) {
			return true
		}
	}
	return false
}
