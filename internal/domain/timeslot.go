package domain

// TimeSlotPreference maps a half-open hour range [StartHour, EndHour) to the
// categories a traveler typically wants (or wants to avoid) at that time of
// day. Slots must not overlap; hours not covered by any slot score neutral.
type TimeSlotPreference struct {
	StartHour           int
	EndHour             int
	Label               string
	PreferredCategories []string
	AvoidCategories     []string
}

// Contains reports whether the given hour falls inside the slot.
func (p TimeSlotPreference) Contains(hour int) bool {
	return hour >= p.StartHour && hour < p.EndHour
}

// Prefers reports whether any of the spot's categories is preferred here.
func (p TimeSlotPreference) Prefers(spot *CatalogSpot) bool {
	return anyCategoryMatch(spot, p.PreferredCategories)
}

// Avoids reports whether any of the spot's categories should be avoided here.
func (p TimeSlotPreference) Avoids(spot *CatalogSpot) bool {
	return anyCategoryMatch(spot, p.AvoidCategories)
}

func anyCategoryMatch(spot *CatalogSpot, categories []string) bool {
	for _, c := range categories {
		if spot.HasCategory(c) {
			return true
		}
	}
	return false
}
