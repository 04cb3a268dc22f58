package services

import (
	"log"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/geo"
)

// FilterByCorridor projects every catalog spot with known coordinates onto
// the corridor centerline and keeps those within the corridor radius.
//
// Spots without coordinates are excluded silently; that is a catalog
// data-quality gap, not an error. Output order is unspecified and callers
// must not rely on it.
func FilterByCorridor(spots []*domain.CatalogSpot, corridor domain.TravelCorridor) []*domain.CandidateSpot {
	candidates := make([]*domain.CandidateSpot, 0, len(spots))
	skipped := 0

	for _, spot := range spots {
		if !spot.HasCoordinates() {
			skipped++
			continue
		}

		dist := geo.PointToSegmentKm(
			*spot.Latitude, *spot.Longitude,
			corridor.CenterLine[0][0], corridor.CenterLine[0][1],
			corridor.CenterLine[1][0], corridor.CenterLine[1][1],
		)
		if dist > corridor.RadiusKm {
			continue
		}

		candidates = append(candidates, &domain.CandidateSpot{
			Spot:                   spot,
			DistanceFromCorridorKm: dist,
			InCorridor:             true,
		})
	}

	if skipped > 0 {
		log.Printf("filter by corridor: skipped=%d spots without coordinates", skipped)
	}

	return candidates
}
