package ports

import (
	"context"
	"travel-itinerary-service/internal/domain"
)

// Port: a boundary for reading catalog spots from a data source. The catalog
// is owned elsewhere; this service never writes to it.
type SpotRepository interface {
	// Retrieve all catalog spots that carry usable coordinates.
	ListSpotsWithCoordinates(ctx context.Context) ([]*domain.CatalogSpot, error)
}
