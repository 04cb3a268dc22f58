package domain

import "fmt"

// Immutable geographic waypoint: a named latitude/longitude pair with an
// optional street address and external place identifier.
type SpotLocation struct {
	Name      string
	Latitude  float64
	Longitude float64
	Address   string
	PlaceID   string
}

// Return coordinates as [lon, lat] for external routing API compatibility.
func (l SpotLocation) CoordsToList() []float64 { return []float64{l.Longitude, l.Latitude} }

// Key returns a stable cache key for the location. Coordinates are rounded
// to five decimals (~1 m) so near-identical waypoints share cache entries.
func (l SpotLocation) Key() string {
	return fmt.Sprintf("%.5f,%.5f", l.Latitude, l.Longitude)
}
