// Package geo provides the small geometry kernel used for corridor
// construction and candidate filtering: great-circle distances and
// point-to-segment projection over latitude/longitude pairs.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for haversine distances.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// latitude/longitude points. The approximation is fine at regional trip
// scale; antipodal edge cases are not special-cased.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// PointToSegmentKm returns the distance in kilometers from a point to the
// closest point on the segment (aLat,aLng)->(bLat,bLng).
//
// The scalar projection is computed in the raw lat/lng plane (not a true
// geodesic projection) and clamped to [0,1], so the closest point never
// extrapolates past either endpoint. The final distance is haversine.
func PointToSegmentKm(lat, lng, aLat, aLng, bLat, bLng float64) float64 {
	segLat := bLat - aLat
	segLng := bLng - aLng

	lenSq := segLat*segLat + segLng*segLng
	if lenSq == 0 {
		// Degenerate segment: both endpoints coincide.
		return HaversineKm(lat, lng, aLat, aLng)
	}

	t := ((lat-aLat)*segLat + (lng-aLng)*segLng) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closestLat := aLat + t*segLat
	closestLng := aLng + t*segLng
	return HaversineKm(lat, lng, closestLat, closestLng)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
