package dto

type SpotResponse struct {
	SpotID         string   `json:"spot_id"`
	Name           string   `json:"name"`
	Region         string   `json:"region,omitempty"`
	Categories     []string `json:"categories"`
	Lat            *float64 `json:"lat,omitempty"`
	Lng            *float64 `json:"lng,omitempty"`
	VisitMinutes   int      `json:"visit_minutes,omitempty"`
	OperatingHours string   `json:"operating_hours,omitempty"`
}

type ListSpotsResponse struct {
	Spots []SpotResponse `json:"spots"`
}
