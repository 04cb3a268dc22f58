package handlers

import (
	"log"
	"net/http"

	"travel-itinerary-service/internal/api/dto"
	"travel-itinerary-service/internal/ports"
)

type SpotHandler struct {
	Repo ports.SpotRepository
}

// List returns the catalog spots available for itinerary planning.
func (h *SpotHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	spots, err := h.Repo.ListSpotsWithCoordinates(r.Context())
	if err != nil {
		log.Printf("list spots failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSpotsResponse{Spots: make([]dto.SpotResponse, 0, len(spots))}
	for _, s := range spots {
		res.Spots = append(res.Spots, dto.SpotResponse{
			SpotID:         s.ID,
			Name:           s.Name,
			Region:         s.Region,
			Categories:     s.Categories,
			Lat:            s.Latitude,
			Lng:            s.Longitude,
			VisitMinutes:   s.VisitMinutes,
			OperatingHours: s.OperatingHours,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
