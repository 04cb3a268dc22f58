package api

import (
	"net/http"

	"travel-itinerary-service/internal/api/handlers"
	"travel-itinerary-service/internal/ports"
	"travel-itinerary-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(
	repo ports.SpotRepository,
	scorer ports.RelevanceScorer,
	travel ports.TravelTimeProvider,
	stitcher ports.RouteStitcher,
	cfg services.Config,
) http.Handler {
	mux := http.NewServeMux()

	spotHandler := &handlers.SpotHandler{Repo: repo}
	itineraryHandler := &handlers.ItineraryHandler{
		Repo:     repo,
		Scorer:   scorer,
		Travel:   travel,
		Stitcher: stitcher,
		Config:   cfg,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/spots", spotHandler.List)
	mux.HandleFunc("/itineraries", itineraryHandler.Generate)

	return loggingMiddleware(mux)
}
