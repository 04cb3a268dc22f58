package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"travel-itinerary-service/internal/api/dto"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/ports"
	"travel-itinerary-service/internal/services"
)

type ItineraryHandler struct {
	Repo     ports.SpotRepository
	Scorer   ports.RelevanceScorer
	Travel   ports.TravelTimeProvider
	Stitcher ports.RouteStitcher
	Config   services.Config
}

// Generate orchestrates full itinerary generation for a trip request.
// It coordinates repository access, external scoring/travel oracles, and
// the per-day planning loop.
func (h *ItineraryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.GenerateItineraryRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	domainReq, err := toDomainRequest(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	itinerary, err := services.GenerateItinerary(
		r.Context(), domainReq, h.Repo, h.Scorer, h.Travel, h.Stitcher, h.Config,
	)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, r, http.StatusBadRequest, vErr.Error())
			return
		}

		var dayErr *services.DayError
		if errors.As(err, &dayErr) {
			log.Printf("generate itinerary failed: %v", err)
			writeError(w, r, http.StatusBadGateway, dayErr.Error())
			return
		}

		log.Printf("generate itinerary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toItineraryResponse(itinerary))
}

func toDomainRequest(req dto.GenerateItineraryRequest) (domain.ItineraryRequest, error) {
	var out domain.ItineraryRequest

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return out, errors.New("start_date must be formatted YYYY-MM-DD")
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return out, errors.New("end_date must be formatted YYYY-MM-DD")
	}
	if req.Start == nil || req.End == nil {
		return out, errors.New("start and end waypoints are required")
	}

	accommodations := make([]*domain.SpotLocation, 0, len(req.Accommodations))
	for _, a := range req.Accommodations {
		if a == nil {
			accommodations = append(accommodations, nil)
			continue
		}
		loc := toDomainLocation(*a)
		accommodations = append(accommodations, &loc)
	}

	out = domain.ItineraryRequest{
		StartDate:      startDate,
		EndDate:        endDate,
		DailyHours:     req.DailyHours,
		Start:          toDomainLocation(*req.Start),
		End:            toDomainLocation(*req.End),
		Accommodations: accommodations,
		Preferences: domain.TravelerPreferences{
			Tags:           req.Preferences.Tags,
			CompanionType:  req.Preferences.Companion,
			Pace:           req.Preferences.Pace,
			BudgetTier:     req.Preferences.Budget,
			PreferRainyDay: req.Preferences.PreferRainyDay,
			PreferHidden:   req.Preferences.PreferHidden,
			AvoidCrowds:    req.Preferences.AvoidCrowds,
		},
		MandatorySpotIDs: req.MandatorySpotIDs,
		CorridorRadiusKm: req.CorridorRadiusKm,
		BestEffort:       req.BestEffort,
	}
	return out, nil
}

func toDomainLocation(l dto.LocationDTO) domain.SpotLocation {
	return domain.SpotLocation{
		Name:      l.Name,
		Latitude:  l.Lat,
		Longitude: l.Lng,
		Address:   l.Address,
		PlaceID:   l.PlaceID,
	}
}

func toLocationDTO(l domain.SpotLocation) dto.LocationDTO {
	return dto.LocationDTO{
		Name:    l.Name,
		Lat:     l.Latitude,
		Lng:     l.Longitude,
		Address: l.Address,
		PlaceID: l.PlaceID,
	}
}

func toItineraryResponse(it *domain.TravelItinerary) dto.ItineraryResponse {
	res := dto.ItineraryResponse{
		ID:        it.ID,
		Days:      make([]dto.DayPlanResponse, 0, len(it.Days)),
		Route:     make([]dto.RouteSegmentResponse, 0, len(it.Route)),
		Warnings:  it.Warnings,
		CreatedAt: it.CreatedAt,
		Summary: dto.SummaryResponse{
			DayCount:             it.Summary.DayCount,
			SpotCount:            it.Summary.SpotCount,
			TotalTravelMinutes:   it.Summary.TotalTravelMinutes,
			TotalActivityMinutes: it.Summary.TotalActivityMinutes,
			RegionsCovered:       it.Summary.RegionsCovered,
		},
	}

	for _, day := range it.Days {
		spots := make([]dto.ItinerarySpotResponse, 0, len(day.Spots))
		for i, s := range day.Spots {
			// The domain stores travel from the previous stop; the API
			// presents travel toward the next one.
			travelToNext := 0
			if i+1 < len(day.Spots) {
				travelToNext = day.Spots[i+1].TravelMinutesFromPrev
			}
			spots = append(spots, dto.ItinerarySpotResponse{
				SpotID:              s.Spot.ID,
				Name:                s.Spot.Name,
				Categories:          s.Spot.Categories,
				ArriveAt:            s.ArriveAt,
				DepartAt:            s.DepartAt,
				StayMinutes:         s.StayMinutes,
				TravelMinutesToNext: travelToNext,
			})
		}

		res.Days = append(res.Days, dto.DayPlanResponse{
			Date:                 day.Date.Format("2006-01-02"),
			DayNumber:            day.DayNumber,
			Start:                toLocationDTO(day.Start),
			End:                  toLocationDTO(day.End),
			Spots:                spots,
			TotalTravelMinutes:   day.TotalTravelMinutes,
			TotalActivityMinutes: day.TotalActivityMinutes,
			Note:                 day.Note,
		})
	}

	for _, seg := range it.Route {
		res.Route = append(res.Route, dto.RouteSegmentResponse{
			From:            seg.From,
			To:              seg.To,
			DurationMinutes: seg.DurationMinutes,
			DistanceKm:      seg.DistanceKm,
			Steps:           seg.Steps,
		})
	}

	return res
}
