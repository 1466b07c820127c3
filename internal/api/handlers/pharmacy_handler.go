package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
)

// PharmacyService finds pharmacies near a point
type PharmacyService interface {
	FindNearby(ctx context.Context, q repositories.NearbyQuery) ([]*entities.NearbyPharmacy, error)
}

// PharmacyHandler handles pharmacy finder requests
type PharmacyHandler struct {
	service PharmacyService
}

// NewPharmacyHandler creates a new pharmacy handler
func NewPharmacyHandler(service PharmacyService) *PharmacyHandler {
	return &PharmacyHandler{service: service}
}

// FindNearby handles GET /api/pharmacies/nearby?lat=&lng=&radius=&medicationId=
func (h *PharmacyHandler) FindNearby(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	latStr, lngStr := query.Get("lat"), query.Get("lng")
	if latStr == "" || lngStr == "" {
		respondWithError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lat")
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lng")
		return
	}

	var radius float64
	if radiusStr := query.Get("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid radius")
			return
		}
	}

	pharmacies, err := h.service.FindNearby(r.Context(), repositories.NearbyQuery{
		Latitude:     lat,
		Longitude:    lng,
		RadiusKm:     radius,
		MedicationID: query.Get("medicationId"),
	})
	if err != nil {
		respondWithAppError(w, r, err, "Failed to find pharmacies")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"pharmacies": pharmacies,
		"count":      len(pharmacies),
	})
}
