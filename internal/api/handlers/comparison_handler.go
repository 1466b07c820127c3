package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
)

// ComparisonService compares two medications
type ComparisonService interface {
	Compare(ctx context.Context, medication1ID, medication2ID string) (*entities.MedicationComparison, error)
}

// ComparisonHandler handles medication comparison requests
type ComparisonHandler struct {
	service ComparisonService
}

// NewComparisonHandler creates a new comparison handler
func NewComparisonHandler(service ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{service: service}
}

// CompareRequest names the two medications to compare
type CompareRequest struct {
	Medication1ID string `json:"medication1Id"`
	Medication2ID string `json:"medication2Id"`
}

// Compare handles POST /api/medications/compare
func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comparison, err := h.service.Compare(r.Context(), req.Medication1ID, req.Medication2ID)
	if err != nil {
		respondWithAppError(w, r, err, "Failed to compare medications")
		return
	}
	respondWithJSON(w, http.StatusOK, comparison)
}
