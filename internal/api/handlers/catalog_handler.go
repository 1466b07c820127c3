package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
)

// CatalogService is the catalog read surface used by CatalogHandler
type CatalogService interface {
	ListSymptoms(ctx context.Context) ([]*entities.Symptom, error)
	ListCommonSymptoms(ctx context.Context) ([]*entities.Symptom, error)
	SuggestSymptoms(ctx context.Context, query string, excluded []string) ([]*entities.Symptom, error)
	AddToSelection(selected []string, name string) ([]string, error)
	MaxSelected() int
	ListMedications(ctx context.Context) ([]*entities.Medication, error)
	GetMedication(ctx context.Context, id string) (*entities.MedicationWithLinks, error)
}

// CatalogHandler handles symptom and medication catalog requests
type CatalogHandler struct {
	service CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListSymptoms handles GET /api/symptoms
func (h *CatalogHandler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	symptoms, err := h.service.ListSymptoms(r.Context())
	if err != nil {
		respondWithAppError(w, r, err, "Failed to fetch symptoms")
		return
	}
	respondWithJSON(w, http.StatusOK, symptoms)
}

// ListCommonSymptoms handles GET /api/symptoms/common
func (h *CatalogHandler) ListCommonSymptoms(w http.ResponseWriter, r *http.Request) {
	symptoms, err := h.service.ListCommonSymptoms(r.Context())
	if err != nil {
		respondWithAppError(w, r, err, "Failed to fetch common symptoms")
		return
	}
	respondWithJSON(w, http.StatusOK, symptoms)
}

// SuggestSymptoms handles GET /api/symptoms/suggest?q=&exclude=a,b
func (h *CatalogHandler) SuggestSymptoms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	excluded := splitList(r.URL.Query().Get("exclude"))

	symptoms, err := h.service.SuggestSymptoms(r.Context(), query, excluded)
	if err != nil {
		respondWithAppError(w, r, err, "Failed to suggest symptoms")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"suggestions": symptoms,
		"count":       len(symptoms),
	})
}

// SelectionRequest adds one symptom to a client-held selection
type SelectionRequest struct {
	Selected []string `json:"selected"`
	Add      string   `json:"add"`
}

// AddToSelection handles POST /api/symptoms/selection
func (h *CatalogHandler) AddToSelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	selected, err := h.service.AddToSelection(req.Selected, req.Add)
	if err != nil {
		respondWithAppError(w, r, err, "Failed to update selection")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"selected":    selected,
		"maxSelected": h.service.MaxSelected(),
	})
}

// ListMedications handles GET /api/medications
func (h *CatalogHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	medications, err := h.service.ListMedications(r.Context())
	if err != nil {
		respondWithAppError(w, r, err, "Failed to fetch medications")
		return
	}
	respondWithJSON(w, http.StatusOK, medications)
}

// GetMedication handles GET /api/medications/{id}
func (h *CatalogHandler) GetMedication(w http.ResponseWriter, r *http.Request) {
	medication, err := h.service.GetMedication(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err, "Failed to fetch medication")
		return
	}
	respondWithJSON(w, http.StatusOK, medication)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
