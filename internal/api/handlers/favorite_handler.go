package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/medfinder/backend/internal/api/middleware"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
)

// FavoriteService manages a user's saved medications
type FavoriteService interface {
	Add(ctx context.Context, userID, medicationID string) (*entities.Favorite, error)
	Remove(ctx context.Context, userID, medicationID string) error
	List(ctx context.Context, userID string) ([]*entities.FavoriteMedication, error)
}

// HistoryService reads a user's recent searches
type HistoryService interface {
	Recent(ctx context.Context, userID string) ([]*entities.SearchHistory, error)
}

// FavoriteHandler handles favorites and search history requests. Every
// route needs an authenticated user; the services reject anonymous calls.
type FavoriteHandler struct {
	favorites FavoriteService
	history   HistoryService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favorites FavoriteService, history HistoryService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, history: history}
}

// AddFavoriteRequest names the medication to save
type AddFavoriteRequest struct {
	MedicationID string `json:"medicationId"`
}

// AddFavorite handles POST /api/favorites
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req AddFavoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	favorite, err := h.favorites.Add(r.Context(), middleware.UserIDFromContext(r.Context()), req.MedicationID)
	if err != nil {
		respondWithAppError(w, r, err, "Failed to add favorite")
		return
	}
	respondWithJSON(w, http.StatusCreated, favorite)
}

// ListFavorites handles GET /api/favorites
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favorites.List(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		respondWithAppError(w, r, err, "Failed to fetch favorites")
		return
	}
	respondWithJSON(w, http.StatusOK, favorites)
}

// RemoveFavorite handles DELETE /api/favorites/{medicationId}
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	err := h.favorites.Remove(r.Context(), middleware.UserIDFromContext(r.Context()), r.PathValue("medicationId"))
	if err != nil {
		respondWithAppError(w, r, err, "Failed to remove favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SearchHistory handles GET /api/search/history
func (h *FavoriteHandler) SearchHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.history.Recent(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		respondWithAppError(w, r, err, "Failed to fetch search history")
		return
	}
	respondWithJSON(w, http.StatusOK, history)
}
