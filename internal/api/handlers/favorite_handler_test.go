package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/medfinder/backend/internal/api/handlers"
	"github.com/zatekoja/medfinder/backend/internal/api/middleware"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

func TestFavoriteHandler_AddFavorite(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		favorites := new(MockFavoriteService)
		handler := handlers.NewFavoriteHandler(favorites, new(MockHistoryService))
		favorites.On("Add", mock.Anything, "u1", "m1").
			Return(&entities.Favorite{ID: "f1", UserID: "u1", MedicationID: "m1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"medicationId":"m1"}`))
		req = req.WithContext(middleware.WithUserID(req.Context(), "u1"))
		rr := httptest.NewRecorder()
		handler.AddFavorite(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"medicationId":"m1"`)
	})

	t.Run("duplicate", func(t *testing.T) {
		favorites := new(MockFavoriteService)
		handler := handlers.NewFavoriteHandler(favorites, new(MockHistoryService))
		favorites.On("Add", mock.Anything, "u1", "m1").
			Return(nil, apperrors.NewConflictError("Medication already in favorites"))

		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"medicationId":"m1"}`))
		req = req.WithContext(middleware.WithUserID(req.Context(), "u1"))
		rr := httptest.NewRecorder()
		handler.AddFavorite(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		favorites := new(MockFavoriteService)
		handler := handlers.NewFavoriteHandler(favorites, new(MockHistoryService))
		favorites.On("Add", mock.Anything, "", "m1").
			Return(nil, apperrors.NewUnauthorizedError("Unauthorized"))

		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"medicationId":"m1"}`))
		rr := httptest.NewRecorder()
		handler.AddFavorite(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Unauthorized", decodeError(t, rr))
	})
}

func TestFavoriteHandler_RemoveFavorite(t *testing.T) {
	favorites := new(MockFavoriteService)
	handler := handlers.NewFavoriteHandler(favorites, new(MockHistoryService))
	favorites.On("Remove", mock.Anything, "u1", "m1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/favorites/m1", nil)
	req.SetPathValue("medicationId", "m1")
	req = req.WithContext(middleware.WithUserID(req.Context(), "u1"))
	rr := httptest.NewRecorder()
	handler.RemoveFavorite(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	favorites.AssertExpectations(t)
}

func TestFavoriteHandler_SearchHistory(t *testing.T) {
	history := new(MockHistoryService)
	handler := handlers.NewFavoriteHandler(new(MockFavoriteService), history)
	history.On("Recent", mock.Anything, "u1").Return([]*entities.SearchHistory{
		{ID: "h1", UserID: "u1", SearchQuery: "headache, fever", SymptomIDs: []string{"s1", "s2"}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/search/history", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), "u1"))
	rr := httptest.NewRecorder()
	handler.SearchHistory(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"searchQuery":"headache, fever"`)
}
