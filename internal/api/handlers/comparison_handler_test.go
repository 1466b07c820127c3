package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/medfinder/backend/internal/api/handlers"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

func TestComparisonHandler_Compare(t *testing.T) {
	t.Run("fallback comparison is a normal response", func(t *testing.T) {
		svc := new(MockComparisonService)
		handler := handlers.NewComparisonHandler(svc)
		svc.On("Compare", mock.Anything, "m1", "m2").Return(&entities.MedicationComparison{
			Comparison: []entities.ComparisonRow{{Category: "Category", Medication1Value: "Over-the-counter", Medication2Value: "Prescription"}},
			Summary:    "Tylenol and Advil",
			Generated:  false,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/medications/compare", strings.NewReader(`{"medication1Id":"m1","medication2Id":"m2"}`))
		rr := httptest.NewRecorder()
		handler.Compare(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"aiGenerated":false`)
		assert.Contains(t, rr.Body.String(), `"medication1Value":"Over-the-counter"`)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := new(MockComparisonService)
		handler := handlers.NewComparisonHandler(svc)
		svc.On("Compare", mock.Anything, "m1", "nope").
			Return(nil, apperrors.NewNotFoundError("One or both medications not found"))

		req := httptest.NewRequest(http.MethodPost, "/api/medications/compare", strings.NewReader(`{"medication1Id":"m1","medication2Id":"nope"}`))
		rr := httptest.NewRecorder()
		handler.Compare(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "One or both medications not found", decodeError(t, rr))
	})
}
