package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/medfinder/backend/internal/api/handlers"
	"github.com/zatekoja/medfinder/backend/internal/application/services"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/providers"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
	"github.com/zatekoja/medfinder/backend/pkg/retry"
)

type staticMedications map[string]*entities.MedicationWithLinks

func (s staticMedications) List(context.Context) ([]*entities.Medication, error) { return nil, nil }

func (s staticMedications) GetByID(_ context.Context, id string) (*entities.MedicationWithLinks, error) {
	if m, ok := s[id]; ok {
		return m, nil
	}
	return nil, apperrors.NewNotFoundError("medication not found")
}

func (s staticMedications) GetBySymptomIDs(context.Context, []string) ([]*entities.MedicationWithLinks, error) {
	return nil, nil
}

func (s staticMedications) Create(context.Context, *entities.Medication) error { return nil }

func (s staticMedications) LinkSymptom(context.Context, *entities.MedicationSymptomLink) error {
	return nil
}

// stalledModel waits out each attempt and then reports a transient failure
type stalledModel struct {
	perAttempt time.Duration
}

func (m stalledModel) GenerateJSON(ctx context.Context, _ providers.GenerationRequest) (string, error) {
	select {
	case <-ctx.Done():
	case <-time.After(m.perAttempt):
	}
	return "", &providers.GenerationError{Provider: "stalled", Kind: providers.FailureTransient, StatusCode: 503}
}

func (m stalledModel) Name() string { return "stalled" }

func TestComparisonHandler_FallbackBeatsWriteDeadline(t *testing.T) {
	meds := staticMedications{
		"m1": {Medication: entities.Medication{ID: "m1", BrandName: "Tylenol", Category: entities.MedicationCategoryOTC}},
		"m2": {Medication: entities.Medication{ID: "m2", BrandName: "Advil", Category: entities.MedicationCategoryOTC}},
	}
	// Unbounded, three 100ms attempts plus 40ms and 80ms waits exceed the
	// 300ms write deadline.
	svc := services.NewComparisonService(meds, stalledModel{perAttempt: 100 * time.Millisecond},
		retry.LinearPolicy{MaxAttempts: 3, Step: 40 * time.Millisecond}, 200*time.Millisecond)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/medications/compare", handlers.NewComparisonHandler(svc).Compare)
	server := httptest.NewUnstartedServer(mux)
	server.Config.WriteTimeout = 300 * time.Millisecond
	server.Start()
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/medications/compare", "application/json",
		strings.NewReader(`{"medication1Id":"m1","medication2Id":"m2"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"aiGenerated":false`)
	assert.Contains(t, string(body), "Tylenol and Advil")
}
