package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/medfinder/backend/internal/application/services"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/providers"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

const rankingJSON = `{
	"symptomAnalysis": "Likely a tension headache",
	"recommendedMedications": [
		{"medicationId": "B", "reasoning": "anti-inflammatory", "effectiveness": 4, "priority": 8},
		{"medicationId": "ghost", "reasoning": "invented", "effectiveness": 5, "priority": 10}
	],
	"warnings": ["Take with food"],
	"additionalAdvice": "Rest and hydrate"
}`

type searchFixture struct {
	symptoms *MockSymptomRepository
	meds     *MockMedicationRepository
	history  *MockSearchHistoryRepository
	provider *MockGenerativeProvider
	service  *services.SearchService
}

func newSearchFixture(maxSymptoms int) *searchFixture {
	f := &searchFixture{
		symptoms: new(MockSymptomRepository),
		meds:     new(MockMedicationRepository),
		history:  new(MockSearchHistoryRepository),
		provider: new(MockGenerativeProvider),
	}
	f.service = services.NewSearchService(
		services.NewSymptomResolver(f.symptoms, maxSymptoms),
		f.meds,
		services.NewRecommendationRanker(f.provider),
		f.history,
	)
	return f
}

func (f *searchFixture) expectCatalog() {
	f.symptoms.On("List", mock.Anything).Return(catalogFixture(), nil)
	f.meds.On("GetBySymptomIDs", mock.Anything, []string{"s-headache"}).Return([]*entities.MedicationWithLinks{
		medicationFixture("A", "Tylenol", entities.MedicationSymptomLink{MedicationID: "A", SymptomID: "s-headache", Effectiveness: 4}),
		medicationFixture("B", "Advil", entities.MedicationSymptomLink{MedicationID: "B", SymptomID: "s-headache", Effectiveness: 3}),
	}, nil)
}

func TestSearchService_SearchSymptoms(t *testing.T) {
	t.Run("ranks candidates and records history", func(t *testing.T) {
		f := newSearchFixture(10)
		f.expectCatalog()
		f.provider.On("GenerateJSON", mock.Anything, mock.Anything).Return(rankingJSON, nil)

		saved := make(chan *entities.SearchHistory, 1)
		f.history.On("Add", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { saved <- args.Get(1).(*entities.SearchHistory) }).
			Return(nil)

		result, err := f.service.SearchSymptoms(context.Background(), services.SymptomSearchRequest{
			Symptoms: []string{"headache", "glowing toes"},
			UserID:   "user-1",
		})
		require.NoError(t, err)

		require.Len(t, result.Medications, 2)
		assert.Equal(t, "B", result.Medications[0].ID)
		assert.Equal(t, 8, result.Medications[0].AIPriority)
		assert.Equal(t, "A", result.Medications[1].ID)
		assert.Equal(t, 0, result.Medications[1].AIPriority)

		require.Len(t, result.AIRecommendations, 1)
		assert.Equal(t, "B", result.AIRecommendations[0].MedicationID)
		require.NotNil(t, result.AIAnalysis)
		assert.Equal(t, "Likely a tension headache", result.AIAnalysis.SymptomAnalysis)
		assert.Empty(t, result.AIError)

		assert.Equal(t, []string{"headache", "glowing toes"}, result.SearchedSymptoms)
		assert.Equal(t, 2, result.SymptomCount)
		require.Len(t, result.Symptoms, 2)
		assert.Equal(t, entities.SymptomKindCustom, result.Symptoms[1].Kind())

		select {
		case entry := <-saved:
			assert.Equal(t, "user-1", entry.UserID)
			assert.Equal(t, "headache, glowing toes", entry.SearchQuery)
			assert.Equal(t, []string{"s-headache"}, entry.SymptomIDs)
		case <-time.After(time.Second):
			t.Fatal("search history was not written")
		}
	})

	t.Run("ranking failure degrades to unranked medications", func(t *testing.T) {
		f := newSearchFixture(10)
		f.expectCatalog()
		f.provider.On("GenerateJSON", mock.Anything, mock.Anything).
			Return("", &providers.GenerationError{Provider: "mock", Kind: providers.FailureTransient, StatusCode: 500})

		result, err := f.service.SearchSymptoms(context.Background(), services.SymptomSearchRequest{Symptoms: []string{"headache"}})
		require.NoError(t, err)

		assert.Nil(t, result.AIAnalysis)
		assert.Equal(t, "Failed to analyze symptoms", result.AIError)
		require.Len(t, result.Medications, 2)
		assert.Equal(t, "A", result.Medications[0].ID, "link effectiveness breaks the zero-priority tie")
		f.provider.AssertNumberOfCalls(t, "GenerateJSON", 1)
		f.history.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("history failure does not fail the search", func(t *testing.T) {
		f := newSearchFixture(10)
		f.expectCatalog()
		f.provider.On("GenerateJSON", mock.Anything, mock.Anything).Return(rankingJSON, nil)
		done := make(chan struct{})
		f.history.On("Add", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { close(done) }).
			Return(errors.New("insert failed"))

		result, err := f.service.SearchSymptoms(context.Background(), services.SymptomSearchRequest{Symptoms: []string{"headache"}, UserID: "u"})
		require.NoError(t, err)
		assert.Len(t, result.Medications, 2)

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("search history write was not attempted")
		}
	})

	t.Run("symptom cap is enforced before any work", func(t *testing.T) {
		f := newSearchFixture(2)

		_, err := f.service.SearchSymptoms(context.Background(), services.SymptomSearchRequest{Symptoms: []string{"a", "b", "c"}})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		f.symptoms.AssertNotCalled(t, "List", mock.Anything)
		f.provider.AssertNotCalled(t, "GenerateJSON", mock.Anything, mock.Anything)
	})

	t.Run("no catalog match is not found", func(t *testing.T) {
		f := newSearchFixture(10)
		f.symptoms.On("List", mock.Anything).Return(catalogFixture(), nil)

		_, err := f.service.SearchSymptoms(context.Background(), services.SymptomSearchRequest{Symptoms: []string{"zzz-unknown"}})
		assert.True(t, apperrors.IsNotFound(err))
		f.meds.AssertNotCalled(t, "GetBySymptomIDs", mock.Anything, mock.Anything)
	})
}

func TestSearchService_FindMedications(t *testing.T) {
	f := newSearchFixture(10)
	f.expectCatalog()

	result, err := f.service.FindMedications(context.Background(), services.SymptomSearchRequest{Symptoms: []string{"head"}})
	require.NoError(t, err)

	require.Len(t, result.Medications, 2)
	assert.Nil(t, result.AIAnalysis)
	assert.Empty(t, result.AIRecommendations)
	f.provider.AssertNotCalled(t, "GenerateJSON", mock.Anything, mock.Anything)
}

func TestSearchService_Analyze(t *testing.T) {
	t.Run("returns the filtered recommendation", func(t *testing.T) {
		f := newSearchFixture(10)
		f.expectCatalog()
		f.provider.On("GenerateJSON", mock.Anything, mock.Anything).Return(rankingJSON, nil)

		rec, err := f.service.Analyze(context.Background(), services.SymptomSearchRequest{Symptoms: []string{"headache"}})
		require.NoError(t, err)
		require.Len(t, rec.RecommendedMedications, 1)
		assert.Equal(t, "B", rec.RecommendedMedications[0].MedicationID)
	})

	t.Run("upstream failure is surfaced", func(t *testing.T) {
		f := newSearchFixture(10)
		f.expectCatalog()
		f.provider.On("GenerateJSON", mock.Anything, mock.Anything).Return("", nil)

		_, err := f.service.Analyze(context.Background(), services.SymptomSearchRequest{Symptoms: []string{"headache"}})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeExternal, apperrors.TypeOf(err))
	})
}
