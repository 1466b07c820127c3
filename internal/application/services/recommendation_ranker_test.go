package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/medfinder/backend/internal/application/services"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/providers"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

func rankInputs() ([]entities.ResolvedSymptom, []*entities.MedicationWithLinks) {
	symptoms := []entities.ResolvedSymptom{
		&entities.Symptom{ID: "s-headache", Name: "Headache", Description: "Pain in the head"},
		entities.NewCustomSymptom("tingly ears", fixedNow),
	}
	meds := []*entities.MedicationWithLinks{
		medicationFixture("A", "Tylenol"),
		medicationFixture("B", "Advil"),
		medicationFixture("C", "Excedrin"),
	}
	return symptoms, meds
}

func TestRecommendationRanker_Rank(t *testing.T) {
	t.Run("drops unknown ids and clamps scores", func(t *testing.T) {
		provider := new(MockGenerativeProvider)
		provider.On("GenerateJSON", mock.Anything, mock.MatchedBy(func(req providers.GenerationRequest) bool {
			return req.Operation == "rank" &&
				req.SchemaName == "medication_recommendation" &&
				req.User == "Analyze these symptoms and recommend appropriate medications: headache, tingly ears"
		})).Return(`{
			"symptomAnalysis": "Tension headache likely",
			"recommendedMedications": [
				{"medicationId": "C", "reasoning": "combo", "effectiveness": 4.6, "priority": 15},
				{"medicationId": "X", "reasoning": "made up", "effectiveness": 5, "priority": 10},
				{"medicationId": "A", "reasoning": "gentle", "effectiveness": 0, "priority": 3}
			],
			"warnings": ["Do not exceed the daily dose"],
			"additionalAdvice": "See a doctor if it persists"
		}`, nil)

		symptoms, meds := rankInputs()
		ranker := services.NewRecommendationRanker(provider)

		rec, err := ranker.Rank(context.Background(), []string{"headache", "tingly ears"}, symptoms, meds)
		require.NoError(t, err)

		require.Len(t, rec.RecommendedMedications, 2)
		assert.Equal(t, entities.RecommendationScore{MedicationID: "C", Reasoning: "combo", Effectiveness: 5, Priority: 10}, rec.RecommendedMedications[0])
		assert.Equal(t, entities.RecommendationScore{MedicationID: "A", Reasoning: "gentle", Effectiveness: 1, Priority: 3}, rec.RecommendedMedications[1])
		assert.Equal(t, "Tension headache likely", rec.SymptomAnalysis)
		assert.Equal(t, []string{"Do not exceed the daily dose"}, rec.Warnings)
		provider.AssertExpectations(t)
	})

	t.Run("zero priority is kept so unscored candidates are not outranked", func(t *testing.T) {
		provider := new(MockGenerativeProvider)
		provider.On("GenerateJSON", mock.Anything, mock.Anything).Return(`{
			"symptomAnalysis": "",
			"recommendedMedications": [
				{"medicationId": "A", "reasoning": "not suitable", "effectiveness": 1, "priority": 0},
				{"medicationId": "C", "reasoning": "negative", "effectiveness": 2, "priority": -4}
			],
			"warnings": [],
			"additionalAdvice": ""
		}`, nil)

		symptoms, _ := rankInputs()
		meds := []*entities.MedicationWithLinks{
			medicationFixture("A", "Tylenol", entities.MedicationSymptomLink{SymptomID: "s-headache", Effectiveness: 2}),
			medicationFixture("B", "Advil", entities.MedicationSymptomLink{SymptomID: "s-headache", Effectiveness: 5}),
			medicationFixture("C", "Excedrin", entities.MedicationSymptomLink{SymptomID: "s-headache", Effectiveness: 1}),
		}

		rec, err := services.NewRecommendationRanker(provider).Rank(context.Background(), []string{"headache"}, symptoms, meds)
		require.NoError(t, err)
		require.Len(t, rec.RecommendedMedications, 2)
		assert.Equal(t, 0, rec.RecommendedMedications[0].Priority)
		assert.Equal(t, 0, rec.RecommendedMedications[1].Priority)

		ranked := services.MergeRecommendations(meds, rec.RecommendedMedications, []string{"s-headache"})
		order := make([]string, len(ranked))
		for i, r := range ranked {
			order[i] = r.ID
		}
		assert.Equal(t, []string{"B", "A", "C"}, order)
	})

	t.Run("system prompt lists the allowed catalog", func(t *testing.T) {
		provider := new(MockGenerativeProvider)
		var captured providers.GenerationRequest
		provider.On("GenerateJSON", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { captured = args.Get(1).(providers.GenerationRequest) }).
			Return(`{"symptomAnalysis":"","recommendedMedications":[],"warnings":[],"additionalAdvice":""}`, nil)

		symptoms, meds := rankInputs()
		_, err := services.NewRecommendationRanker(provider).Rank(context.Background(), []string{"headache"}, symptoms, meds)
		require.NoError(t, err)

		assert.Contains(t, captured.System, "Headache: Pain in the head")
		assert.Contains(t, captured.System, "tingly ears: User-reported symptom: tingly ears")
		assert.Contains(t, captured.System, "id=B Advil (generic Advil)")
		assert.Contains(t, captured.System, "Only recommend medications from the provided list")
		assert.Equal(t, false, captured.Schema["additionalProperties"])
	})

	failures := []struct {
		name string
		text string
		err  error
	}{
		{"empty text", "  ", nil},
		{"malformed json", `{"symptomAnalysis": `, nil},
		{"provider error", "", &providers.GenerationError{Provider: "mock", Kind: providers.FailureTransient, StatusCode: 503}},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockGenerativeProvider)
			provider.On("GenerateJSON", mock.Anything, mock.Anything).Return(tt.text, tt.err).Once()

			symptoms, meds := rankInputs()
			_, err := services.NewRecommendationRanker(provider).Rank(context.Background(), []string{"headache"}, symptoms, meds)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrorTypeExternal, apperrors.TypeOf(err))
			assert.Equal(t, "Failed to analyze symptoms", apperrors.MessageOf(err))
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
			}
			provider.AssertNumberOfCalls(t, "GenerateJSON", 1)
		})
	}
}

func TestMergeRecommendations(t *testing.T) {
	ids := func(ranked []*entities.RankedMedication) []string {
		out := make([]string, len(ranked))
		for i, r := range ranked {
			out[i] = r.ID
		}
		return out
	}

	t.Run("orders by priority with unscored last", func(t *testing.T) {
		_, meds := rankInputs()
		ranked := services.MergeRecommendations(meds, []entities.RecommendationScore{
			{MedicationID: "A", Priority: 3, Effectiveness: 2, Reasoning: "ok"},
			{MedicationID: "C", Priority: 9, Effectiveness: 5, Reasoning: "best"},
		}, nil)

		assert.Equal(t, []string{"C", "A", "B"}, ids(ranked))
		assert.Equal(t, 9, ranked[0].AIPriority)
		assert.Equal(t, "best", ranked[0].AIReasoning)
		assert.Equal(t, 0, ranked[2].AIPriority)
		assert.Equal(t, 0, ranked[2].AIEffectiveness)
		assert.Equal(t, "", ranked[2].AIReasoning)
	})

	t.Run("output is a subset of the candidates", func(t *testing.T) {
		_, meds := rankInputs()
		ranked := services.MergeRecommendations(meds, []entities.RecommendationScore{{MedicationID: "X", Priority: 10}}, nil)
		assert.ElementsMatch(t, []string{"A", "B", "C"}, ids(ranked))
	})

	t.Run("equal priority breaks on link effectiveness then id", func(t *testing.T) {
		meds := []*entities.MedicationWithLinks{
			medicationFixture("m3", "Three", entities.MedicationSymptomLink{SymptomID: "s1", Effectiveness: 3}),
			medicationFixture("m2", "Two", entities.MedicationSymptomLink{SymptomID: "s1", Effectiveness: 5}),
			medicationFixture("m1", "One", entities.MedicationSymptomLink{SymptomID: "s1", Effectiveness: 3}),
			medicationFixture("m0", "Zero", entities.MedicationSymptomLink{SymptomID: "other", Effectiveness: 5}),
		}
		ranked := services.MergeRecommendations(meds, nil, []string{"s1"})
		assert.Equal(t, []string{"m2", "m1", "m3", "m0"}, ids(ranked))
	})
}
