package services

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strings"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/providers"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

// RecommendationRanker asks the generative model to score candidate
// medications. There is no retry on this path.
type RecommendationRanker struct {
	provider providers.GenerativeProvider
}

// NewRecommendationRanker creates a new ranker
func NewRecommendationRanker(provider providers.GenerativeProvider) *RecommendationRanker {
	return &RecommendationRanker{provider: provider}
}

type wireScore struct {
	MedicationID  string  `json:"medicationId"`
	Reasoning     string  `json:"reasoning"`
	Effectiveness float64 `json:"effectiveness"`
	Priority      float64 `json:"priority"`
}

type wireRecommendation struct {
	SymptomAnalysis        string      `json:"symptomAnalysis"`
	RecommendedMedications []wireScore `json:"recommendedMedications"`
	Warnings               []string    `json:"warnings"`
	AdditionalAdvice       string      `json:"additionalAdvice"`
}

// Rank returns the model's recommendation restricted to the candidate ids
func (r *RecommendationRanker) Rank(ctx context.Context, inputs []string, symptoms []entities.ResolvedSymptom, candidates []*entities.MedicationWithLinks) (*entities.Recommendation, error) {
	ctx, span := observability.StartSpan(ctx, "RecommendationRanker.Rank")
	defer span.End()

	text, err := r.provider.GenerateJSON(ctx, providers.GenerationRequest{
		Operation:  "rank",
		System:     rankingSystemPrompt(symptoms, candidates),
		User:       rankingUserPrompt(inputs),
		SchemaName: "medication_recommendation",
		Schema:     rankingSchema(),
	})
	if err != nil {
		observability.RecordError(span, err)
		return nil, apperrors.NewExternalError("Failed to analyze symptoms", err)
	}

	rec, err := parseRecommendation(text)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	allowed := make(map[string]struct{}, len(candidates))
	for _, m := range candidates {
		allowed[m.ID] = struct{}{}
	}
	kept, dropped := filterScores(rec.RecommendedMedications, allowed)
	if dropped > 0 {
		observability.LoggerFromContext(ctx).Warn().
			Int("dropped", dropped).
			Int("candidates", len(candidates)).
			Str("provider", r.provider.Name()).
			Msg("Discarded recommendations for unknown medication ids")
	}
	rec.RecommendedMedications = kept
	return rec, nil
}

func parseRecommendation(text string) (*entities.Recommendation, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewExternalError("Failed to analyze symptoms", errEmptyModelResponse)
	}

	var wire wireRecommendation
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, apperrors.NewExternalError("Failed to analyze symptoms", err)
	}

	rec := &entities.Recommendation{
		SymptomAnalysis:        wire.SymptomAnalysis,
		RecommendedMedications: make([]entities.RecommendationScore, 0, len(wire.RecommendedMedications)),
		Warnings:               wire.Warnings,
		AdditionalAdvice:       wire.AdditionalAdvice,
	}
	if rec.Warnings == nil {
		rec.Warnings = []string{}
	}
	for _, s := range wire.RecommendedMedications {
		rec.RecommendedMedications = append(rec.RecommendedMedications, entities.RecommendationScore{
			MedicationID:  s.MedicationID,
			Reasoning:     s.Reasoning,
			Effectiveness: clampScore(s.Effectiveness, 1, 5),
			Priority:      clampScore(s.Priority, 0, 10),
		})
	}
	return rec, nil
}

// filterScores keeps scores whose id is in allowed. The first score wins when
// the model repeats an id.
func filterScores(scores []entities.RecommendationScore, allowed map[string]struct{}) ([]entities.RecommendationScore, int) {
	kept := make([]entities.RecommendationScore, 0, len(scores))
	seen := make(map[string]struct{}, len(scores))
	dropped := 0
	for _, s := range scores {
		if _, ok := allowed[s.MedicationID]; !ok {
			dropped++
			continue
		}
		if _, dup := seen[s.MedicationID]; dup {
			continue
		}
		seen[s.MedicationID] = struct{}{}
		kept = append(kept, s)
	}
	return kept, dropped
}

func clampScore(v float64, lo, hi int) int {
	if math.IsNaN(v) {
		return lo
	}
	n := int(math.Round(v))
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// MergeRecommendations attaches scores to every candidate and orders them by
// priority, then by best catalog link effectiveness among matchedIDs, then by
// id. Candidates without a score get zero values.
func MergeRecommendations(candidates []*entities.MedicationWithLinks, scores []entities.RecommendationScore, matchedIDs []string) []*entities.RankedMedication {
	byID := make(map[string]entities.RecommendationScore, len(scores))
	for _, s := range scores {
		if _, ok := byID[s.MedicationID]; !ok {
			byID[s.MedicationID] = s
		}
	}
	matched := make(map[string]struct{}, len(matchedIDs))
	for _, id := range matchedIDs {
		matched[id] = struct{}{}
	}

	ranked := make([]*entities.RankedMedication, 0, len(candidates))
	linkScore := make(map[string]int, len(candidates))
	for _, m := range candidates {
		s := byID[m.ID]
		ranked = append(ranked, &entities.RankedMedication{
			MedicationWithLinks: *m,
			AIPriority:          s.Priority,
			AIEffectiveness:     s.Effectiveness,
			AIReasoning:         s.Reasoning,
		})
		linkScore[m.ID] = m.BestLinkEffectiveness(matched)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.AIPriority != b.AIPriority {
			return a.AIPriority > b.AIPriority
		}
		if linkScore[a.ID] != linkScore[b.ID] {
			return linkScore[a.ID] > linkScore[b.ID]
		}
		return a.ID < b.ID
	})
	return ranked
}
