package services

import (
	"context"
	"strings"
	"time"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

const historyWriteTimeout = 5 * time.Second

// SymptomSearchRequest is the input of the resolve and rank pipeline
type SymptomSearchRequest struct {
	Symptoms []string `json:"symptoms"`
	UserID   string   `json:"userId,omitempty"`
}

// SearchService runs symptom resolution, candidate lookup and ranking
type SearchService struct {
	resolver       *SymptomResolver
	medicationRepo repositories.MedicationRepository
	ranker         *RecommendationRanker
	historyRepo    repositories.SearchHistoryRepository
}

// NewSearchService creates a new search service. historyRepo may be nil.
func NewSearchService(
	resolver *SymptomResolver,
	medicationRepo repositories.MedicationRepository,
	ranker *RecommendationRanker,
	historyRepo repositories.SearchHistoryRepository,
) *SearchService {
	return &SearchService{
		resolver:       resolver,
		medicationRepo: medicationRepo,
		ranker:         ranker,
		historyRepo:    historyRepo,
	}
}

type candidateSet struct {
	resolution  *Resolution
	medications []*entities.MedicationWithLinks
}

func (s *SearchService) candidates(ctx context.Context, symptoms []string) (*candidateSet, error) {
	res, err := s.resolver.Resolve(ctx, symptoms)
	if err != nil {
		return nil, err
	}
	meds, err := s.medicationRepo.GetBySymptomIDs(ctx, res.MatchedIDs())
	if err != nil {
		return nil, err
	}
	return &candidateSet{resolution: res, medications: meds}, nil
}

func (c *candidateSet) result(ranked []*entities.RankedMedication) *entities.SymptomSearchResult {
	return &entities.SymptomSearchResult{
		Symptoms:          c.resolution.Symptoms(),
		Medications:       ranked,
		SearchedSymptoms:  c.resolution.Inputs,
		SymptomCount:      len(c.resolution.Inputs),
		AIRecommendations: []entities.RecommendationScore{},
	}
}

// SearchSymptoms resolves the symptoms, loads candidate medications and ranks
// them. A ranking failure degrades to unranked medications with AIError set.
func (s *SearchService) SearchSymptoms(ctx context.Context, req SymptomSearchRequest) (*entities.SymptomSearchResult, error) {
	ctx, span := observability.StartSpan(ctx, "SearchService.SearchSymptoms")
	defer span.End()

	set, err := s.candidates(ctx, req.Symptoms)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	s.recordHistory(ctx, req.UserID, set.resolution)

	rec, err := s.ranker.Rank(ctx, set.resolution.Inputs, set.resolution.Symptoms(), set.medications)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Ranking failed, returning unranked medications")
		result := set.result(MergeRecommendations(set.medications, nil, set.resolution.MatchedIDs()))
		result.AIError = apperrors.MessageOf(err)
		if result.AIError == "" {
			result.AIError = "Failed to analyze symptoms"
		}
		return result, nil
	}

	result := set.result(MergeRecommendations(set.medications, rec.RecommendedMedications, set.resolution.MatchedIDs()))
	result.AIAnalysis = rec.Analysis()
	result.AIRecommendations = rec.RecommendedMedications
	return result, nil
}

// FindMedications resolves the symptoms and returns the unranked candidates
func (s *SearchService) FindMedications(ctx context.Context, req SymptomSearchRequest) (*entities.SymptomSearchResult, error) {
	set, err := s.candidates(ctx, req.Symptoms)
	if err != nil {
		return nil, err
	}
	s.recordHistory(ctx, req.UserID, set.resolution)
	return set.result(MergeRecommendations(set.medications, nil, set.resolution.MatchedIDs())), nil
}

// Analyze resolves the symptoms and returns only the model's recommendation.
// Ranking failures are returned to the caller.
func (s *SearchService) Analyze(ctx context.Context, req SymptomSearchRequest) (*entities.Recommendation, error) {
	set, err := s.candidates(ctx, req.Symptoms)
	if err != nil {
		return nil, err
	}
	return s.ranker.Rank(ctx, set.resolution.Inputs, set.resolution.Symptoms(), set.medications)
}

// recordHistory writes the search to history in the background. Failures are
// logged and never reach the caller.
func (s *SearchService) recordHistory(ctx context.Context, userID string, res *Resolution) {
	userID = strings.TrimSpace(userID)
	if s.historyRepo == nil || userID == "" {
		return
	}

	entry := &entities.SearchHistory{
		UserID:      userID,
		SearchQuery: strings.Join(res.Inputs, ", "),
		SymptomIDs:  res.MatchedIDs(),
	}
	logger := observability.LoggerFromContext(ctx)

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), historyWriteTimeout)
		defer cancel()
		if err := s.historyRepo.Add(bgCtx, entry); err != nil {
			logger.Warn().Err(err).Str("user_id", userID).Msg("Failed to save search history")
		}
	}()
}
