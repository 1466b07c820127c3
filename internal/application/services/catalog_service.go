package services

import (
	"context"
	"strings"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

// CatalogService serves read access to symptoms and medications
type CatalogService struct {
	symptomRepo    repositories.SymptomRepository
	medicationRepo repositories.MedicationRepository
	matcher        *SymptomMatcher
}

// NewCatalogService creates a new catalog service
func NewCatalogService(symptomRepo repositories.SymptomRepository, medicationRepo repositories.MedicationRepository, matcher *SymptomMatcher) *CatalogService {
	return &CatalogService{
		symptomRepo:    symptomRepo,
		medicationRepo: medicationRepo,
		matcher:        matcher,
	}
}

func (s *CatalogService) ListSymptoms(ctx context.Context) ([]*entities.Symptom, error) {
	return s.symptomRepo.List(ctx)
}

func (s *CatalogService) ListCommonSymptoms(ctx context.Context) ([]*entities.Symptom, error) {
	return s.symptomRepo.ListCommon(ctx)
}

// SuggestSymptoms returns the fuzzy shortlist for query over the current catalog
func (s *CatalogService) SuggestSymptoms(ctx context.Context, query string, excluded []string) ([]*entities.Symptom, error) {
	catalog, err := s.symptomRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.matcher.Match(query, catalog, excluded), nil
}

// AddToSelection applies the selection cap
func (s *CatalogService) AddToSelection(selected []string, name string) ([]string, error) {
	return s.matcher.AddToSelection(selected, name)
}

// MaxSelected returns how many symptoms a selection may hold
func (s *CatalogService) MaxSelected() int {
	return s.matcher.MaxSelected()
}

func (s *CatalogService) ListMedications(ctx context.Context) ([]*entities.Medication, error) {
	return s.medicationRepo.List(ctx)
}

func (s *CatalogService) GetMedication(ctx context.Context, id string) (*entities.MedicationWithLinks, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("medication id is required")
	}
	return s.medicationRepo.GetByID(ctx, id)
}
