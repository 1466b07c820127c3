package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/medfinder/backend/internal/application/services"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListSymptoms(ctx context.Context) ([]*entities.Symptom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Symptom), args.Error(1)
}

func (m *MockCatalogService) ListCommonSymptoms(ctx context.Context) ([]*entities.Symptom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Symptom), args.Error(1)
}

func (m *MockCatalogService) SuggestSymptoms(ctx context.Context, query string, excluded []string) ([]*entities.Symptom, error) {
	args := m.Called(ctx, query, excluded)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Symptom), args.Error(1)
}

func (m *MockCatalogService) AddToSelection(selected []string, name string) ([]string, error) {
	args := m.Called(selected, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) MaxSelected() int {
	return m.Called().Int(0)
}

func (m *MockCatalogService) ListMedications(ctx context.Context) ([]*entities.Medication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Medication), args.Error(1)
}

func (m *MockCatalogService) GetMedication(ctx context.Context, id string) (*entities.MedicationWithLinks, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MedicationWithLinks), args.Error(1)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) SearchSymptoms(ctx context.Context, req services.SymptomSearchRequest) (*entities.SymptomSearchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SymptomSearchResult), args.Error(1)
}

func (m *MockSearchService) FindMedications(ctx context.Context, req services.SymptomSearchRequest) (*entities.SymptomSearchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SymptomSearchResult), args.Error(1)
}

func (m *MockSearchService) Analyze(ctx context.Context, req services.SymptomSearchRequest) (*entities.Recommendation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recommendation), args.Error(1)
}

type MockComparisonService struct {
	mock.Mock
}

func (m *MockComparisonService) Compare(ctx context.Context, id1, id2 string) (*entities.MedicationComparison, error) {
	args := m.Called(ctx, id1, id2)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MedicationComparison), args.Error(1)
}

type MockPharmacyService struct {
	mock.Mock
}

func (m *MockPharmacyService) FindNearby(ctx context.Context, q repositories.NearbyQuery) ([]*entities.NearbyPharmacy, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.NearbyPharmacy), args.Error(1)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, userID, medicationID string) (*entities.Favorite, error) {
	args := m.Called(ctx, userID, medicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Favorite), args.Error(1)
}

func (m *MockFavoriteService) Remove(ctx context.Context, userID, medicationID string) error {
	return m.Called(ctx, userID, medicationID).Error(0)
}

func (m *MockFavoriteService) List(ctx context.Context, userID string) ([]*entities.FavoriteMedication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FavoriteMedication), args.Error(1)
}

type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) Recent(ctx context.Context, userID string) ([]*entities.SearchHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SearchHistory), args.Error(1)
}
