package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/providers"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
)

type MockSymptomRepository struct {
	mock.Mock
}

func (m *MockSymptomRepository) List(ctx context.Context) ([]*entities.Symptom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Symptom), args.Error(1)
}

func (m *MockSymptomRepository) ListCommon(ctx context.Context) ([]*entities.Symptom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Symptom), args.Error(1)
}

func (m *MockSymptomRepository) GetByName(ctx context.Context, name string) (*entities.Symptom, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Symptom), args.Error(1)
}

func (m *MockSymptomRepository) Create(ctx context.Context, symptom *entities.Symptom) error {
	return m.Called(ctx, symptom).Error(0)
}

type MockMedicationRepository struct {
	mock.Mock
}

func (m *MockMedicationRepository) List(ctx context.Context) ([]*entities.Medication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Medication), args.Error(1)
}

func (m *MockMedicationRepository) GetByID(ctx context.Context, id string) (*entities.MedicationWithLinks, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MedicationWithLinks), args.Error(1)
}

func (m *MockMedicationRepository) GetBySymptomIDs(ctx context.Context, symptomIDs []string) ([]*entities.MedicationWithLinks, error) {
	args := m.Called(ctx, symptomIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MedicationWithLinks), args.Error(1)
}

func (m *MockMedicationRepository) Create(ctx context.Context, medication *entities.Medication) error {
	return m.Called(ctx, medication).Error(0)
}

func (m *MockMedicationRepository) LinkSymptom(ctx context.Context, link *entities.MedicationSymptomLink) error {
	return m.Called(ctx, link).Error(0)
}

type MockSearchHistoryRepository struct {
	mock.Mock
}

func (m *MockSearchHistoryRepository) Add(ctx context.Context, entry *entities.SearchHistory) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockSearchHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entities.SearchHistory, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SearchHistory), args.Error(1)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, favorite *entities.Favorite) error {
	return m.Called(ctx, favorite).Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, medicationID string) error {
	return m.Called(ctx, userID, medicationID).Error(0)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*entities.FavoriteMedication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FavoriteMedication), args.Error(1)
}

type MockPharmacyRepository struct {
	mock.Mock
}

func (m *MockPharmacyRepository) List(ctx context.Context) ([]*entities.Pharmacy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Pharmacy), args.Error(1)
}

func (m *MockPharmacyRepository) FindNearby(ctx context.Context, q repositories.NearbyQuery) ([]*entities.NearbyPharmacy, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.NearbyPharmacy), args.Error(1)
}

func (m *MockPharmacyRepository) ListStock(ctx context.Context, pharmacyIDs []string) ([]*entities.PharmacyStock, error) {
	args := m.Called(ctx, pharmacyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PharmacyStock), args.Error(1)
}

func (m *MockPharmacyRepository) Create(ctx context.Context, pharmacy *entities.Pharmacy) error {
	return m.Called(ctx, pharmacy).Error(0)
}

func (m *MockPharmacyRepository) UpsertStock(ctx context.Context, stock *entities.PharmacyStock) error {
	return m.Called(ctx, stock).Error(0)
}

type MockPharmacySearchRepository struct {
	mock.Mock
}

func (m *MockPharmacySearchRepository) Search(ctx context.Context, q repositories.NearbyQuery) ([]*entities.NearbyPharmacy, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.NearbyPharmacy), args.Error(1)
}

func (m *MockPharmacySearchRepository) Index(ctx context.Context, pharmacy *entities.Pharmacy, stockedMedicationIDs []string) error {
	return m.Called(ctx, pharmacy, stockedMedicationIDs).Error(0)
}

func (m *MockPharmacySearchRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockGenerativeProvider struct {
	mock.Mock
}

func (m *MockGenerativeProvider) GenerateJSON(ctx context.Context, req providers.GenerationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockGenerativeProvider) Name() string {
	return "mock"
}

type MockCacheProvider struct {
	mock.Mock
}

func (m *MockCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheProvider) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	return m.Called(ctx, key, value, expirationSeconds).Error(0)
}

func (m *MockCacheProvider) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *MockCacheProvider) DeletePattern(ctx context.Context, pattern string) error {
	return m.Called(ctx, pattern).Error(0)
}

func (m *MockCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

var (
	_ repositories.SymptomRepository        = (*MockSymptomRepository)(nil)
	_ repositories.MedicationRepository     = (*MockMedicationRepository)(nil)
	_ repositories.SearchHistoryRepository  = (*MockSearchHistoryRepository)(nil)
	_ repositories.FavoriteRepository       = (*MockFavoriteRepository)(nil)
	_ repositories.PharmacyRepository       = (*MockPharmacyRepository)(nil)
	_ repositories.PharmacySearchRepository = (*MockPharmacySearchRepository)(nil)
	_ providers.GenerativeProvider          = (*MockGenerativeProvider)(nil)
	_ providers.CacheProvider               = (*MockCacheProvider)(nil)
)

func catalogFixture() []*entities.Symptom {
	return []*entities.Symptom{
		{ID: "s-headache", Name: "Headache", Description: "Pain in the head or neck", IsCommon: true},
		{ID: "s-fever", Name: "Fever", Description: "Elevated body temperature", IsCommon: true},
		{ID: "s-cough", Name: "Cough", Description: "Sudden expulsion of air from the lungs"},
		{ID: "s-sore-throat", Name: "Sore Throat", Description: "Pain or irritation in the throat"},
		{ID: "s-nausea", Name: "Nausea", Description: "Feeling of sickness with an urge to vomit"},
		{ID: "s-runny-nose", Name: "Runny Nose", Description: "Excess nasal discharge"},
		{ID: "s-fatigue", Name: "Fatigue", Description: "Extreme tiredness"},
		{ID: "s-heartburn", Name: "Heartburn", Description: "Burning sensation in the chest"},
		{ID: "s-rash", Name: "Rash", Description: "Red, irritated skin"},
	}
}

func medicationFixture(id, brand string, links ...entities.MedicationSymptomLink) *entities.MedicationWithLinks {
	price := 9.99
	return &entities.MedicationWithLinks{
		Medication: entities.Medication{
			ID:           id,
			BrandName:    brand,
			GenericName:  "generic " + brand,
			Category:     entities.MedicationCategoryOTC,
			Description:  brand + " description",
			Uses:         brand + " uses",
			Dosage:       brand + " dosage",
			Precautions:  brand + " precautions",
			Interactions: brand + " interactions",
			SideEffects:  brand + " side effects",
			Price:        &price,
			IsActive:     true,
		},
		Symptoms: links,
	}
}
