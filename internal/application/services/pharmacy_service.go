package services

import (
	"context"
	"fmt"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
	"github.com/zatekoja/medfinder/backend/pkg/utils"
)

const (
	DefaultRadiusKm = 10.0
	MaxRadiusKm     = 100.0
)

// PharmacyService finds pharmacies near a point, preferring the search index
type PharmacyService struct {
	pharmacyRepo repositories.PharmacyRepository
	searchRepo   repositories.PharmacySearchRepository
}

// NewPharmacyService creates a new pharmacy service. searchRepo may be nil,
// in which case Postgres is queried directly.
func NewPharmacyService(pharmacyRepo repositories.PharmacyRepository, searchRepo repositories.PharmacySearchRepository) *PharmacyService {
	return &PharmacyService{pharmacyRepo: pharmacyRepo, searchRepo: searchRepo}
}

// FindNearby returns pharmacies within the radius, nearest first, each with
// its stock rows. A zero radius means DefaultRadiusKm.
func (s *PharmacyService) FindNearby(ctx context.Context, q repositories.NearbyQuery) ([]*entities.NearbyPharmacy, error) {
	ctx, span := observability.StartSpan(ctx, "PharmacyService.FindNearby")
	defer span.End()

	if q.RadiusKm == 0 {
		q.RadiusKm = DefaultRadiusKm
	}
	if !utils.ValidCoordinates(q.Latitude, q.Longitude) {
		return nil, apperrors.NewValidationError("Latitude must be within [-90, 90] and longitude within [-180, 180]")
	}
	if q.RadiusKm < 0 || q.RadiusKm > MaxRadiusKm {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Radius must be greater than 0 and at most %.0f km", MaxRadiusKm))
	}

	pharmacies, err := s.search(ctx, q)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}
	if err := s.attachStock(ctx, pharmacies); err != nil {
		return nil, err
	}
	return pharmacies, nil
}

func (s *PharmacyService) search(ctx context.Context, q repositories.NearbyQuery) ([]*entities.NearbyPharmacy, error) {
	if s.searchRepo != nil {
		pharmacies, err := s.searchRepo.Search(ctx, q)
		if err == nil {
			return pharmacies, nil
		}
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Pharmacy index search failed, falling back to database")
	}
	return s.pharmacyRepo.FindNearby(ctx, q)
}

func (s *PharmacyService) attachStock(ctx context.Context, pharmacies []*entities.NearbyPharmacy) error {
	if len(pharmacies) == 0 {
		return nil
	}
	ids := make([]string, len(pharmacies))
	byID := make(map[string]*entities.NearbyPharmacy, len(pharmacies))
	for i, p := range pharmacies {
		ids[i] = p.ID
		byID[p.ID] = p
		if p.Stock == nil {
			p.Stock = []entities.PharmacyStock{}
		}
	}

	stock, err := s.pharmacyRepo.ListStock(ctx, ids)
	if err != nil {
		return err
	}
	for _, st := range stock {
		if p, ok := byID[st.PharmacyID]; ok {
			p.Stock = append(p.Stock, *st)
		}
	}
	return nil
}

// Reindex pushes every active pharmacy and its stocked medication ids to the
// search index. It returns the number of indexed pharmacies.
func (s *PharmacyService) Reindex(ctx context.Context) (int, error) {
	if s.searchRepo == nil {
		return 0, apperrors.NewInternalError("pharmacy search index is not configured", nil)
	}

	pharmacies, err := s.pharmacyRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(pharmacies) == 0 {
		return 0, nil
	}

	ids := make([]string, len(pharmacies))
	for i, p := range pharmacies {
		ids[i] = p.ID
	}
	stock, err := s.pharmacyRepo.ListStock(ctx, ids)
	if err != nil {
		return 0, err
	}
	stocked := make(map[string][]string, len(pharmacies))
	for _, st := range stock {
		if st.StockLevel != entities.StockLevelOutOfStock {
			stocked[st.PharmacyID] = append(stocked[st.PharmacyID], st.MedicationID)
		}
	}

	indexed := 0
	for _, p := range pharmacies {
		if err := s.searchRepo.Index(ctx, p, stocked[p.ID]); err != nil {
			return indexed, fmt.Errorf("failed to index pharmacy %s: %w", p.ID, err)
		}
		indexed++
	}
	return indexed, nil
}
