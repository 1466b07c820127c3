package repositories

import (
	"context"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
)

// NearbyQuery describes a radius search around a point
type NearbyQuery struct {
	Latitude     float64
	Longitude    float64
	RadiusKm     float64
	MedicationID string
	Limit        int
}

// PharmacyRepository defines pharmacy data operations
type PharmacyRepository interface {
	// List returns all active pharmacies
	List(ctx context.Context) ([]*entities.Pharmacy, error)

	// FindNearby returns active pharmacies within the radius ordered by distance
	FindNearby(ctx context.Context, query NearbyQuery) ([]*entities.NearbyPharmacy, error)

	// ListStock returns stock rows for the given pharmacies
	ListStock(ctx context.Context, pharmacyIDs []string) ([]*entities.PharmacyStock, error)

	// Create inserts a pharmacy
	Create(ctx context.Context, pharmacy *entities.Pharmacy) error

	// UpsertStock inserts or updates a stock row
	UpsertStock(ctx context.Context, stock *entities.PharmacyStock) error
}

// PharmacySearchRepository defines geo search over an external index
type PharmacySearchRepository interface {
	// Search returns pharmacies within the radius ordered by distance
	Search(ctx context.Context, query NearbyQuery) ([]*entities.NearbyPharmacy, error)

	// Index upserts a pharmacy document along with the ids of medications it stocks
	Index(ctx context.Context, pharmacy *entities.Pharmacy, stockedMedicationIDs []string) error

	// Delete removes a pharmacy document
	Delete(ctx context.Context, id string) error
}
