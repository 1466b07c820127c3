package repositories

import (
	"context"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
)

// SymptomRepository defines catalog symptom data operations
type SymptomRepository interface {
	// List returns every catalog symptom ordered by name
	List(ctx context.Context) ([]*entities.Symptom, error)

	// ListCommon returns symptoms flagged as common
	ListCommon(ctx context.Context) ([]*entities.Symptom, error)

	// GetByName returns the first symptom whose name contains name, case-insensitively
	GetByName(ctx context.Context, name string) (*entities.Symptom, error)

	// Create inserts a catalog symptom
	Create(ctx context.Context, symptom *entities.Symptom) error
}
