package repositories

import (
	"context"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
)

// MedicationRepository defines catalog medication data operations
type MedicationRepository interface {
	// List returns all active medications
	List(ctx context.Context) ([]*entities.Medication, error)

	// GetByID returns an active medication with its symptom links
	GetByID(ctx context.Context, id string) (*entities.MedicationWithLinks, error)

	// GetBySymptomIDs returns active medications linked to any of the symptom
	// ids, ordered by link effectiveness descending. Each medication appears
	// once, at the position of its strongest link.
	GetBySymptomIDs(ctx context.Context, symptomIDs []string) ([]*entities.MedicationWithLinks, error)

	// Create inserts a medication
	Create(ctx context.Context, medication *entities.Medication) error

	// LinkSymptom inserts a medication-symptom link
	LinkSymptom(ctx context.Context, link *entities.MedicationSymptomLink) error
}
