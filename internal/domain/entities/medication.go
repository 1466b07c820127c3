package entities

import "time"

// MedicationCategory is the dispensing category of a medication
type MedicationCategory string

const (
	MedicationCategoryOTC          MedicationCategory = "otc"
	MedicationCategoryPrescription MedicationCategory = "prescription"
)

// Medication is catalog reference data
type Medication struct {
	ID           string             `json:"id" db:"id"`
	BrandName    string             `json:"brandName" db:"brand_name"`
	GenericName  string             `json:"genericName" db:"generic_name"`
	Category     MedicationCategory `json:"category" db:"category"`
	Description  string             `json:"description" db:"description"`
	Uses         string             `json:"uses" db:"uses"`
	Dosage       string             `json:"dosage" db:"dosage"`
	Precautions  string             `json:"precautions" db:"precautions"`
	Interactions string             `json:"interactions" db:"interactions"`
	SideEffects  string             `json:"sideEffects" db:"side_effects"`
	ImageURL     string             `json:"imageUrl,omitempty" db:"image_url"`
	Price        *float64           `json:"price" db:"price"`
	IsActive     bool               `json:"isActive" db:"is_active"`
	CreatedAt    time.Time          `json:"createdAt" db:"created_at"`
}

// MedicationSymptomLink is an editorial catalog edge rated 1..5
type MedicationSymptomLink struct {
	MedicationID  string   `json:"medicationId" db:"medication_id"`
	SymptomID     string   `json:"symptomId" db:"symptom_id"`
	Effectiveness int      `json:"effectiveness" db:"effectiveness"`
	Symptom       *Symptom `json:"symptom,omitempty" db:"-"`
}

// MedicationWithLinks is a medication together with its symptom links
type MedicationWithLinks struct {
	Medication
	Symptoms []MedicationSymptomLink `json:"symptoms"`
}

// BestLinkEffectiveness returns the highest link effectiveness among the given
// symptom ids, or among all links when ids is empty.
func (m *MedicationWithLinks) BestLinkEffectiveness(symptomIDs map[string]struct{}) int {
	best := 0
	for _, link := range m.Symptoms {
		if len(symptomIDs) > 0 {
			if _, ok := symptomIDs[link.SymptomID]; !ok {
				continue
			}
		}
		if link.Effectiveness > best {
			best = link.Effectiveness
		}
	}
	return best
}

// RankedMedication is a candidate medication merged with its model score
type RankedMedication struct {
	MedicationWithLinks
	AIPriority      int    `json:"aiPriority"`
	AIEffectiveness int    `json:"aiEffectiveness"`
	AIReasoning     string `json:"aiReasoning"`
}
