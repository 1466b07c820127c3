package entities

import "time"

// Favorite is a medication saved by a user
type Favorite struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"userId" db:"user_id"`
	MedicationID string    `json:"medicationId" db:"medication_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// FavoriteMedication is a favorite joined with its medication
type FavoriteMedication struct {
	Medication
	FavoritedAt time.Time `json:"favoritedAt" db:"favorited_at"`
}

// SearchHistory is one recorded symptom search
type SearchHistory struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	SearchQuery string    `json:"searchQuery" db:"search_query"`
	SymptomIDs  []string  `json:"symptomIds" db:"symptom_ids"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
