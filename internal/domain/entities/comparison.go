package entities

// ComparisonRow is one compared attribute of two medications
type ComparisonRow struct {
	Category         string `json:"category"`
	Medication1Value string `json:"medication1Value"`
	Medication2Value string `json:"medication2Value"`
}

// Comparison is an ordered set of rows plus a summary
type Comparison struct {
	Comparison []ComparisonRow `json:"comparison"`
	Summary    string          `json:"summary"`
}

// MedicationComparison is the comparison pipeline output
type MedicationComparison struct {
	Medication1 *MedicationWithLinks `json:"medication1"`
	Medication2 *MedicationWithLinks `json:"medication2"`
	Comparison  []ComparisonRow      `json:"comparison"`
	Summary     string               `json:"summary"`
	Generated   bool                 `json:"aiGenerated"`
}
