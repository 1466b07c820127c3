package entities

// RecommendationScore is one model-assigned score for a candidate medication
type RecommendationScore struct {
	MedicationID  string `json:"medicationId"`
	Reasoning     string `json:"reasoning"`
	Effectiveness int    `json:"effectiveness"`
	Priority      int    `json:"priority"`
}

// Recommendation is the parsed ranking response after id validation
type Recommendation struct {
	SymptomAnalysis        string                `json:"symptomAnalysis"`
	RecommendedMedications []RecommendationScore `json:"recommendedMedications"`
	Warnings               []string              `json:"warnings"`
	AdditionalAdvice       string                `json:"additionalAdvice"`
}

// AIAnalysis is the narrative part of a recommendation shown to the user
type AIAnalysis struct {
	SymptomAnalysis  string   `json:"symptomAnalysis"`
	Warnings         []string `json:"warnings"`
	AdditionalAdvice string   `json:"additionalAdvice"`
}

// Analysis returns the narrative part of r
func (r *Recommendation) Analysis() *AIAnalysis {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &AIAnalysis{
		SymptomAnalysis:  r.SymptomAnalysis,
		Warnings:         warnings,
		AdditionalAdvice: r.AdditionalAdvice,
	}
}

// SymptomSearchResult is the resolve and rank pipeline output
type SymptomSearchResult struct {
	Symptoms          []ResolvedSymptom     `json:"symptoms"`
	Medications       []*RankedMedication   `json:"medications"`
	SearchedSymptoms  []string              `json:"searchedSymptoms"`
	SymptomCount      int                   `json:"symptomCount"`
	AIAnalysis        *AIAnalysis           `json:"aiAnalysis"`
	AIRecommendations []RecommendationScore `json:"aiRecommendations"`
	AIError           string                `json:"aiError,omitempty"`
}
