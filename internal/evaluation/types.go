package evaluation

import "time"

// Difficulty labels how far a golden query's wording is from catalog names.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"   // exact or prefix, e.g. "headache"
	DifficultyMedium Difficulty = "medium" // typo or partial, e.g. "hedache"
	DifficultyHard   Difficulty = "hard"   // lay synonym, e.g. "tummy ache"
)

// IsValid checks if the difficulty is one of the defined constants.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// GoldenQuery is a labeled symptom query with the catalog names it should surface.
type GoldenQuery struct {
	ID               string     `json:"id"`
	Query            string     `json:"query"`
	ExpectedSymptoms []string   `json:"expected_symptoms"`
	Difficulty       Difficulty `json:"difficulty"`
}

// EvalResult holds the evaluation outcome for a single query.
type EvalResult struct {
	QueryID    string        `json:"queryId"`
	Query      string        `json:"query"`
	Difficulty Difficulty    `json:"difficulty"`
	RecallAtK  float64       `json:"recallAtK"`
	MRRAtK     float64       `json:"mrrAtK"`
	Suggested  []string      `json:"suggested"`
	Latency    time.Duration `json:"latency"`
	Err        string        `json:"error,omitempty"`
}

// EvalSummary holds aggregate metrics across all golden queries.
type EvalSummary struct {
	K               int                               `json:"k"`
	TotalQueries    int                               `json:"totalQueries"`
	Failed          int                               `json:"failed"`
	AvgRecallAtK    float64                           `json:"avgRecallAtK"`
	AvgMRRAtK       float64                           `json:"avgMrrAtK"`
	AvgLatency      time.Duration                     `json:"avgLatency"`
	QueriesWithHits int                               `json:"queriesWithHits"`
	ByDifficulty    map[Difficulty]*DifficultySummary `json:"byDifficulty"`
	Misses          []EvalResult                      `json:"misses,omitempty"`
}

// DifficultySummary holds metrics grouped by difficulty.
type DifficultySummary struct {
	Count        int     `json:"count"`
	AvgRecallAtK float64 `json:"avgRecallAtK"`
	AvgMRRAtK    float64 `json:"avgMrrAtK"`
}
