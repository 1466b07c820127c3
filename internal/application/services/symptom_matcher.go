package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/pkg/config"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

const (
	scoreExact     = 1000
	scorePrefix    = 800
	scoreWord      = 600
	scoreSubstring = 400
	scoreFullRun   = 100

	descriptionWeight = 0.5
	synonymWeight     = 0.7
)

// FuzzyScore scores how well query matches text. Higher is better; 0 means
// no match.
func FuzzyScore(query, text string) float64 {
	if query == "" {
		return 0
	}
	q := strings.ToLower(query)
	t := strings.ToLower(text)

	switch {
	case t == q:
		return scoreExact
	case strings.HasPrefix(t, q):
		return scorePrefix
	case strings.Contains(t, " "+q+" ") || strings.Contains(t, " "+q):
		return scoreWord
	case strings.Contains(t, q):
		return scoreSubstring
	}

	qr := []rune(q)
	score, matched, run := 0, 0, 0
	for _, c := range t {
		if matched == len(qr) {
			break
		}
		if c == qr[matched] {
			matched++
			run++
			score += run * 2
		} else {
			run = 0
		}
	}
	if matched == len(qr) {
		score += scoreFullRun
	}
	return float64(score)
}

// SymptomMatcher produces interactive symptom shortlists from the catalog.
// It holds no mutable state and is safe for concurrent use.
type SymptomMatcher struct {
	synonyms    *SynonymTable
	limit       int
	browseLimit int
	threshold   float64
	maxSelected int
}

// NewSymptomMatcher creates a matcher using the given synonym table
func NewSymptomMatcher(synonyms *SynonymTable, cfg config.SearchConfig) *SymptomMatcher {
	return &SymptomMatcher{
		synonyms:    synonyms,
		limit:       cfg.SuggestLimit,
		browseLimit: cfg.BrowseLimit,
		threshold:   cfg.ScoreThreshold,
		maxSelected: cfg.MaxSymptoms,
	}
}

// Score returns the best of the name score, the weighted description score and
// the weighted best synonym score.
func (m *SymptomMatcher) Score(query string, s *entities.Symptom) float64 {
	best := FuzzyScore(query, s.Name)
	if s.Description != "" {
		best = max(best, FuzzyScore(query, s.Description)*descriptionWeight)
	}
	for _, syn := range m.synonyms.Lookup(s.Name) {
		best = max(best, FuzzyScore(query, syn)*synonymWeight)
	}
	return best
}

// Match returns up to the suggest limit of catalog symptoms scoring above the
// threshold, best first. An empty query returns the first browse-limit
// symptoms. Symptoms named in excluded are never returned.
func (m *SymptomMatcher) Match(query string, catalog []*entities.Symptom, excluded []string) []*entities.Symptom {
	skip := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		skip[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	isExcluded := func(s *entities.Symptom) bool {
		_, ok := skip[strings.ToLower(s.Name)]
		return ok
	}

	results := []*entities.Symptom{}
	if strings.TrimSpace(query) == "" {
		for _, s := range catalog {
			if len(results) == m.browseLimit {
				break
			}
			if !isExcluded(s) {
				results = append(results, s)
			}
		}
		return results
	}

	type scored struct {
		symptom *entities.Symptom
		score   float64
	}
	var candidates []scored
	for _, s := range catalog {
		if isExcluded(s) {
			continue
		}
		if score := m.Score(query, s); score > m.threshold {
			candidates = append(candidates, scored{s, score})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	for i := 0; i < len(candidates) && i < m.limit; i++ {
		results = append(results, candidates[i].symptom)
	}
	return results
}

// MaxSelected returns the selection cap
func (m *SymptomMatcher) MaxSelected() int {
	return m.maxSelected
}

// AddToSelection appends name to selected. Adding beyond the cap is rejected
// and duplicates are ignored.
func (m *SymptomMatcher) AddToSelection(selected []string, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("symptom name is required")
	}
	for _, s := range selected {
		if strings.EqualFold(s, name) {
			return append([]string(nil), selected...), nil
		}
	}
	if len(selected) >= m.maxSelected {
		return nil, apperrors.NewValidationError(fmt.Sprintf("You can select up to %d symptoms", m.maxSelected))
	}
	return append(append([]string(nil), selected...), name), nil
}
