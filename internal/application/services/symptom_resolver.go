package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

// Resolution is the outcome of matching free-text symptoms to the catalog
type Resolution struct {
	// Inputs are the trimmed, non-empty, case-insensitively distinct request
	// strings in request order
	Inputs  []string
	Matched []*entities.Symptom
	Custom  []*entities.CustomSymptom
}

// MatchedIDs returns the catalog ids of the matched symptoms
func (r *Resolution) MatchedIDs() []string {
	ids := make([]string, len(r.Matched))
	for i, s := range r.Matched {
		ids[i] = s.ID
	}
	return ids
}

// Symptoms returns matched catalog symptoms followed by custom symptoms
func (r *Resolution) Symptoms() []entities.ResolvedSymptom {
	out := make([]entities.ResolvedSymptom, 0, len(r.Matched)+len(r.Custom))
	for _, s := range r.Matched {
		out = append(out, s)
	}
	for _, c := range r.Custom {
		out = append(out, c)
	}
	return out
}

// SymptomResolver maps free-text symptoms onto catalog symptoms
type SymptomResolver struct {
	symptomRepo repositories.SymptomRepository
	maxSymptoms int
	now         func() time.Time
}

// NewSymptomResolver creates a new symptom resolver
func NewSymptomResolver(symptomRepo repositories.SymptomRepository, maxSymptoms int) *SymptomResolver {
	return &SymptomResolver{
		symptomRepo: symptomRepo,
		maxSymptoms: maxSymptoms,
		now:         time.Now,
	}
}

// ValidateInputs trims the inputs, drops case-insensitive repeats keeping the
// first spelling, and rejects empty or oversized lists
func (r *SymptomResolver) ValidateInputs(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, apperrors.NewValidationError("Symptoms array is required")
	}
	if len(raw) > r.maxSymptoms {
		return nil, apperrors.NewValidationError(fmt.Sprintf("At most %d symptoms can be searched at once", r.maxSymptoms))
	}

	inputs := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		inputs = append(inputs, s)
	}
	if len(inputs) == 0 {
		return nil, apperrors.NewValidationError("Symptoms array is required")
	}
	return inputs, nil
}

// Resolve matches each input against the catalog by case-insensitive
// containment in either direction. Inputs that match nothing become custom
// symptoms. It fails with NOT_FOUND when no catalog symptom matched.
func (r *SymptomResolver) Resolve(ctx context.Context, raw []string) (*Resolution, error) {
	inputs, err := r.ValidateInputs(raw)
	if err != nil {
		return nil, err
	}

	catalog, err := r.symptomRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := resolveAgainst(inputs, catalog, r.now())
	if len(res.Matched) == 0 {
		return nil, apperrors.NewNotFoundError("No matching symptoms found")
	}
	return res, nil
}

func resolveAgainst(inputs []string, catalog []*entities.Symptom, now time.Time) *Resolution {
	lowered := make([]string, len(inputs))
	for i, in := range inputs {
		lowered[i] = strings.ToLower(in)
	}

	res := &Resolution{Inputs: inputs, Matched: []*entities.Symptom{}, Custom: []*entities.CustomSymptom{}}
	inputMatched := make([]bool, len(inputs))
	for _, s := range catalog {
		name := strings.ToLower(s.Name)
		if name == "" {
			continue
		}
		hit := false
		for i, in := range lowered {
			if strings.Contains(name, in) || strings.Contains(in, name) {
				inputMatched[i] = true
				hit = true
			}
		}
		if hit {
			res.Matched = append(res.Matched, s)
		}
	}

	for i, in := range inputs {
		if !inputMatched[i] {
			res.Custom = append(res.Custom, entities.NewCustomSymptom(in, now))
		}
	}
	return res
}
