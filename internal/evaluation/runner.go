package evaluation

import (
	"context"
	"time"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
)

// SuggestionProvider is the autocomplete surface under evaluation.
type SuggestionProvider interface {
	SuggestSymptoms(ctx context.Context, query string, excluded []string) ([]*entities.Symptom, error)
}

// Runner runs golden queries through a SuggestionProvider.
type Runner struct {
	provider SuggestionProvider
	k        int
	now      func() time.Time
}

// NewRunner creates a runner that scores the top k suggestions. k <= 0 means 10.
func NewRunner(provider SuggestionProvider, k int) *Runner {
	if k <= 0 {
		k = 10
	}
	return &Runner{provider: provider, k: k, now: time.Now}
}

// Run evaluates every query. A failing query counts as zero recall and is
// reported in Misses; it does not abort the run.
func (r *Runner) Run(ctx context.Context, queries []GoldenQuery) *EvalSummary {
	summary := &EvalSummary{
		K:            r.k,
		ByDifficulty: make(map[Difficulty]*DifficultySummary),
	}

	for _, gq := range queries {
		if ctx.Err() != nil {
			break
		}
		summary.add(r.evaluate(ctx, gq))
	}

	summary.finalize()
	return summary
}

func (r *Runner) evaluate(ctx context.Context, gq GoldenQuery) EvalResult {
	res := EvalResult{QueryID: gq.ID, Query: gq.Query, Difficulty: gq.Difficulty}

	start := r.now()
	suggestions, err := r.provider.SuggestSymptoms(ctx, gq.Query, nil)
	res.Latency = r.now().Sub(start)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	res.Suggested = make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		res.Suggested = append(res.Suggested, s.Name)
	}
	res.RecallAtK = RecallAtK(gq.ExpectedSymptoms, res.Suggested, r.k)
	res.MRRAtK = MRRAtK(gq.ExpectedSymptoms, res.Suggested, r.k)
	return res
}

func (s *EvalSummary) add(res EvalResult) {
	s.TotalQueries++
	if res.Err != "" {
		s.Failed++
	}
	s.AvgRecallAtK += res.RecallAtK
	s.AvgMRRAtK += res.MRRAtK
	s.AvgLatency += res.Latency
	if len(res.Suggested) > 0 {
		s.QueriesWithHits++
	}
	if res.RecallAtK < 1 {
		s.Misses = append(s.Misses, res)
	}

	ds, ok := s.ByDifficulty[res.Difficulty]
	if !ok {
		ds = &DifficultySummary{}
		s.ByDifficulty[res.Difficulty] = ds
	}
	ds.Count++
	ds.AvgRecallAtK += res.RecallAtK
	ds.AvgMRRAtK += res.MRRAtK
}

func (s *EvalSummary) finalize() {
	if s.TotalQueries > 0 {
		n := float64(s.TotalQueries)
		s.AvgRecallAtK /= n
		s.AvgMRRAtK /= n
		s.AvgLatency /= time.Duration(s.TotalQueries)
	}
	for _, ds := range s.ByDifficulty {
		if ds.Count > 0 {
			n := float64(ds.Count)
			ds.AvgRecallAtK /= n
			ds.AvgMRRAtK /= n
		}
	}
}
