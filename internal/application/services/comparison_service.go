package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/providers"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
	"github.com/zatekoja/medfinder/backend/pkg/retry"
)

var (
	errEmptyModelResponse = errors.New("empty response from model")
	errEmptyComparison    = errors.New("comparison has no rows")
)

// ComparisonService compares two medications with the generative model and
// falls back to a comparison built from stored fields when the model fails.
type ComparisonService struct {
	medicationRepo repositories.MedicationRepository
	provider       providers.GenerativeProvider
	policy         retry.LinearPolicy
	deadline       time.Duration
}

// NewComparisonService creates a new comparison service. deadline bounds all
// model attempts together; when it passes the fallback is returned. A
// non-positive deadline leaves only the per-attempt client timeout.
func NewComparisonService(medicationRepo repositories.MedicationRepository, provider providers.GenerativeProvider, policy retry.LinearPolicy, deadline time.Duration) *ComparisonService {
	return &ComparisonService{
		medicationRepo: medicationRepo,
		provider:       provider,
		policy:         policy,
		deadline:       deadline,
	}
}

// Compare loads both medications and compares them. Model failures never
// surface as errors; only validation and lookup failures do.
func (s *ComparisonService) Compare(ctx context.Context, medication1ID, medication2ID string) (*entities.MedicationComparison, error) {
	ctx, span := observability.StartSpan(ctx, "ComparisonService.Compare")
	defer span.End()

	medication1ID = strings.TrimSpace(medication1ID)
	medication2ID = strings.TrimSpace(medication2ID)
	if medication1ID == "" || medication2ID == "" {
		return nil, apperrors.NewValidationError("Both medication IDs are required")
	}

	var m1, m2 *entities.MedicationWithLinks
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		m1, err = s.medicationRepo.GetByID(gctx, medication1ID)
		return err
	})
	g.Go(func() error {
		var err error
		m2, err = s.medicationRepo.GetByID(gctx, medication2ID)
		return err
	})
	if err := g.Wait(); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("One or both medications not found")
		}
		return nil, err
	}

	result := &entities.MedicationComparison{Medication1: m1, Medication2: m2}

	genCtx := ctx
	if s.deadline > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.deadline)
		defer cancel()
	}

	comparison, outcome := s.generate(genCtx, &m1.Medication, &m2.Medication)
	if outcome.Outcome != retry.Success {
		observability.RecordError(span, outcome.Err)
		observability.LoggerFromContext(ctx).Warn().
			Err(outcome.Err).
			Int("attempts", outcome.Attempts).
			Str("outcome", outcome.Outcome.String()).
			Msg("Medication comparison failed, using fallback")
		comparison = BuildFallbackComparison(&m1.Medication, &m2.Medication)
	} else {
		result.Generated = true
	}

	result.Comparison = comparison.Comparison
	result.Summary = comparison.Summary
	return result, nil
}

func (s *ComparisonService) generate(ctx context.Context, m1, m2 *entities.Medication) (*entities.Comparison, retry.Result) {
	req := providers.GenerationRequest{
		Operation:  "compare",
		System:     comparisonSystemPrompt,
		User:       comparisonUserPrompt(m1, m2),
		SchemaName: "medication_comparison",
		Schema:     comparisonSchema(),
	}

	var comparison *entities.Comparison
	res := retry.DoClassified(ctx, s.policy, classifyGeneration,
		func(ctx context.Context) error {
			text, err := s.provider.GenerateJSON(ctx, req)
			if err != nil {
				return err
			}
			c, err := parseComparison(text)
			if err != nil {
				return err
			}
			comparison = c
			return nil
		},
		func(attempt int, err error, delay time.Duration) {
			observability.LoggerFromContext(ctx).Info().
				Err(err).
				Int("attempt", attempt).
				Dur("retry_in", delay).
				Msg("Retrying medication comparison")
		},
	)
	return comparison, res
}

func classifyGeneration(err error) retry.Outcome {
	if providers.IsTransient(err) {
		return retry.TransientFailure
	}
	return retry.PermanentFailure
}

func parseComparison(text string) (*entities.Comparison, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errEmptyModelResponse
	}
	var c entities.Comparison
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		return nil, fmt.Errorf("invalid comparison JSON: %w", err)
	}
	if len(c.Comparison) == 0 {
		return nil, errEmptyComparison
	}
	return &c, nil
}

// BuildFallbackComparison compares two medications from their stored fields
func BuildFallbackComparison(m1, m2 *entities.Medication) *entities.Comparison {
	row := func(category, v1, v2 string) entities.ComparisonRow {
		return entities.ComparisonRow{
			Category:         category,
			Medication1Value: orPlaceholder(v1),
			Medication2Value: orPlaceholder(v2),
		}
	}
	usesOf := func(m *entities.Medication) string {
		if strings.TrimSpace(m.Uses) != "" {
			return m.Uses
		}
		return m.Description
	}

	return &entities.Comparison{
		Comparison: []entities.ComparisonRow{
			row("Category", categoryLabel(m1.Category), categoryLabel(m2.Category)),
			row("Uses", usesOf(m1), usesOf(m2)),
			row("Dosage", m1.Dosage, m2.Dosage),
			row("Side Effects", m1.SideEffects, m2.SideEffects),
			row("Precautions", m1.Precautions, m2.Precautions),
			row("Interactions", m1.Interactions, m2.Interactions),
			{Category: "Price", Medication1Value: formatPrice(m1.Price), Medication2Value: formatPrice(m2.Price)},
		},
		Summary: fmt.Sprintf(
			"%s and %s are compared here using their stored product information because an AI comparison was unavailable. Ask a pharmacist or healthcare provider which one suits your situation.",
			m1.BrandName, m2.BrandName,
		),
	}
}

func categoryLabel(c entities.MedicationCategory) string {
	switch c {
	case entities.MedicationCategoryOTC:
		return "Over-the-counter"
	case entities.MedicationCategoryPrescription:
		return "Prescription"
	default:
		return string(c)
	}
}
