package database

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/providers"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/observability"
)

// Cache TTLs (in seconds)
const (
	symptomListTTL        = 600
	medicationByIDTTL     = 300
	medicationListTTL     = 300
	medicationsBySymptoms = 180

	cacheWriteTimeout = 2 * time.Second
)

// Cache keys
const (
	symptomsAllKey       = "catalog:symptoms:all"
	symptomsCommonKey    = "catalog:symptoms:common"
	symptomsPattern      = "catalog:symptoms:*"
	medicationsListKey   = "catalog:medications:list"
	medicationsPattern   = "catalog:medications:*"
	medicationKeyPrefix  = "catalog:medications:id:"
	medicationsBySymptom = "catalog:medications:by-symptoms:"
)

func medicationCacheKey(id string) string {
	return medicationKeyPrefix + id
}

func medicationsBySymptomKey(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return medicationsBySymptom + strings.Join(sorted, ",")
}

// cachedRead returns the decoded cached value for key, or calls load and
// stores its result in the background. Cache failures fall through to load.
func cachedRead[T any](ctx context.Context, cache providers.CacheProvider, metrics *observability.Metrics, family, key string, ttl int, load func() (T, error)) (T, error) {
	if cached, err := cache.Get(ctx, key); err == nil {
		var value T
		if err := json.Unmarshal(cached, &value); err == nil {
			observability.RecordCacheHit(ctx, metrics, family)
			return value, nil
		}
		log.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache entry")
	}
	observability.RecordCacheMiss(ctx, metrics, family)

	start := time.Now()
	value, err := load()
	observability.RecordDBMetric(ctx, metrics, family, time.Since(start))
	if err != nil {
		return value, err
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
		defer cancel()
		data, err := json.Marshal(value)
		if err != nil {
			return
		}
		if err := cache.Set(bgCtx, key, data, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to write cache entry")
		}
	}()

	return value, nil
}

func invalidate(cache providers.CacheProvider, pattern string) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
		defer cancel()
		if err := cache.DeletePattern(bgCtx, pattern); err != nil {
			log.Warn().Err(err).Str("pattern", pattern).Msg("Failed to invalidate cache")
		}
	}()
}

// CachedSymptomAdapter wraps a SymptomRepository with caching
type CachedSymptomAdapter struct {
	adapter repositories.SymptomRepository
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCachedSymptomAdapter creates a new cached symptom adapter. metrics may be nil.
func NewCachedSymptomAdapter(adapter repositories.SymptomRepository, cache providers.CacheProvider, metrics *observability.Metrics) *CachedSymptomAdapter {
	return &CachedSymptomAdapter{adapter: adapter, cache: cache, metrics: metrics}
}

// List returns the symptom catalog
func (a *CachedSymptomAdapter) List(ctx context.Context) ([]*entities.Symptom, error) {
	return cachedRead(ctx, a.cache, a.metrics, "catalog:symptoms", symptomsAllKey, symptomListTTL, func() ([]*entities.Symptom, error) {
		return a.adapter.List(ctx)
	})
}

// ListCommon returns the common symptoms
func (a *CachedSymptomAdapter) ListCommon(ctx context.Context) ([]*entities.Symptom, error) {
	return cachedRead(ctx, a.cache, a.metrics, "catalog:symptoms", symptomsCommonKey, symptomListTTL, func() ([]*entities.Symptom, error) {
		return a.adapter.ListCommon(ctx)
	})
}

// GetByName is not cached
func (a *CachedSymptomAdapter) GetByName(ctx context.Context, name string) (*entities.Symptom, error) {
	return a.adapter.GetByName(ctx, name)
}

// Create inserts a symptom and drops cached symptom lists
func (a *CachedSymptomAdapter) Create(ctx context.Context, symptom *entities.Symptom) error {
	if err := a.adapter.Create(ctx, symptom); err != nil {
		return err
	}
	invalidate(a.cache, symptomsPattern)
	return nil
}

// Refresh reloads the symptom lists from storage into the cache
func (a *CachedSymptomAdapter) Refresh(ctx context.Context) (int, error) {
	all, err := a.adapter.List(ctx)
	if err != nil {
		return 0, err
	}
	common, err := a.adapter.ListCommon(ctx)
	if err != nil {
		return 0, err
	}

	for key, value := range map[string][]*entities.Symptom{symptomsAllKey: all, symptomsCommonKey: common} {
		data, err := json.Marshal(value)
		if err != nil {
			return 0, err
		}
		if err := a.cache.Set(ctx, key, data, symptomListTTL); err != nil {
			return 0, err
		}
	}
	return len(all), nil
}

// CachedMedicationAdapter wraps a MedicationRepository with caching
type CachedMedicationAdapter struct {
	adapter repositories.MedicationRepository
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCachedMedicationAdapter creates a new cached medication adapter. metrics may be nil.
func NewCachedMedicationAdapter(adapter repositories.MedicationRepository, cache providers.CacheProvider, metrics *observability.Metrics) *CachedMedicationAdapter {
	return &CachedMedicationAdapter{adapter: adapter, cache: cache, metrics: metrics}
}

// List returns active medications
func (a *CachedMedicationAdapter) List(ctx context.Context) ([]*entities.Medication, error) {
	return cachedRead(ctx, a.cache, a.metrics, "catalog:medications", medicationsListKey, medicationListTTL, func() ([]*entities.Medication, error) {
		return a.adapter.List(ctx)
	})
}

// GetByID returns a medication with its links
func (a *CachedMedicationAdapter) GetByID(ctx context.Context, id string) (*entities.MedicationWithLinks, error) {
	return cachedRead(ctx, a.cache, a.metrics, "catalog:medication", medicationCacheKey(id), medicationByIDTTL, func() (*entities.MedicationWithLinks, error) {
		return a.adapter.GetByID(ctx, id)
	})
}

// GetBySymptomIDs returns candidate medications for the symptom ids
func (a *CachedMedicationAdapter) GetBySymptomIDs(ctx context.Context, symptomIDs []string) ([]*entities.MedicationWithLinks, error) {
	if len(symptomIDs) == 0 {
		return []*entities.MedicationWithLinks{}, nil
	}
	return cachedRead(ctx, a.cache, a.metrics, "catalog:medications-by-symptoms", medicationsBySymptomKey(symptomIDs), medicationsBySymptoms, func() ([]*entities.MedicationWithLinks, error) {
		return a.adapter.GetBySymptomIDs(ctx, symptomIDs)
	})
}

// Create inserts a medication and drops cached medication entries
func (a *CachedMedicationAdapter) Create(ctx context.Context, med *entities.Medication) error {
	if err := a.adapter.Create(ctx, med); err != nil {
		return err
	}
	invalidate(a.cache, medicationsPattern)
	return nil
}

// LinkSymptom inserts a link and drops cached medication entries
func (a *CachedMedicationAdapter) LinkSymptom(ctx context.Context, link *entities.MedicationSymptomLink) error {
	if err := a.adapter.LinkSymptom(ctx, link); err != nil {
		return err
	}
	invalidate(a.cache, medicationsPattern)
	return nil
}

// Refresh reloads the active medication list from storage into the cache
func (a *CachedMedicationAdapter) Refresh(ctx context.Context) (int, error) {
	meds, err := a.adapter.List(ctx)
	if err != nil {
		return 0, err
	}
	data, err := json.Marshal(meds)
	if err != nil {
		return 0, err
	}
	if err := a.cache.Set(ctx, medicationsListKey, data, medicationListTTL); err != nil {
		return 0, err
	}
	return len(meds), nil
}

var (
	_ repositories.SymptomRepository    = (*CachedSymptomAdapter)(nil)
	_ repositories.MedicationRepository = (*CachedMedicationAdapter)(nil)
)
