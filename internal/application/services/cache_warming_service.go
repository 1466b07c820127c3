package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/providers"
)

// CatalogRefresher reloads one catalog family into the cache and returns how
// many entries it loaded.
type CatalogRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// CacheWarmingService keeps the catalog cache populated
type CacheWarmingService struct {
	refreshers map[string]CatalogRefresher
	cache      providers.CacheProvider
}

// NewCacheWarmingService creates a new cache warming service
func NewCacheWarmingService(refreshers map[string]CatalogRefresher, cache providers.CacheProvider) *CacheWarmingService {
	return &CacheWarmingService{
		refreshers: refreshers,
		cache:      cache,
	}
}

// WarmCache refreshes every catalog family. A failing family does not stop
// the others; the first error is returned.
func (s *CacheWarmingService) WarmCache(ctx context.Context) error {
	var firstErr error
	for name, r := range s.refreshers {
		n, err := r.Refresh(ctx)
		if err != nil {
			log.Warn().Err(err).Str("family", name).Msg("Failed to warm catalog cache")
			if firstErr == nil {
				firstErr = fmt.Errorf("warm %s: %w", name, err)
			}
			continue
		}
		log.Debug().Str("family", name).Int("entries", n).Msg("Warmed catalog cache")
	}
	return firstErr
}

// StartPeriodicWarming warms once, then again every interval until ctx ends
func (s *CacheWarmingService) StartPeriodicWarming(ctx context.Context, interval time.Duration) {
	if err := s.WarmCache(ctx); err != nil {
		log.Warn().Err(err).Msg("Initial cache warming failed")
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("Stopping cache warming service")
				return
			case <-ticker.C:
				if err := s.WarmCache(ctx); err != nil {
					log.Warn().Err(err).Msg("Periodic cache warming failed")
				}
			}
		}
	}()
	log.Info().Dur("interval", interval).Msg("Started periodic cache warming")
}

// InvalidateCache drops every cached catalog entry
func (s *CacheWarmingService) InvalidateCache(ctx context.Context) error {
	if err := s.cache.DeletePattern(ctx, "catalog:*"); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	log.Info().Msg("Catalog cache invalidated")
	return nil
}

// ListenForChanges invalidates and re-warms the catalog cache on every event
// published to the catalog channel, until ctx ends.
func (s *CacheWarmingService) ListenForChanges(ctx context.Context, bus providers.EventBus) error {
	events, err := bus.Subscribe(ctx, entities.CatalogChannel)
	if err != nil {
		return fmt.Errorf("failed to subscribe to catalog events: %w", err)
	}

	go func() {
		for event := range events {
			log.Info().
				Str("event_id", event.ID).
				Str("type", string(event.Type)).
				Str("source", event.Source).
				Msg("Catalog changed, refreshing cache")
			if err := s.InvalidateCache(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to invalidate catalog cache")
			}
			if err := s.WarmCache(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to re-warm catalog cache")
			}
		}
	}()
	return nil
}

// AnnounceChange publishes a catalog event so running instances refresh
func AnnounceChange(ctx context.Context, bus providers.EventBus, eventType entities.CatalogEventType, source string) error {
	return bus.Publish(ctx, entities.CatalogChannel, &entities.CatalogEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Source:     source,
		OccurredAt: time.Now().UTC(),
	})
}
