package services_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/medfinder/backend/internal/application/services"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
)

type stubRefresher struct {
	calls int
	n     int
	err   error
}

func (s *stubRefresher) Refresh(context.Context) (int, error) {
	s.calls++
	return s.n, s.err
}

func TestCacheWarmingService_WarmCache(t *testing.T) {
	symptoms := &stubRefresher{n: 20}
	medications := &stubRefresher{err: errors.New("db down")}
	svc := services.NewCacheWarmingService(map[string]services.CatalogRefresher{
		"symptoms":    symptoms,
		"medications": medications,
	}, new(MockCacheProvider))

	err := svc.WarmCache(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warm medications")
	assert.Equal(t, 1, symptoms.calls)
	assert.Equal(t, 1, medications.calls)
}

func TestCacheWarmingService_InvalidateCache(t *testing.T) {
	cache := new(MockCacheProvider)
	cache.On("DeletePattern", mock.Anything, "catalog:*").Return(nil)

	svc := services.NewCacheWarmingService(nil, cache)
	require.NoError(t, svc.InvalidateCache(context.Background()))
	cache.AssertExpectations(t)
}

type countingRefresher struct {
	calls atomic.Int32
}

func (r *countingRefresher) Refresh(context.Context) (int, error) {
	r.calls.Add(1)
	return 1, nil
}

type chanBus struct {
	events    chan *entities.CatalogEvent
	published []*entities.CatalogEvent
	channel   string
}

func (b *chanBus) Publish(_ context.Context, channel string, event *entities.CatalogEvent) error {
	b.channel = channel
	b.published = append(b.published, event)
	return nil
}

func (b *chanBus) Subscribe(_ context.Context, channel string) (<-chan *entities.CatalogEvent, error) {
	b.channel = channel
	return b.events, nil
}

func (b *chanBus) Close() error { return nil }

func TestCacheWarmingService_ListenForChanges(t *testing.T) {
	cache := new(MockCacheProvider)
	cache.On("DeletePattern", mock.Anything, "catalog:*").Return(nil)
	refresher := &countingRefresher{}
	bus := &chanBus{events: make(chan *entities.CatalogEvent, 1)}

	svc := services.NewCacheWarmingService(map[string]services.CatalogRefresher{"symptoms": refresher}, cache)
	require.NoError(t, svc.ListenForChanges(context.Background(), bus))
	assert.Equal(t, entities.CatalogChannel, bus.channel)

	bus.events <- &entities.CatalogEvent{ID: "e1", Type: entities.CatalogEventReseeded}
	close(bus.events)

	assert.Eventually(t, func() bool { return refresher.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	cache.AssertCalled(t, "DeletePattern", mock.Anything, "catalog:*")
}

func TestAnnounceChange(t *testing.T) {
	bus := &chanBus{}
	require.NoError(t, services.AnnounceChange(context.Background(), bus, entities.CatalogEventReseeded, "seed"))

	require.Len(t, bus.published, 1)
	assert.Equal(t, entities.CatalogChannel, bus.channel)
	assert.Equal(t, entities.CatalogEventReseeded, bus.published[0].Type)
	assert.Equal(t, "seed", bus.published[0].Source)
	assert.NotEmpty(t, bus.published[0].ID)
}
