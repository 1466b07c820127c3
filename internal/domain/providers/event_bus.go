package providers

import (
	"context"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
)

// EventBus defines the interface for catalog change notifications
type EventBus interface {
	// Publish sends an event to every subscriber of channel
	Publish(ctx context.Context, channel string, event *entities.CatalogEvent) error

	// Subscribe returns a channel of events; it is closed when ctx ends
	Subscribe(ctx context.Context, channel string) (<-chan *entities.CatalogEvent, error)

	// Close stops all subscriptions
	Close() error
}
