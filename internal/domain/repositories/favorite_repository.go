package repositories

import (
	"context"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
)

// FavoriteRepository defines user favorite data operations
type FavoriteRepository interface {
	// Add stores a favorite; a duplicate (user, medication) pair is a conflict
	Add(ctx context.Context, favorite *entities.Favorite) error

	// Remove deletes a favorite; a missing pair is not found
	Remove(ctx context.Context, userID, medicationID string) error

	// ListByUser returns the user's favorite medications, newest first
	ListByUser(ctx context.Context, userID string) ([]*entities.FavoriteMedication, error)
}

// SearchHistoryRepository defines search history data operations
type SearchHistoryRepository interface {
	// Add appends a history entry
	Add(ctx context.Context, entry *entities.SearchHistory) error

	// ListByUser returns the latest entries for the user, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*entities.SearchHistory, error)
}
