package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

// SearchHistoryAdapter implements SearchHistoryRepository
type SearchHistoryAdapter struct {
	db *sqlx.DB
}

// NewSearchHistoryAdapter creates a new search history adapter
func NewSearchHistoryAdapter(client *postgres.Client) repositories.SearchHistoryRepository {
	return &SearchHistoryAdapter{db: sqlx.NewDb(client.DB(), "postgres")}
}

type searchHistoryRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	SearchQuery string         `db:"search_query"`
	SymptomIDs  pq.StringArray `db:"symptom_ids"`
	CreatedAt   time.Time      `db:"created_at"`
}

// Add appends a history entry
func (a *SearchHistoryAdapter) Add(ctx context.Context, entry *entities.SearchHistory) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	row := searchHistoryRow{
		ID:          entry.ID,
		UserID:      entry.UserID,
		SearchQuery: entry.SearchQuery,
		SymptomIDs:  pq.StringArray(entry.SymptomIDs),
		CreatedAt:   entry.CreatedAt,
	}
	_, err := a.db.NamedExecContext(ctx, `
		INSERT INTO search_history (id, user_id, search_query, symptom_ids, created_at)
		VALUES (:id, :user_id, :search_query, :symptom_ids, :created_at)`, row)
	if err != nil {
		return apperrors.NewInternalError("failed to add search history", err)
	}
	return nil
}

// ListByUser returns the latest entries for the user
func (a *SearchHistoryAdapter) ListByUser(ctx context.Context, userID string, limit int) ([]*entities.SearchHistory, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []searchHistoryRow
	err := a.db.SelectContext(ctx, &rows, `
		SELECT id, user_id, search_query, symptom_ids, created_at
		FROM search_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list search history", err)
	}

	history := make([]*entities.SearchHistory, 0, len(rows))
	for _, r := range rows {
		ids := []string(r.SymptomIDs)
		if ids == nil {
			ids = []string{}
		}
		history = append(history, &entities.SearchHistory{
			ID:          r.ID,
			UserID:      r.UserID,
			SearchQuery: r.SearchQuery,
			SymptomIDs:  ids,
			CreatedAt:   r.CreatedAt,
		})
	}
	return history, nil
}
