package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

// FavoriteAdapter implements FavoriteRepository with sqlx struct scanning
type FavoriteAdapter struct {
	db *sqlx.DB
}

// NewFavoriteAdapter creates a new favorite adapter
func NewFavoriteAdapter(client *postgres.Client) repositories.FavoriteRepository {
	return &FavoriteAdapter{db: sqlx.NewDb(client.DB(), "postgres")}
}

// Add stores a favorite
func (a *FavoriteAdapter) Add(ctx context.Context, fav *entities.Favorite) error {
	if fav.ID == "" {
		fav.ID = uuid.NewString()
	}
	if fav.CreatedAt.IsZero() {
		fav.CreatedAt = time.Now().UTC()
	}

	_, err := a.db.NamedExecContext(ctx, `
		INSERT INTO user_favorites (id, user_id, medication_id, created_at)
		VALUES (:id, :user_id, :medication_id, :created_at)`, fav)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("medication is already a favorite")
		}
		if isForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("medication not found")
		}
		return apperrors.NewInternalError("failed to add favorite", err)
	}
	return nil
}

// Remove deletes a favorite
func (a *FavoriteAdapter) Remove(ctx context.Context, userID, medicationID string) error {
	result, err := a.db.ExecContext(ctx,
		`DELETE FROM user_favorites WHERE user_id = $1 AND medication_id = $2`,
		userID, medicationID)
	if err != nil {
		return apperrors.NewInternalError("failed to remove favorite", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to remove favorite", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("favorite not found")
	}
	return nil
}

// ListByUser returns the user's favorite medications, newest first
func (a *FavoriteAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.FavoriteMedication, error) {
	favorites := []*entities.FavoriteMedication{}
	err := a.db.SelectContext(ctx, &favorites, `
		SELECT m.id, m.brand_name, COALESCE(m.generic_name, '') AS generic_name, m.category,
		       m.description, m.uses, m.dosage, m.precautions, m.interactions, m.side_effects,
		       COALESCE(m.image_url, '') AS image_url, m.price, m.is_active, m.created_at,
		       f.created_at AS favorited_at
		FROM user_favorites f
		INNER JOIN medications m ON m.id = f.medication_id
		WHERE f.user_id = $1 AND m.is_active = true
		ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list favorites", err)
	}
	return favorites, nil
}
