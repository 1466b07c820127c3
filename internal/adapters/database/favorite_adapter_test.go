package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

func TestFavoriteAdapter_Add(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewFavoriteAdapter(client)

	mock.ExpectExec(`INSERT INTO user_favorites`).
		WithArgs(sqlmock.AnyArg(), "u1", "m1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	fav := &entities.Favorite{UserID: "u1", MedicationID: "m1"}
	require.NoError(t, adapter.Add(context.Background(), fav))
	assert.NotEmpty(t, fav.ID)
	assert.False(t, fav.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteAdapter_Add_Duplicate(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewFavoriteAdapter(client)

	mock.ExpectExec(`INSERT INTO user_favorites`).WillReturnError(&pq.Error{Code: "23505"})

	err := adapter.Add(context.Background(), &entities.Favorite{UserID: "u1", MedicationID: "m1"})
	assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.TypeOf(err))
}

func TestFavoriteAdapter_Add_UnknownMedication(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewFavoriteAdapter(client)

	mock.ExpectExec(`INSERT INTO user_favorites`).WillReturnError(&pq.Error{Code: "23503"})

	err := adapter.Add(context.Background(), &entities.Favorite{UserID: "u1", MedicationID: "nope"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFavoriteAdapter_Remove_NotFound(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewFavoriteAdapter(client)

	mock.ExpectExec(`DELETE FROM user_favorites WHERE user_id = \$1 AND medication_id = \$2`).
		WithArgs("u1", "m1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := adapter.Remove(context.Background(), "u1", "m1")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFavoriteAdapter_ListByUser(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewFavoriteAdapter(client)

	cols := append(medicationRowColumns(), "favorited_at")
	vals := append(medicationRowValues("m1", "Tylenol"), fixedTime)
	vals[10] = ""
	mock.ExpectQuery(`SELECT m.id, m.brand_name`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(toDriverValues(vals)...))

	favorites, err := adapter.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Tylenol", favorites[0].BrandName)
	assert.Equal(t, fixedTime, favorites[0].FavoritedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
