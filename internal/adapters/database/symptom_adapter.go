package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

var symptomColumns = []interface{}{"id", "name", "description", "icon_name", "is_common", "created_at"}

// SymptomAdapter implements SymptomRepository
type SymptomAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSymptomAdapter creates a new symptom adapter
func NewSymptomAdapter(client *postgres.Client) repositories.SymptomRepository {
	return &SymptomAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns all symptoms ordered by name
func (a *SymptomAdapter) List(ctx context.Context) ([]*entities.Symptom, error) {
	query, args, err := a.db.Select(symptomColumns...).
		From("symptoms").
		Order(goqu.I("name").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}
	return a.query(ctx, query, args)
}

// ListCommon returns symptoms flagged as common
func (a *SymptomAdapter) ListCommon(ctx context.Context) ([]*entities.Symptom, error) {
	query, args, err := a.db.Select(symptomColumns...).
		From("symptoms").
		Where(goqu.Ex{"is_common": true}).
		Order(goqu.I("name").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}
	return a.query(ctx, query, args)
}

// GetByName returns the first symptom whose name contains name
func (a *SymptomAdapter) GetByName(ctx context.Context, name string) (*entities.Symptom, error) {
	query, args, err := a.db.Select(symptomColumns...).
		From("symptoms").
		Where(goqu.I("name").ILike("%" + name + "%")).
		Order(goqu.I("name").Asc()).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	symptom, err := scanSymptom(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("symptom matching %q not found", name))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get symptom", err)
	}
	return symptom, nil
}

// Create inserts a catalog symptom
func (a *SymptomAdapter) Create(ctx context.Context, symptom *entities.Symptom) error {
	if symptom.ID == "" {
		symptom.ID = uuid.NewString()
	}
	if symptom.CreatedAt.IsZero() {
		symptom.CreatedAt = time.Now().UTC()
	}

	query, args, err := a.db.Insert("symptoms").Rows(goqu.Record{
		"id":          symptom.ID,
		"name":        symptom.Name,
		"description": sql.NullString{String: symptom.Description, Valid: symptom.Description != ""},
		"icon_name":   sql.NullString{String: symptom.IconName, Valid: symptom.IconName != ""},
		"is_common":   symptom.IsCommon,
		"created_at":  symptom.CreatedAt,
	}).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("symptom %q already exists", symptom.Name))
		}
		return apperrors.NewInternalError("failed to create symptom", err)
	}
	return nil
}

func (a *SymptomAdapter) query(ctx context.Context, query string, args []interface{}) ([]*entities.Symptom, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list symptoms", err)
	}
	defer rows.Close()

	symptoms := []*entities.Symptom{}
	for rows.Next() {
		symptom, err := scanSymptom(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan symptom", err)
		}
		symptoms = append(symptoms, symptom)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate symptoms", err)
	}
	return symptoms, nil
}

func scanSymptom(row rowScanner) (*entities.Symptom, error) {
	symptom := &entities.Symptom{}
	if err := row.Scan(
		&symptom.ID,
		&symptom.Name,
		nullString{&symptom.Description},
		nullString{&symptom.IconName},
		&symptom.IsCommon,
		&symptom.CreatedAt,
	); err != nil {
		return nil, err
	}
	return symptom, nil
}
