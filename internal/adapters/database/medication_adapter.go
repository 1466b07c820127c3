package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

var medicationColumns = []string{
	"id", "brand_name", "generic_name", "category", "description", "uses",
	"dosage", "precautions", "interactions", "side_effects", "image_url",
	"price", "is_active", "created_at",
}

func qualified(table string, columns []string) []interface{} {
	out := make([]interface{}, len(columns))
	for i, c := range columns {
		out[i] = goqu.I(table + "." + c)
	}
	return out
}

// MedicationAdapter implements MedicationRepository
type MedicationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewMedicationAdapter creates a new medication adapter
func NewMedicationAdapter(client *postgres.Client) repositories.MedicationRepository {
	return &MedicationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns all active medications ordered by brand name
func (a *MedicationAdapter) List(ctx context.Context) ([]*entities.Medication, error) {
	query, args, err := a.db.Select(qualified("m", medicationColumns)...).
		From(goqu.T("medications").As("m")).
		Where(goqu.Ex{"m.is_active": true}).
		Order(goqu.I("m.brand_name").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list medications", err)
	}
	defer rows.Close()

	medications := []*entities.Medication{}
	for rows.Next() {
		med := &entities.Medication{}
		if err := rows.Scan(medicationDest(med)...); err != nil {
			return nil, apperrors.NewInternalError("failed to scan medication", err)
		}
		medications = append(medications, med)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate medications", err)
	}
	return medications, nil
}

// GetByID returns an active medication with its symptom links
func (a *MedicationAdapter) GetByID(ctx context.Context, id string) (*entities.MedicationWithLinks, error) {
	query, args, err := a.db.Select(qualified("m", medicationColumns)...).
		From(goqu.T("medications").As("m")).
		Where(goqu.Ex{"m.id": id, "m.is_active": true}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	med := &entities.MedicationWithLinks{Symptoms: []entities.MedicationSymptomLink{}}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(medicationDest(&med.Medication)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("medication with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get medication", err)
	}

	linkQuery, linkArgs, err := a.db.Select(
		goqu.I("ms.medication_id"), goqu.I("ms.symptom_id"), goqu.I("ms.effectiveness"),
		goqu.I("s.id"), goqu.I("s.name"), goqu.I("s.description"), goqu.I("s.icon_name"),
		goqu.I("s.is_common"), goqu.I("s.created_at"),
	).
		From(goqu.T("medication_symptoms").As("ms")).
		InnerJoin(goqu.T("symptoms").As("s"), goqu.On(goqu.I("ms.symptom_id").Eq(goqu.I("s.id")))).
		Where(goqu.Ex{"ms.medication_id": id}).
		Order(goqu.I("ms.effectiveness").Desc(), goqu.I("s.name").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, linkQuery, linkArgs...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get medication symptoms", err)
	}
	defer rows.Close()

	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan medication symptom", err)
		}
		med.Symptoms = append(med.Symptoms, link)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate medication symptoms", err)
	}
	return med, nil
}

// GetBySymptomIDs returns active medications linked to the given symptoms.
// Rows arrive ordered by link effectiveness so the first time a medication is
// seen fixes its position in the result.
func (a *MedicationAdapter) GetBySymptomIDs(ctx context.Context, symptomIDs []string) ([]*entities.MedicationWithLinks, error) {
	if len(symptomIDs) == 0 {
		return []*entities.MedicationWithLinks{}, nil
	}

	cols := qualified("m", medicationColumns)
	cols = append(cols,
		goqu.I("ms.symptom_id"), goqu.I("ms.effectiveness"),
		goqu.I("s.name"), goqu.I("s.description"), goqu.I("s.icon_name"),
		goqu.I("s.is_common"), goqu.I("s.created_at"),
	)

	query, args, err := a.db.Select(cols...).
		From(goqu.T("medications").As("m")).
		InnerJoin(goqu.T("medication_symptoms").As("ms"), goqu.On(goqu.I("m.id").Eq(goqu.I("ms.medication_id")))).
		InnerJoin(goqu.T("symptoms").As("s"), goqu.On(goqu.I("ms.symptom_id").Eq(goqu.I("s.id")))).
		Where(goqu.Ex{"m.is_active": true, "s.id": symptomIDs}).
		Order(goqu.I("ms.effectiveness").Desc(), goqu.I("m.id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get medications by symptom", err)
	}
	defer rows.Close()

	byID := make(map[string]*entities.MedicationWithLinks)
	ordered := []*entities.MedicationWithLinks{}
	for rows.Next() {
		var med entities.Medication
		link := entities.MedicationSymptomLink{Symptom: &entities.Symptom{}}

		dest := medicationDest(&med)
		dest = append(dest,
			&link.SymptomID, &link.Effectiveness,
			&link.Symptom.Name, nullString{&link.Symptom.Description}, nullString{&link.Symptom.IconName},
			&link.Symptom.IsCommon, &link.Symptom.CreatedAt,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, apperrors.NewInternalError("failed to scan medication", err)
		}
		link.MedicationID = med.ID
		link.Symptom.ID = link.SymptomID

		existing, ok := byID[med.ID]
		if !ok {
			existing = &entities.MedicationWithLinks{Medication: med, Symptoms: []entities.MedicationSymptomLink{}}
			byID[med.ID] = existing
			ordered = append(ordered, existing)
		}
		existing.Symptoms = append(existing.Symptoms, link)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate medications", err)
	}
	return ordered, nil
}

// Create inserts a medication
func (a *MedicationAdapter) Create(ctx context.Context, med *entities.Medication) error {
	if med.ID == "" {
		med.ID = uuid.NewString()
	}
	if med.CreatedAt.IsZero() {
		med.CreatedAt = time.Now().UTC()
	}

	var price sql.NullFloat64
	if med.Price != nil {
		price = sql.NullFloat64{Float64: *med.Price, Valid: true}
	}

	query, args, err := a.db.Insert("medications").Rows(goqu.Record{
		"id":           med.ID,
		"brand_name":   med.BrandName,
		"generic_name": sql.NullString{String: med.GenericName, Valid: med.GenericName != ""},
		"category":     string(med.Category),
		"description":  med.Description,
		"uses":         med.Uses,
		"dosage":       med.Dosage,
		"precautions":  med.Precautions,
		"interactions": med.Interactions,
		"side_effects": med.SideEffects,
		"image_url":    sql.NullString{String: med.ImageURL, Valid: med.ImageURL != ""},
		"price":        price,
		"is_active":    med.IsActive,
		"created_at":   med.CreatedAt,
	}).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create medication", err)
	}
	return nil
}

// LinkSymptom inserts a medication-symptom link
func (a *MedicationAdapter) LinkSymptom(ctx context.Context, link *entities.MedicationSymptomLink) error {
	if link.Effectiveness < 1 || link.Effectiveness > 5 {
		return apperrors.NewValidationError("effectiveness must be between 1 and 5")
	}

	query, args, err := a.db.Insert("medication_symptoms").Rows(goqu.Record{
		"id":            uuid.NewString(),
		"medication_id": link.MedicationID,
		"symptom_id":    link.SymptomID,
		"effectiveness": link.Effectiveness,
		"created_at":    time.Now().UTC(),
	}).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("medication or symptom not found")
		}
		return apperrors.NewInternalError("failed to link medication to symptom", err)
	}
	return nil
}

func medicationDest(med *entities.Medication) []interface{} {
	return []interface{}{
		&med.ID,
		&med.BrandName,
		nullString{&med.GenericName},
		&med.Category,
		&med.Description,
		&med.Uses,
		&med.Dosage,
		&med.Precautions,
		&med.Interactions,
		&med.SideEffects,
		nullString{&med.ImageURL},
		nullFloat{&med.Price},
		&med.IsActive,
		&med.CreatedAt,
	}
}

func scanLink(row rowScanner) (entities.MedicationSymptomLink, error) {
	link := entities.MedicationSymptomLink{Symptom: &entities.Symptom{}}
	if err := row.Scan(
		&link.MedicationID, &link.SymptomID, &link.Effectiveness,
		&link.Symptom.ID, &link.Symptom.Name,
		nullString{&link.Symptom.Description}, nullString{&link.Symptom.IconName},
		&link.Symptom.IsCommon, &link.Symptom.CreatedAt,
	); err != nil {
		return link, err
	}
	return link, nil
}
