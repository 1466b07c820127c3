package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

func TestMedicationAdapter_GetBySymptomIDs_GroupsInFetchOrder(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewMedicationAdapter(client)

	cols := append(medicationRowColumns(), "symptom_id", "effectiveness", "name", "description", "icon_name", "is_common", "created_at")
	row := func(medID, brand, symptomID string, eff int) []driverValue {
		vals := medicationRowValues(medID, brand)
		vals = append(vals, symptomID, eff, "name-"+symptomID, nil, nil, false, fixedTime)
		return toDriverValues(vals)
	}

	rows := sqlmock.NewRows(cols).
		AddRow(row("m2", "Advil", "s1", 5)...).
		AddRow(row("m1", "Tylenol", "s1", 4)...).
		AddRow(row("m2", "Advil", "s2", 3)...)

	mock.ExpectQuery(`SELECT .* FROM "medications" AS "m" INNER JOIN "medication_symptoms" AS "ms" .* ORDER BY "ms"."effectiveness" DESC, "m"."id" ASC`).
		WillReturnRows(rows)

	meds, err := adapter.GetBySymptomIDs(context.Background(), []string{"s1", "s2"})
	require.NoError(t, err)
	require.Len(t, meds, 2)

	assert.Equal(t, "m2", meds[0].ID)
	assert.Len(t, meds[0].Symptoms, 2)
	assert.Equal(t, 5, meds[0].Symptoms[0].Effectiveness)
	assert.Equal(t, "m1", meds[1].ID)
	require.NotNil(t, meds[1].Price)
	assert.InDelta(t, 8.99, *meds[1].Price, 0.0001)
	assert.Equal(t, entities.MedicationCategoryOTC, meds[1].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicationAdapter_GetBySymptomIDs_Empty(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewMedicationAdapter(client)

	meds, err := adapter.GetBySymptomIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, meds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicationAdapter_GetByID(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewMedicationAdapter(client)

	mock.ExpectQuery(`SELECT .* FROM "medications" AS "m" WHERE`).
		WillReturnRows(sqlmock.NewRows(medicationRowColumns()).AddRow(toDriverValues(medicationRowValues("m1", "Tylenol"))...))
	mock.ExpectQuery(`SELECT .* FROM "medication_symptoms" AS "ms" INNER JOIN "symptoms" AS "s"`).
		WillReturnRows(sqlmock.NewRows([]string{"medication_id", "symptom_id", "effectiveness", "id", "name", "description", "icon_name", "is_common", "created_at"}).
			AddRow("m1", "s1", 4, "s1", "Headache", "Head pain", nil, true, fixedTime))

	med, err := adapter.GetByID(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "Tylenol", med.BrandName)
	require.Len(t, med.Symptoms, 1)
	assert.Equal(t, "Headache", med.Symptoms[0].Symptom.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicationAdapter_GetByID_NotFound(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewMedicationAdapter(client)

	mock.ExpectQuery(`SELECT .* FROM "medications"`).WillReturnRows(sqlmock.NewRows(medicationRowColumns()))

	_, err := adapter.GetByID(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMedicationAdapter_LinkSymptom_RejectsOutOfRange(t *testing.T) {
	client, _ := newMockClient(t)
	adapter := NewMedicationAdapter(client)

	err := adapter.LinkSymptom(context.Background(), &entities.MedicationSymptomLink{MedicationID: "m1", SymptomID: "s1", Effectiveness: 6})
	assert.True(t, apperrors.IsValidation(err))
}
