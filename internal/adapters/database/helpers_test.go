package database

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/postgres"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return postgres.NewClientFromDB(db), mock
}

func medicationRowColumns() []string {
	return []string{
		"id", "brand_name", "generic_name", "category", "description", "uses",
		"dosage", "precautions", "interactions", "side_effects", "image_url",
		"price", "is_active", "created_at",
	}
}

func medicationRowValues(id, brand string) []interface{} {
	return []interface{}{
		id, brand, "generic " + brand, "otc", "desc", "uses", "dosage",
		"precautions", "interactions", "side effects", nil, []byte("8.99"), true, fixedTime,
	}
}

type driverValue = driver.Value

func toDriverValues(vals []interface{}) []driver.Value {
	out := make([]driver.Value, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
