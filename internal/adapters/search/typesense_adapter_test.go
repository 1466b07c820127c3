package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
)

func TestBuildFilter(t *testing.T) {
	q := repositories.NearbyQuery{Latitude: 39.78, Longitude: -89.65, RadiusKm: 10}
	assert.Equal(t, "is_active:=true && location:(39.780000, -89.650000, 10.000000 km)", buildFilter(q))

	q.MedicationID = "m1"
	assert.Equal(t, "is_active:=true && location:(39.780000, -89.650000, 10.000000 km) && medication_ids:=[`m1`]", buildFilter(q))
}

func TestBuildPharmacyDocument(t *testing.T) {
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	doc := buildPharmacyDocument(&entities.Pharmacy{
		ID: "p1", Name: "Corner Pharmacy", Latitude: 1.5, Longitude: 2.5, IsActive: true, CreatedAt: created,
	}, nil)

	assert.Equal(t, []float64{1.5, 2.5}, doc["location"])
	assert.Equal(t, []string{}, doc["medication_ids"])
	assert.Equal(t, created.Unix(), doc["created_at"])
	assert.NotContains(t, doc, "phone")
}

func TestParsePharmacyDocument(t *testing.T) {
	p, ok := parsePharmacyDocument(map[string]interface{}{
		"id":         "p1",
		"name":       "Corner Pharmacy",
		"phone":      "555-0100",
		"location":   []interface{}{39.78, -89.65},
		"is_active":  true,
		"created_at": float64(1714521600),
	})
	require.True(t, ok)
	assert.Equal(t, "Corner Pharmacy", p.Name)
	assert.Equal(t, 39.78, p.Latitude)
	assert.Equal(t, "555-0100", p.Phone)
	assert.Equal(t, int64(1714521600), p.CreatedAt.Unix())

	_, ok = parsePharmacyDocument(map[string]interface{}{"id": "p2"})
	assert.False(t, ok)
	_, ok = parsePharmacyDocument(map[string]interface{}{"location": []interface{}{1.0, 2.0}})
	assert.False(t, ok)
}
