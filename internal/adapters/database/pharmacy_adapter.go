package database

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

const defaultNearbyLimit = 50

var pharmacyColumns = []interface{}{
	"id", "name", "address", "city", "state", "zip_code", "phone",
	"latitude", "longitude", "is_active", "created_at",
}

// PharmacyAdapter implements PharmacyRepository
type PharmacyAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPharmacyAdapter creates a new pharmacy adapter
func NewPharmacyAdapter(client *postgres.Client) repositories.PharmacyRepository {
	return &PharmacyAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// haversineKm is the great-circle distance in km between the point and each row.
// LEAST guards acos against rounding just above 1.
func haversineKm(lat, lng float64) exp.LiteralExpression {
	return goqu.L(`(6371 * acos(LEAST(1.0,
		cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) +
		sin(radians(?)) * sin(radians(latitude)))))`, lat, lng, lat)
}

// List returns all active pharmacies
func (a *PharmacyAdapter) List(ctx context.Context) ([]*entities.Pharmacy, error) {
	query, args, err := a.db.Select(pharmacyColumns...).
		From("pharmacies").
		Where(goqu.Ex{"is_active": true}).
		Order(goqu.I("name").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list pharmacies", err)
	}
	defer rows.Close()

	pharmacies := []*entities.Pharmacy{}
	for rows.Next() {
		p := &entities.Pharmacy{}
		if err := rows.Scan(pharmacyDest(p)...); err != nil {
			return nil, apperrors.NewInternalError("failed to scan pharmacy", err)
		}
		pharmacies = append(pharmacies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate pharmacies", err)
	}
	return pharmacies, nil
}

// FindNearby returns active pharmacies within the radius ordered by distance
func (a *PharmacyAdapter) FindNearby(ctx context.Context, q repositories.NearbyQuery) ([]*entities.NearbyPharmacy, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultNearbyLimit
	}

	distance := haversineKm(q.Latitude, q.Longitude)
	cols := append([]interface{}{}, pharmacyColumns...)
	cols = append(cols, distance.As("distance"))

	ds := a.db.Select(cols...).
		From("pharmacies").
		Where(
			goqu.Ex{"is_active": true},
			goqu.I("latitude").IsNotNull(),
			goqu.I("longitude").IsNotNull(),
			distance.Lte(q.RadiusKm),
		)

	if q.MedicationID != "" {
		stocked := a.db.Select("pharmacy_id").
			From("pharmacy_stock").
			Where(goqu.Ex{
				"medication_id": q.MedicationID,
				"stock_level":   goqu.Op{"neq": string(entities.StockLevelOutOfStock)},
			})
		ds = ds.Where(goqu.I("id").In(stocked))
	}

	query, args, err := ds.Order(goqu.I("distance").Asc()).
		Limit(uint(limit)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to find nearby pharmacies", err)
	}
	defer rows.Close()

	results := []*entities.NearbyPharmacy{}
	for rows.Next() {
		p := &entities.NearbyPharmacy{Stock: []entities.PharmacyStock{}}
		dest := append(pharmacyDest(&p.Pharmacy), &p.DistanceKm)
		if err := rows.Scan(dest...); err != nil {
			return nil, apperrors.NewInternalError("failed to scan pharmacy", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate pharmacies", err)
	}
	return results, nil
}

// ListStock returns stock rows for the given pharmacies
func (a *PharmacyAdapter) ListStock(ctx context.Context, pharmacyIDs []string) ([]*entities.PharmacyStock, error) {
	if len(pharmacyIDs) == 0 {
		return []*entities.PharmacyStock{}, nil
	}

	query, args, err := a.db.Select("pharmacy_id", "medication_id", "stock_level", "last_updated").
		From("pharmacy_stock").
		Where(goqu.Ex{"pharmacy_id": pharmacyIDs}).
		Order(goqu.I("pharmacy_id").Asc(), goqu.I("medication_id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list pharmacy stock", err)
	}
	defer rows.Close()

	stock := []*entities.PharmacyStock{}
	for rows.Next() {
		s := &entities.PharmacyStock{}
		if err := rows.Scan(&s.PharmacyID, &s.MedicationID, &s.StockLevel, &s.LastUpdated); err != nil {
			return nil, apperrors.NewInternalError("failed to scan pharmacy stock", err)
		}
		stock = append(stock, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate pharmacy stock", err)
	}
	return stock, nil
}

// Create inserts a pharmacy
func (a *PharmacyAdapter) Create(ctx context.Context, p *entities.Pharmacy) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	query, args, err := a.db.Insert("pharmacies").Rows(goqu.Record{
		"id":         p.ID,
		"name":       p.Name,
		"address":    p.Address,
		"city":       p.City,
		"state":      p.State,
		"zip_code":   p.ZipCode,
		"phone":      p.Phone,
		"latitude":   p.Latitude,
		"longitude":  p.Longitude,
		"is_active":  p.IsActive,
		"created_at": p.CreatedAt,
	}).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create pharmacy", err)
	}
	return nil
}

// UpsertStock inserts or updates the stock level of a medication at a pharmacy
func (a *PharmacyAdapter) UpsertStock(ctx context.Context, s *entities.PharmacyStock) error {
	if !s.StockLevel.Valid() {
		return apperrors.NewValidationError("invalid stock level " + string(s.StockLevel))
	}
	if s.LastUpdated.IsZero() {
		s.LastUpdated = time.Now().UTC()
	}

	query, args, err := a.db.Insert("pharmacy_stock").Rows(goqu.Record{
		"id":            uuid.NewString(),
		"pharmacy_id":   s.PharmacyID,
		"medication_id": s.MedicationID,
		"stock_level":   string(s.StockLevel),
		"last_updated":  s.LastUpdated,
	}).OnConflict(goqu.DoUpdate("pharmacy_id, medication_id", goqu.Record{
		"stock_level":  goqu.L("EXCLUDED.stock_level"),
		"last_updated": goqu.L("EXCLUDED.last_updated"),
	})).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("pharmacy or medication not found")
		}
		return apperrors.NewInternalError("failed to upsert pharmacy stock", err)
	}
	return nil
}

func pharmacyDest(p *entities.Pharmacy) []interface{} {
	return []interface{}{
		&p.ID, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode,
		nullString{&p.Phone}, &p.Latitude, &p.Longitude, &p.IsActive, &p.CreatedAt,
	}
}
