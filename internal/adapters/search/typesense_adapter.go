package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	tsclient "github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/medfinder/backend/pkg/utils"
)

const defaultPerPage = 50

// TypesenseAdapter implements pharmacy search using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.PharmacySearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// Index upserts a pharmacy together with the medications it has in stock
func (a *TypesenseAdapter) Index(ctx context.Context, pharmacy *entities.Pharmacy, stockedMedicationIDs []string) error {
	document := buildPharmacyDocument(pharmacy, stockedMedicationIDs)
	_, err := a.client.Client().Collection(tsclient.PharmaciesCollection).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index pharmacy: %w", err)
	}
	return nil
}

// Delete removes a pharmacy from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(tsclient.PharmaciesCollection).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete pharmacy from index: %w", err)
	}
	return nil
}

// Search returns active pharmacies within the radius, nearest first
func (a *TypesenseAdapter) Search(ctx context.Context, q repositories.NearbyQuery) ([]*entities.NearbyPharmacy, error) {
	perPage := q.Limit
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	params := &api.SearchCollectionParams{
		Q:        pointer.String("*"),
		QueryBy:  pointer.String("name"),
		FilterBy: pointer.String(buildFilter(q)),
		SortBy:   pointer.String(fmt.Sprintf("location(%f, %f):asc", q.Latitude, q.Longitude)),
		PerPage:  pointer.Int(perPage),
	}

	result, err := a.client.Client().Collection(tsclient.PharmaciesCollection).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to search pharmacies: %w", err)
	}

	pharmacies := []*entities.NearbyPharmacy{}
	if result.Hits == nil {
		return pharmacies, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		p, ok := parsePharmacyDocument(*hit.Document)
		if !ok {
			continue
		}
		pharmacies = append(pharmacies, &entities.NearbyPharmacy{
			Pharmacy:   *p,
			DistanceKm: utils.DistanceKm(q.Latitude, q.Longitude, p.Latitude, p.Longitude),
			Stock:      []entities.PharmacyStock{},
		})
	}

	sort.SliceStable(pharmacies, func(i, j int) bool {
		return pharmacies[i].DistanceKm < pharmacies[j].DistanceKm
	})
	return pharmacies, nil
}

func buildFilter(q repositories.NearbyQuery) string {
	filter := fmt.Sprintf("is_active:=true && location:(%f, %f, %f km)", q.Latitude, q.Longitude, q.RadiusKm)
	if q.MedicationID != "" {
		filter += fmt.Sprintf(" && medication_ids:=[`%s`]", q.MedicationID)
	}
	return filter
}

func buildPharmacyDocument(p *entities.Pharmacy, stockedMedicationIDs []string) map[string]interface{} {
	ids := stockedMedicationIDs
	if ids == nil {
		ids = []string{}
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	doc := map[string]interface{}{
		"id":             p.ID,
		"name":           p.Name,
		"address":        p.Address,
		"city":           p.City,
		"state":          p.State,
		"zip_code":       p.ZipCode,
		"location":       []float64{p.Latitude, p.Longitude},
		"is_active":      p.IsActive,
		"medication_ids": ids,
		"created_at":     createdAt.Unix(),
	}
	if p.Phone != "" {
		doc["phone"] = p.Phone
	}
	return doc
}

// parsePharmacyDocument rebuilds a pharmacy from a search hit. Documents
// without an id or a usable location are skipped.
func parsePharmacyDocument(doc map[string]interface{}) (*entities.Pharmacy, bool) {
	id, _ := doc["id"].(string)
	if id == "" {
		return nil, false
	}
	loc, ok := doc["location"].([]interface{})
	if !ok || len(loc) != 2 {
		return nil, false
	}
	lat, latOK := loc[0].(float64)
	lng, lngOK := loc[1].(float64)
	if !latOK || !lngOK {
		return nil, false
	}

	p := &entities.Pharmacy{ID: id, Latitude: lat, Longitude: lng}
	p.Name, _ = doc["name"].(string)
	p.Address, _ = doc["address"].(string)
	p.City, _ = doc["city"].(string)
	p.State, _ = doc["state"].(string)
	p.ZipCode, _ = doc["zip_code"].(string)
	p.Phone, _ = doc["phone"].(string)
	p.IsActive, _ = doc["is_active"].(bool)
	if ts, ok := doc["created_at"].(float64); ok {
		p.CreatedAt = time.Unix(int64(ts), 0).UTC()
	}
	return p, true
}
