package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/medfinder/backend/internal/adapters/cache"
	"github.com/zatekoja/medfinder/backend/internal/adapters/database"
	"github.com/zatekoja/medfinder/backend/internal/adapters/events"
	"github.com/zatekoja/medfinder/backend/internal/adapters/search"
	"github.com/zatekoja/medfinder/backend/internal/application/services"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/observability"
	"github.com/zatekoja/medfinder/backend/pkg/config"
)

//go:embed schema.sql
var schemaSQL string

type seedMedication struct {
	entities.Medication
	price float64
}

type seedLink struct {
	symptom       string
	medication    string
	effectiveness int
}

type seedStock struct {
	pharmacyID string
	brandName  string
	level      entities.StockLevel
}

var seedPharmacies = []entities.Pharmacy{
	{ID: "pharmacy-1", Name: "CVS Pharmacy", Address: "123 Main St", City: "New York", State: "NY", ZipCode: "10001", Phone: "(555) 123-4567", Latitude: 40.7589, Longitude: -73.9851, IsActive: true},
	{ID: "pharmacy-2", Name: "Walgreens", Address: "456 Broadway", City: "New York", State: "NY", ZipCode: "10013", Phone: "(555) 987-6543", Latitude: 40.7614, Longitude: -73.9776, IsActive: true},
	{ID: "pharmacy-3", Name: "Rite Aid", Address: "789 Park Ave", City: "New York", State: "NY", ZipCode: "10021", Phone: "(555) 456-7890", Latitude: 40.7736, Longitude: -73.9566, IsActive: true},
}

var seedStockLevels = []seedStock{
	{"pharmacy-1", "Tylenol", entities.StockLevelInStock},
	{"pharmacy-1", "Advil", entities.StockLevelInStock},
	{"pharmacy-1", "Benadryl", entities.StockLevelLowStock},
	{"pharmacy-2", "Tylenol", entities.StockLevelInStock},
	{"pharmacy-2", "Advil", entities.StockLevelOutOfStock},
	{"pharmacy-2", "Pepto-Bismol", entities.StockLevelInStock},
	{"pharmacy-3", "Tylenol", entities.StockLevelLowStock},
	{"pharmacy-3", "Benadryl", entities.StockLevelInStock},
	{"pharmacy-3", "Pepto-Bismol", entities.StockLevelInStock},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	observability.InitLogger(cfg.OTEL.ServiceName+"-seed", cfg.Environment)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DB")
	}
	defer pgClient.Close()

	ctx := context.Background()

	if _, err := pgClient.DB().ExecContext(ctx, schemaSQL); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				search_history,
				user_favorites,
				pharmacy_stock,
				pharmacies,
				medication_symptoms,
				medications,
				symptoms
			CASCADE
		`)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to truncate tables")
		}
	}

	symptomRepo := database.NewSymptomAdapter(pgClient)
	medicationRepo := database.NewMedicationAdapter(pgClient)
	pharmacyRepo := database.NewPharmacyAdapter(pgClient)

	existing, err := symptomRepo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read symptoms")
	}
	if len(existing) > 0 {
		log.Info().Int("symptoms", len(existing)).Msg("Catalog already seeded; set RESET_DB=true to reseed")
		return
	}

	if err := seedCatalog(ctx, symptomRepo, medicationRepo, pharmacyRepo); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	refreshDerivedStores(ctx, cfg, pharmacyRepo)
	log.Info().Msg("Seeding completed")
}

func seedCatalog(
	ctx context.Context,
	symptomRepo repositories.SymptomRepository,
	medicationRepo repositories.MedicationRepository,
	pharmacyRepo repositories.PharmacyRepository,
) error {
	symptomIDs := make(map[string]string, len(seedSymptoms))
	for _, s := range seedSymptoms {
		if err := symptomRepo.Create(ctx, &s); err != nil {
			return fmt.Errorf("symptom %s: %w", s.Name, err)
		}
		symptomIDs[s.Name] = s.ID
	}

	medicationIDs := make(map[string]string, len(seedMedications))
	for _, m := range seedMedications {
		med := m.Medication
		price := m.price
		med.Price = &price
		med.IsActive = true
		if err := medicationRepo.Create(ctx, &med); err != nil {
			return fmt.Errorf("medication %s: %w", med.BrandName, err)
		}
		medicationIDs[med.BrandName] = med.ID
	}

	linked := 0
	for _, l := range seedLinks {
		symptomID, okS := symptomIDs[l.symptom]
		medicationID, okM := medicationIDs[l.medication]
		if !okS || !okM {
			log.Warn().Str("symptom", l.symptom).Str("medication", l.medication).Msg("Skipping link with unknown symptom or medication")
			continue
		}
		err := medicationRepo.LinkSymptom(ctx, &entities.MedicationSymptomLink{
			MedicationID:  medicationID,
			SymptomID:     symptomID,
			Effectiveness: l.effectiveness,
		})
		if err != nil {
			return fmt.Errorf("link %s -> %s: %w", l.symptom, l.medication, err)
		}
		linked++
	}

	for _, p := range seedPharmacies {
		if err := pharmacyRepo.Create(ctx, &p); err != nil {
			return fmt.Errorf("pharmacy %s: %w", p.Name, err)
		}
	}
	for _, st := range seedStockLevels {
		err := pharmacyRepo.UpsertStock(ctx, &entities.PharmacyStock{
			PharmacyID:   st.pharmacyID,
			MedicationID: medicationIDs[st.brandName],
			StockLevel:   st.level,
		})
		if err != nil {
			return fmt.Errorf("stock %s at %s: %w", st.brandName, st.pharmacyID, err)
		}
	}

	log.Info().
		Int("symptoms", len(symptomIDs)).
		Int("medications", len(medicationIDs)).
		Int("links", linked).
		Int("pharmacies", len(seedPharmacies)).
		Msg("Catalog seeded")
	return nil
}

// refreshDerivedStores drops stale catalog cache entries, tells running API
// instances to re-warm, and rebuilds the pharmacy index. Both stores are optional.
func refreshDerivedStores(ctx context.Context, cfg *config.Config, pharmacyRepo repositories.PharmacyRepository) {
	if redisClient, err := redis.NewClient(&cfg.Redis); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable; skipping cache invalidation")
	} else {
		defer redisClient.Close()
		warming := services.NewCacheWarmingService(nil, cache.NewRedisAdapter(redisClient))
		if err := warming.InvalidateCache(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to invalidate catalog cache")
		}
		bus := events.NewRedisEventBus(redisClient)
		if err := services.AnnounceChange(ctx, bus, entities.CatalogEventReseeded, "seed"); err != nil {
			log.Warn().Err(err).Msg("Failed to announce catalog change")
		}
		_ = bus.Close()
	}

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Warn().Err(err).Msg("Typesense unavailable; skipping pharmacy index")
		return
	}
	if err := tsClient.InitSchema(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to init Typesense schema")
		return
	}
	n, err := services.NewPharmacyService(pharmacyRepo, search.NewTypesenseAdapter(tsClient)).Reindex(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to index pharmacies")
		return
	}
	log.Info().Int("pharmacies", n).Msg("Indexed pharmacies")
}
