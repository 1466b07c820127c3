package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/medfinder/backend/internal/adapters/database"
	"github.com/zatekoja/medfinder/backend/internal/application/services"
	"github.com/zatekoja/medfinder/backend/internal/evaluation"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/observability"
	"github.com/zatekoja/medfinder/backend/pkg/config"
)

func main() {
	goldenPath := flag.String("golden", "config/golden_queries.json", "path to the golden query set")
	k := flag.Int("k", 0, "number of suggestions scored per query (default: SEARCH_SUGGEST_LIMIT)")
	minRecall := flag.Float64("min-recall", 0, "exit non-zero when average recall falls below this value")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	observability.InitLogger(cfg.OTEL.ServiceName+"-evaluate", cfg.Environment)

	queries, err := evaluation.LoadGoldenQueries(*goldenPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load golden queries")
	}
	if err := evaluation.ValidateGoldenQueries(queries); err != nil {
		log.Fatal().Err(err).Msg("Invalid golden queries")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pgClient.Close()

	synonyms, err := services.LoadSynonymTable(cfg.Search.SynonymsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Search.SynonymsPath).Msg("Failed to load synonym table")
	}
	log.Info().Int("terms", synonyms.Len()).Msg("Synonym table loaded")
	catalog := services.NewCatalogService(
		database.NewSymptomAdapter(pgClient),
		database.NewMedicationAdapter(pgClient),
		services.NewSymptomMatcher(synonyms, cfg.Search),
	)

	if *k <= 0 {
		*k = cfg.Search.SuggestLimit
	}
	summary := evaluation.NewRunner(catalog, *k).Run(context.Background(), queries)

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode summary")
	}
	fmt.Println(string(out))

	log.Info().
		Int("queries", summary.TotalQueries).
		Float64("recall", summary.AvgRecallAtK).
		Float64("mrr", summary.AvgMRRAtK).
		Int("misses", len(summary.Misses)).
		Msg("Evaluation finished")

	if summary.AvgRecallAtK < *minRecall {
		log.Error().Float64("min_recall", *minRecall).Msg("Average recall below threshold")
		os.Exit(1)
	}
}
