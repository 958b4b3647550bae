package main

import (
	"context"
	"fmt"
	"os"

	"github.com/medflow/medflow-datagen/internal/dbload"
	"github.com/medflow/medflow-datagen/internal/healthcare"
	"github.com/medflow/medflow-datagen/pkg/config"
	"github.com/medflow/medflow-datagen/pkg/database"
	"github.com/medflow/medflow-datagen/pkg/logger"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("healthcare-datagen", pflag.ExitOnError)
	flags.Int("rows", 1000000, "number of fact rows to generate")
	flags.String("output-dir", "healthcare_dataset", "output directory for the fact and dimension CSVs")
	flags.Int64("seed", 0, "random seed (0 picks a time-based seed)")
	flags.Float64("repeat-pct", 0.10, "share of fact rows drawn from the repeat-visit patient subset")
	flags.Bool("progress", false, "show a progress bar")
	flags.String("config", "", "config file path (also holds dimension size overrides)")
	flags.String("load-dsn", "", "Postgres DSN to bulk-load the dataset into after generation")
	_ = flags.Parse(os.Args[1:])

	// Load configuration
	cfg, err := config.Load("healthcare-datagen", flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Healthcare.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("healthcare-datagen", cfg.Environment)

	ctx := context.Background()

	gen := healthcare.NewGenerator(cfg.Healthcare, log)
	if err := gen.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("healthcare dataset generation failed")
	}

	if cfg.Database.URL == "" {
		return
	}

	// Optional bulk load into Postgres
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	loader := dbload.New(db, log)
	rows, err := loader.LoadDir(ctx, cfg.Healthcare.OutputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dataset into database")
	}
	log.Info().Int64("rows", rows).Msg("dataset loaded into database")
}
