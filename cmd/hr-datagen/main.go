package main

import (
	"context"
	"fmt"
	"os"

	"github.com/medflow/medflow-datagen/internal/dbload"
	"github.com/medflow/medflow-datagen/internal/hr"
	"github.com/medflow/medflow-datagen/pkg/config"
	"github.com/medflow/medflow-datagen/pkg/database"
	"github.com/medflow/medflow-datagen/pkg/logger"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("hr-datagen", pflag.ExitOnError)
	flags.Int("rows", 100000, "number of snapshot rows to generate")
	flags.String("output", "hr_employees.csv", "output CSV path (a .gz suffix enables gzip)")
	flags.Int("chunk", 10000, "rows buffered per flush")
	flags.Int64("seed", 0, "random seed (0 picks a time-based seed)")
	flags.Float64("repeat-prob", 0.10, "probability of reusing an existing employee per row")
	flags.Int("seed-leaders", 50, "leader employees created before the first row")
	flags.Bool("progress", false, "show a progress bar")
	flags.String("config", "", "config file path")
	flags.String("load-dsn", "", "Postgres DSN to bulk-load the output into after generation")
	_ = flags.Parse(os.Args[1:])

	// Load configuration
	cfg, err := config.Load("hr-datagen", flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.HR.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("hr-datagen", cfg.Environment)

	ctx := context.Background()

	gen := hr.NewGenerator(cfg.HR, log)
	if err := gen.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("hr snapshot generation failed")
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
	rows, err := loader.LoadFile(ctx, cfg.HR.Output)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load output into database")
	}
	log.Info().Int64("rows", rows).Msg("output loaded into database")
}
