package healthcare

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/medflow/medflow-datagen/internal/randgen"
	"github.com/medflow/medflow-datagen/pkg/config"
	"github.com/medflow/medflow-datagen/pkg/csvout"
	"github.com/medflow/medflow-datagen/pkg/logger"
	"github.com/medflow/medflow-datagen/pkg/progress"
)

// FactFileName is the fact table's file name inside the output directory
const FactFileName = "fact_healthcare.csv"

// Generator drives the healthcare dataset run: all dimension tables
// first, then the streaming fact table.
type Generator struct {
	cfg config.HealthcareConfig
	log *logger.Logger
}

// NewGenerator returns a generator for the given configuration
func NewGenerator(cfg config.HealthcareConfig, log *logger.Logger) *Generator {
	return &Generator{cfg: cfg, log: log.WithComponent("healthcare-generator")}
}

// Run writes 15 dim_<kind>.csv files plus fact_healthcare.csv into
// cfg.OutputDir. Fact rows are unrelated to each other, so they stream
// straight to the writer with no chunk buffering.
func (g *Generator) Run(ctx context.Context) error {
	start := time.Now()

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", g.cfg.OutputDir, err)
	}

	src := randgen.New(g.cfg.Seed)
	sizes := Sizes(g.cfg.Dimensions)

	g.log.Info().
		Int("fact_rows", g.cfg.FactRows).
		Float64("repeat_pct", g.cfg.RepeatPct).
		Str("output_dir", g.cfg.OutputDir).
		Msg("generating healthcare dataset")

	for _, kind := range Kinds {
		if err := g.writeDimension(src, kind, sizes[kind]); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	if err := g.writeFacts(ctx, src, sizes); err != nil {
		return err
	}

	g.log.Info().
		Dur("elapsed", time.Since(start)).
		Msg("healthcare dataset generation complete")
	return nil
}

func (g *Generator) writeDimension(src *randgen.Source, kind string, size int) error {
	table, err := GenerateDimension(src, kind, size)
	if err != nil {
		return err
	}

	w, err := csvout.NewWriter(filepath.Join(g.cfg.OutputDir, table.FileName()), table.Header)
	if err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			w.Close()
			return fmt.Errorf("dimension %s: %w", kind, err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	g.log.Debug().Str("dimension", kind).Int("rows", size).Msg("dimension written")
	return nil
}

func (g *Generator) writeFacts(ctx context.Context, src *randgen.Source, sizes map[string]int) error {
	w, err := csvout.NewWriter(filepath.Join(g.cfg.OutputDir, FactFileName), FactHeader)
	if err != nil {
		return err
	}

	facts := NewFactGenerator(src, g.cfg.FactRows, g.cfg.RepeatPct, sizes)
	bar := progress.New(int64(g.cfg.FactRows), "fact rows", g.cfg.Progress)

	for i := 0; i < g.cfg.FactRows; i++ {
		if err := w.Write(facts.Row()); err != nil {
			w.Close()
			return fmt.Errorf("fact row %d: %w", i, err)
		}
		if i%10000 == 0 {
			if err := w.Flush(); err != nil {
				w.Close()
				return err
			}
			if err := ctx.Err(); err != nil {
				w.Close()
				return err
			}
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if err := w.Close(); err != nil {
		return err
	}

	g.log.Info().Int64("rows", w.Rows()).Msg("fact table written")
	return nil
}
