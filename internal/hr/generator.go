package hr

import (
	"context"
	"fmt"
	"time"

	"github.com/medflow/medflow-datagen/internal/randgen"
	"github.com/medflow/medflow-datagen/pkg/config"
	"github.com/medflow/medflow-datagen/pkg/csvout"
	"github.com/medflow/medflow-datagen/pkg/logger"
	"github.com/medflow/medflow-datagen/pkg/progress"
)

// Generator is the HR snapshot driving loop
type Generator struct {
	cfg config.HRConfig
	log *logger.Logger
}

// NewGenerator returns a generator for the given configuration
func NewGenerator(cfg config.HRConfig, log *logger.Logger) *Generator {
	return &Generator{cfg: cfg, log: log.WithComponent("hr-generator")}
}

// Run generates cfg.Rows snapshots into cfg.Output. Rows are buffered
// and flushed every cfg.ChunkSize to bound memory; the pool is
// pre-seeded with leaders so a manager exists from row one.
func (g *Generator) Run(ctx context.Context) error {
	start := time.Now()

	src := randgen.New(g.cfg.Seed)
	pool := NewPool(src)
	for i := 0; i < g.cfg.SeedLeaders; i++ {
		pool.Create(CreateSpec{MaxRank: leaderMaxRank})
	}

	w, err := csvout.NewWriter(g.cfg.Output, SnapshotHeader)
	if err != nil {
		return err
	}

	emitter := NewEmitter(src, pool)
	bar := progress.New(int64(g.cfg.Rows), "hr snapshots", g.cfg.Progress)
	buf := make([][]string, 0, g.cfg.ChunkSize)

	g.log.Info().
		Int("rows", g.cfg.Rows).
		Int("seed_leaders", g.cfg.SeedLeaders).
		Float64("repeat_prob", g.cfg.RepeatProb).
		Str("output", g.cfg.Output).
		Msg("generating hr snapshots")

	for i := 0; i < g.cfg.Rows; i++ {
		var emp *Employee
		if existing, ok := g.maybeReuse(src, pool); ok {
			emp = existing
		} else {
			spec := CreateSpec{}
			// Occasionally hire senior to keep the manager pool replenished.
			if src.Chance(0.02) {
				spec.MaxRank = seniorBandMaxRank
			}
			emp = pool.Create(spec)
		}

		buf = append(buf, emitter.Emit(emp).Row())
		if len(buf) >= g.cfg.ChunkSize {
			if err := w.WriteAll(buf); err != nil {
				w.Close()
				return fmt.Errorf("failed to flush chunk: %w", err)
			}
			buf = buf[:0]
			if err := ctx.Err(); err != nil {
				w.Close()
				return err
			}
		}
		_ = bar.Add(1)
	}

	if len(buf) > 0 {
		if err := w.WriteAll(buf); err != nil {
			w.Close()
			return fmt.Errorf("failed to flush final chunk: %w", err)
		}
	}
	_ = bar.Finish()

	if err := w.Close(); err != nil {
		return err
	}

	g.log.Info().
		Int64("rows", w.Rows()).
		Int("pool_size", pool.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("hr snapshot generation complete")
	return nil
}

func (g *Generator) maybeReuse(src *randgen.Source, pool *Pool) (*Employee, bool) {
	if pool.Len() == 0 || !src.Chance(g.cfg.RepeatProb) {
		return nil, false
	}
	return pool.PickExisting()
}
