// Package dbload bulk-loads generated CSV files into Postgres so the
// synthetic datasets can be queried right after generation. Tables are
// named after the files and must already exist with matching columns.
package dbload

import (
	"compress/gzip"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/medflow/medflow-datagen/pkg/database"
	"github.com/medflow/medflow-datagen/pkg/logger"
)

// Loader copies CSV files into Postgres tables
type Loader struct {
	db  *database.DB
	log *logger.Logger
}

// New returns a loader over the given connection
func New(db *database.DB, log *logger.Logger) *Loader {
	return &Loader{db: db, log: log.WithComponent("dbload")}
}

// TableName derives the target table from a CSV path, stripping .csv
// and .gz suffixes
func TableName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".csv")
	return name
}

// LoadFile copies one CSV file into the table named after it. The whole
// file goes through a single COPY inside one transaction; the CSV
// header supplies the column list.
func (l *Loader) LoadFile(ctx context.Context, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return 0, fmt.Errorf("failed to read gzip stream %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	table := TableName(path)
	var count int64

	err = l.db.Transaction(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PreparexContext(ctx, pq.CopyIn(table, header...))
		if err != nil {
			return fmt.Errorf("failed to prepare copy into %s: %w", table, err)
		}
		defer stmt.Close()

		for {
			record, err := cr.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("failed to read row from %s: %w", path, err)
			}

			args := make([]interface{}, len(record))
			for i, v := range record {
				args[i] = v
			}
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return fmt.Errorf("failed to copy row into %s: %w", table, err)
			}
			count++
		}

		// The final empty exec flushes the COPY buffer.
		if _, err := stmt.ExecContext(ctx); err != nil {
			return fmt.Errorf("failed to finish copy into %s: %w", table, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	l.log.Info().Str("table", table).Int64("rows", count).Msg("table loaded")
	return count, nil
}

// LoadDir loads every .csv and .csv.gz file in a directory, one table
// per file, in lexical order.
func (l *Loader) LoadDir(ctx context.Context, dir string) (int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".csv.gz") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)

	var total int64
	for _, path := range paths {
		n, err := l.LoadFile(ctx, path)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
