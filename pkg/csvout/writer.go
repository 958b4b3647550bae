// Package csvout writes generated rows to CSV files. Output is gzipped
// when the target path ends in .gz. Every row is checked against the
// header width; a mismatch is an internal invariant violation and is
// never silently truncated or padded.
package csvout

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrRowWidth indicates a row whose field count does not match the header.
var ErrRowWidth = errors.New("row width does not match header")

// Writer writes CSV rows under a fixed header
type Writer struct {
	path   string
	header []string
	file   *os.File
	gz     *gzip.Writer
	csv    *csv.Writer
	rows   int64
}

// NewWriter creates the output file, sets up gzip compression when the
// path ends in .gz, and writes the header row immediately so that even
// an interrupted run leaves a syntactically valid CSV behind.
func NewWriter(path string, header []string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := &Writer{
		path:   path,
		header: header,
		file:   file,
	}

	var out io.Writer = file
	if strings.HasSuffix(path, ".gz") {
		w.gz = gzip.NewWriter(file)
		out = w.gz
	}
	w.csv = csv.NewWriter(out)

	if err := w.csv.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	return w, nil
}

// Write appends one data row
func (w *Writer) Write(row []string) error {
	if len(row) != len(w.header) {
		return fmt.Errorf("%w: got %d fields, header has %d", ErrRowWidth, len(row), len(w.header))
	}
	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("failed to write row to %s: %w", w.path, err)
	}
	w.rows++
	return nil
}

// WriteAll appends a chunk of rows and flushes them to the underlying file
func (w *Writer) WriteAll(rows [][]string) error {
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush forces buffered rows out to the underlying file
func (w *Writer) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", w.path, err)
	}
	return nil
}

// Rows returns the number of data rows written so far, excluding the header
func (w *Writer) Rows() int64 {
	return w.rows
}

// Path returns the output file path
func (w *Writer) Path() string {
	return w.path
}

// Close flushes remaining rows and closes the compression and file layers
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush %s: %w", w.path, err)
	}
	if w.gz != nil {
		if err := w.gz.Close(); err != nil {
			w.file.Close()
			return fmt.Errorf("failed to close gzip stream for %s: %w", w.path, err)
		}
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", w.path, err)
	}
	return nil
}
