package csvout_test

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/medflow/medflow-datagen/pkg/csvout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_PlainRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := csvout.NewWriter(path, []string{"id", "name"})
	require.NoError(t, err)

	require.NoError(t, w.Write([]string{"1", "alice"}))
	require.NoError(t, w.Write([]string{"2", "bob"}))
	require.NoError(t, w.Close())

	assert.Equal(t, int64(2), w.Rows())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "name"}, records[0])
	assert.Equal(t, []string{"1", "alice"}, records[1])
	assert.Equal(t, []string{"2", "bob"}, records[2])
}

func TestWriter_GzipBySuffix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv.gz")

	w, err := csvout.NewWriter(path, []string{"id"})
	require.NoError(t, err)
	require.NoError(t, w.Write([]string{"1"}))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err, "output should be valid gzip")
	defer gz.Close()

	records, err := csv.NewReader(gz).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"id"}, records[0])
	assert.Equal(t, []string{"1"}, records[1])
}

func TestWriter_RowWidthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := csvout.NewWriter(path, []string{"a", "b", "c"})
	require.NoError(t, err)
	defer w.Close()

	err = w.Write([]string{"1", "2"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, csvout.ErrRowWidth))

	err = w.Write([]string{"1", "2", "3", "4"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, csvout.ErrRowWidth))

	assert.Equal(t, int64(0), w.Rows(), "rejected rows must not be counted")
}

func TestWriter_UnwritablePath(t *testing.T) {
	_, err := csvout.NewWriter(filepath.Join(t.TempDir(), "missing", "out.csv"), []string{"a"})
	assert.Error(t, err)
}

func TestWriter_HeaderSurvivesPartialRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := csvout.NewWriter(path, []string{"a", "b"})
	require.NoError(t, err)
	require.NoError(t, w.Write([]string{"1", "2"}))
	require.NoError(t, w.Flush())

	// The file is readable mid-run: header plus all flushed rows.
	f, err := os.Open(path)
	require.NoError(t, err)
	records, err := csv.NewReader(f).ReadAll()
	f.Close()
	require.NoError(t, err)
	assert.Len(t, records, 2)

	require.NoError(t, w.Close())
}
