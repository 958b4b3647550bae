package healthcare_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/medflow/medflow-datagen/internal/healthcare"
	"github.com/medflow/medflow-datagen/pkg/config"
	"github.com/medflow/medflow-datagen/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig(dir string) config.HealthcareConfig {
	dims := make(map[string]int, len(healthcare.Kinds))
	for _, kind := range healthcare.Kinds {
		dims[kind] = 8
	}
	dims["patient"] = 5

	return config.HealthcareConfig{
		FactRows:   10,
		OutputDir:  dir,
		Seed:       21,
		RepeatPct:  0.10,
		Dimensions: dims,
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestGenerator_Run_WritesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dataset")
	gen := healthcare.NewGenerator(smallConfig(dir), logger.New("healthcare-datagen-test", "test"))
	require.NoError(t, gen.Run(context.Background()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 16, "15 dimensions plus the fact table")

	for _, kind := range healthcare.Kinds {
		records := readCSV(t, filepath.Join(dir, "dim_"+kind+".csv"))
		size := 8
		if kind == "patient" {
			size = 5
		}
		require.Len(t, records, size+1, "dimension %s", kind)
		assert.Equal(t, kind+"_id", records[0][0])
		assert.Equal(t, "1", records[1][0])
		assert.Equal(t, strconv.Itoa(size), records[len(records)-1][0])
	}
}

func TestGenerator_Run_FactReferencesStayInRange(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dataset")
	gen := healthcare.NewGenerator(smallConfig(dir), logger.New("healthcare-datagen-test", "test"))
	require.NoError(t, gen.Run(context.Background()))

	records := readCSV(t, filepath.Join(dir, healthcare.FactFileName))
	require.Len(t, records, 11, "header plus 10 fact rows")
	assert.Equal(t, healthcare.FactHeader, records[0])

	for _, row := range records[1:] {
		require.Len(t, row, 22)
		patientID, err := strconv.Atoi(row[0])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, patientID, 1)
		assert.LessOrEqual(t, patientID, 5, "patient keys must reference dim_patient")
	}
}

func TestGenerator_Run_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cfg := smallConfig(filepath.Join(file, "nested"))
	gen := healthcare.NewGenerator(cfg, logger.New("healthcare-datagen-test", "test"))
	assert.Error(t, gen.Run(context.Background()))
}
