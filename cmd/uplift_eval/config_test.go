package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `y,treatment,solo,two_model
1,1,0.9,0.1
1,1,0.8,0.2
0,1,0.3,0.7
0,0,0.6,0.4
0,0,0.5,0.5
1,0,0.1,0.9
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-data", "val.csv", "-k", "5", "-bins", "4", "-store", "json"})
	require.NoError(t, err)
	assert.Equal(t, "val.csv", cfg.DataPath)
	assert.Equal(t, "5", cfg.K)
	assert.Equal(t, 4, cfg.Bins)
	assert.Equal(t, "y", cfg.Target)

	_, err = parseFlags(nil)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-bins", "many"})
	assert.Error(t, err)
}

func TestBuildSpec_QuickModeDiscoversModels(t *testing.T) {
	data := writeFile(t, t.TempDir(), "val.csv", testCSV)

	s, err := cliConfig{DataPath: data, Target: "y", Treatment: "treatment", K: "2", Strategy: "by_group"}.buildSpec()
	require.NoError(t, err)

	require.Len(t, s.Models, 2)
	assert.Equal(t, "solo", s.Models[0].Name)
	assert.Equal(t, "two_model", s.Models[1].Column)
	assert.Equal(t, metrics.Count(2), s.Metrics.K.K)
	assert.Equal(t, "by_group", s.Metrics.Strategy)
	assert.Equal(t, 10, s.Metrics.Bins)
}

func TestBuildSpec_ExplicitModels(t *testing.T) {
	data := writeFile(t, t.TempDir(), "val.csv", testCSV)

	s, err := cliConfig{DataPath: data, Target: "y", Treatment: "treatment", Models: "solo, "}.buildSpec()
	require.NoError(t, err)
	require.Len(t, s.Models, 1)
	assert.Equal(t, "solo", s.Models[0].Name)
}

func TestBuildSpec_SpecFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "val.csv", testCSV)
	specPath := writeFile(t, dir, "eval.yaml", `
name: campaign
dataset: {file: val.csv, target: y, treatment: treatment}
models:
  - {name: solo}
metrics: {k: 0.5, bins: 3}
storage: {type: json, path: reports}
`)

	s, err := cliConfig{SpecPath: specPath, Bins: 2}.buildSpec()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Metrics.Bins)
	assert.Equal(t, metrics.Fraction(0.5), s.Metrics.K.K)
	assert.Equal(t, filepath.Join(dir, "reports"), s.Storage.Path)

	s, err = cliConfig{SpecPath: specPath, Store: "pg", StorePath: "postgres://localhost/db"}.buildSpec()
	require.NoError(t, err)
	assert.Equal(t, "pg", s.Storage.Type)
	assert.Equal(t, "postgres://localhost/db", s.Storage.Connection)
}

func TestBuildSpec_Errors(t *testing.T) {
	data := writeFile(t, t.TempDir(), "val.csv", testCSV)

	tests := []struct {
		name string
		cfg  cliConfig
	}{
		{"invalid k", cliConfig{DataPath: data, Target: "y", Treatment: "treatment", K: "ten"}},
		{"zero fraction k", cliConfig{DataPath: data, Target: "y", Treatment: "treatment", K: "0.0"}},
		{"k above one", cliConfig{DataPath: data, Target: "y", Treatment: "treatment", K: "1.5"}},
		{"invalid strategy", cliConfig{DataPath: data, Target: "y", Treatment: "treatment", Strategy: "all"}},
		{"missing target column", cliConfig{DataPath: data, Target: "conversion", Treatment: "treatment"}},
		{"invalid store", cliConfig{DataPath: data, Target: "y", Treatment: "treatment", Store: "s3"}},
		{"missing spec file", cliConfig{SpecPath: filepath.Join(t.TempDir(), "nope.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.buildSpec()
			assert.Error(t, err)
		})
	}
}
