package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"maropost_fixtures/internal/storage"
	"maropost_fixtures/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunWritesFixture(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "db.json")
	cfgPath := writeConfig(t, dir, "dataset:\n  seed: 12\n  output_path: "+out+"\n")

	require.NoError(t, run(cfgPath))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc, 3)
	assert.Len(t, doc["maropost-orders"], 50)
	assert.Len(t, doc["maropost-customers"], 30)
	assert.Len(t, doc["maropost-products"], 100)

	ds, err := storage.Load(out)
	require.NoError(t, err)
	assert.NoError(t, validation.ValidateDataset(ds))
}

func TestRunTwiceWithDifferentSeeds(t *testing.T) {
	dir := t.TempDir()
	outA := filepath.Join(dir, "a.json")
	outB := filepath.Join(dir, "b.json")

	require.NoError(t, run(writeConfig(t, dir, "dataset:\n  seed: 1\n  output_path: "+outA+"\n")))
	require.NoError(t, run(writeConfig(t, dir, "dataset:\n  seed: 2\n  output_path: "+outB+"\n")))

	a, err := storage.Load(outA)
	require.NoError(t, err)
	b, err := storage.Load(outB)
	require.NoError(t, err)

	assert.Equal(t, len(a.Orders), len(b.Orders))
	assert.Equal(t, len(a.Customers), len(b.Customers))
	assert.Equal(t, len(a.Products), len(b.Products))
	assert.NotEqual(t, a.Orders[0].Email, b.Orders[0].Email)
	assert.NoError(t, validation.ValidateDataset(a))
	assert.NoError(t, validation.ValidateDataset(b))
}

func TestRunFailsOnMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nope", "db.json")

	err := run(writeConfig(t, dir, "dataset:\n  output_path: "+out+"\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunWithoutConfigFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "fixtures"), 0o755))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, run(filepath.Join(dir, "missing.yaml")))
	assert.FileExists(t, filepath.Join(dir, "fixtures", "db.json"))
}
