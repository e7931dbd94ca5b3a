// Package storage writes the fixture document to disk and reads it back.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"maropost_fixtures/models/maropost"
)

// ErrMissingCollection is returned by Load when a top-level key is absent.
var ErrMissingCollection = errors.New("missing collection")

// Save serializes ds as compact JSON and writes it to path in one call. The
// parent directory must exist; nothing is retried or cleaned up on failure.
func Save(path string, ds maropost.Dataset) error {
	data, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load reads a fixture document. All three collection keys must be present.
func Load(path string) (maropost.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return maropost.Dataset{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a fixture document held in memory.
func Decode(data []byte) (maropost.Dataset, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return maropost.Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	for _, key := range maropost.CollectionKeys {
		if _, ok := raw[key]; !ok {
			return maropost.Dataset{}, fmt.Errorf("%w: %q", ErrMissingCollection, key)
		}
	}

	var ds maropost.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return maropost.Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	return ds, nil
}
