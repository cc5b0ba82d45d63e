// Package jsonio reads and writes the JSON documents the sampler exchanges
// with disk: parameter files, family arrays, and result bundles.
//
// The core math packages return plain maps and structs; everything
// serialization-shaped lives here so the core stays I/O-free.
package jsonio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sentinel errors for document shape mismatches.
var (
	// ErrNotObject indicates a document expected to hold a JSON object held
	// something else.
	ErrNotObject = errors.New("jsonio: document is not a JSON object")

	// ErrNotArray indicates a document expected to hold a JSON array held
	// something else.
	ErrNotArray = errors.New("jsonio: document is not a JSON array")
)

// Load reads the JSON document at path into v.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("jsonio: read %s: %w", path, err)
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("jsonio: parse %s: %w", path, err)
	}
	return nil
}

// Save writes v as indented JSON to path, creating parent directories as
// needed.
func Save(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("jsonio: mkdir for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonio: encode %s: %w", path, err)
	}
	data = append(data, '\n')
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("jsonio: write %s: %w", path, err)
	}
	return nil
}

// LoadObject reads a document that must hold a JSON object.
func LoadObject(path string) (map[string]any, error) {
	var raw any
	if err := Load(path, &raw); err != nil {
		return nil, err
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotObject, path)
	}
	return obj, nil
}

// LoadFamily reads a document that must hold a JSON array of record objects.
func LoadFamily(path string) ([]map[string]any, error) {
	var raw any
	if err := Load(path, &raw); err != nil {
		return nil, err
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotArray, path)
	}
	records := make([]map[string]any, 0, len(arr))
	for i, item := range arr {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s: element %d is not an object", ErrNotArray, path, i)
		}
		records = append(records, rec)
	}
	return records, nil
}
