// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes the stored records matching f to dir/export.yaml and
// returns the file path.
func (s *Store) ExportYAML(ctx context.Context, f Filter) (string, error) {
	entries, err := s.exportEntries(ctx, f)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return s.writeExport("export.yaml", data)
}

// ExportJSON writes the stored records matching f to dir/export.json and
// returns the file path.
func (s *Store) ExportJSON(ctx context.Context, f Filter) (string, error) {
	entries, err := s.exportEntries(ctx, f)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return s.writeExport("export.json", data)
}

func (s *Store) exportEntries(ctx context.Context, f Filter) ([]Entry, error) {
	if f.Max <= 0 {
		f.Max = exportLimit
	}
	entries, err := s.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func (s *Store) writeExport(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("renaming %s: %w", name, err)
	}
	return path, nil
}
