// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/pubmed-papers/internal/records"
	"github.com/pdiddy/pubmed-papers/internal/store"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// emitRows writes rows as CSV to path, or to stdout when path is empty,
// and saves them to the store when a store directory is configured. With
// no rows the CSV still gets its header.
func emitRows(ctx context.Context, cfg types.PipelineConfig, rows []types.Row, path string) error {
	if cfg.Store.Dir != "" && len(rows) > 0 {
		if err := saveRows(ctx, cfg, rows); err != nil {
			return err
		}
	}

	if path == "" {
		return records.Write(os.Stdout, rows)
	}
	if err := records.WriteFile(path, rows); err != nil {
		return err
	}
	logger.Info().Str("file", path).Int("rows", len(rows)).Msg("results saved")
	return nil
}

func saveRows(ctx context.Context, cfg types.PipelineConfig, rows []types.Row) error {
	s, err := store.NewStore(cfg.Store, cfg.Classify.EmptyList())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Save(ctx, rows); err != nil {
		return fmt.Errorf("saving to store: %w", err)
	}
	logger.Info().Str("db", cfg.Store.Dir).Int("rows", len(rows)).Msg("records stored")
	return nil
}
