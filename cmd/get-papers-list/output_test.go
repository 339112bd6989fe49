// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

func TestEmitRows_NoRowsWritesHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")
	cfg := types.PipelineConfig{Store: types.StoreConfig{Dir: filepath.Join(dir, "db")}}

	require.NoError(t, emitRows(context.Background(), cfg, nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(types.Columns(), ",")+"\n", string(data))

	_, err = os.Stat(cfg.Store.Dir)
	assert.True(t, os.IsNotExist(err), "empty result should not create a store")
}

func TestEmitRows_SavesToStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")
	cfg := types.PipelineConfig{Store: types.StoreConfig{Dir: filepath.Join(dir, "db")}}
	rows := []types.Row{types.FallbackRow("42", types.EmptyListNone)}

	require.NoError(t, emitRows(context.Background(), cfg, rows, path))

	_, err := os.Stat(filepath.Join(cfg.Store.Dir, "papers.db"))
	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "42,Not Available,Not Available,None,None,Not Available")
}
