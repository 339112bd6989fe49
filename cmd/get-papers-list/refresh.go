// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-papers/internal/classify"
	"github.com/pdiddy/pubmed-papers/internal/fetch"
	"github.com/pdiddy/pubmed-papers/internal/pubmed"
	"github.com/pdiddy/pubmed-papers/internal/records"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh <in.csv>",
	Short: "Re-fetch the papers in an existing results CSV",
	Long: `Refresh reads a results CSV (legacy column names are accepted), fetches
each PubMed ID again and rebuilds its row. When a fetch fails the existing
title, date and author lists are kept and the email is reset to
"Not Available". With --limit only the first N rows are re-fetched; the
rest are written back unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}

	rows, err := records.ReadFile(args[0], cfg.Classify.EmptyList())
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	logger.Info().Str("file", args[0]).Int("rows", len(rows)).Int("limit", limit).Msg("refreshing records")

	result, err := fetch.Refresh(ctx, pubmed.NewClient(cfg.PubMed), rows, limit, classify.New(cfg.Classify), logger)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	return emitRows(ctx, cfg, result.Rows, out)
}

func init() {
	refreshCmd.Flags().StringP("output", "o", "", "CSV file to write (default: stdout)")
	refreshCmd.Flags().Int("limit", 0, "re-fetch only the first N rows (0 = all)")

	rootCmd.AddCommand(refreshCmd)
}
