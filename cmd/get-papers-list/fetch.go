// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-papers/internal/classify"
	"github.com/pdiddy/pubmed-papers/internal/fetch"
	"github.com/pdiddy/pubmed-papers/internal/pubmed"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <pmid>...",
	Short: "Fetch and classify specific PubMed IDs",
	Long: `Fetch skips the search step and builds a row for each PubMed ID given,
in the order given. An ID that cannot be fetched or parsed still gets a row
with "Not Available" placeholders.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}

	result, err := fetch.Process(ctx, pubmed.NewClient(cfg.PubMed), args, classify.New(cfg.Classify), logger)
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	return emitRows(ctx, cfg, result.Rows, file)
}

func init() {
	fetchCmd.Flags().StringP("file", "f", "", "CSV file to write results to (default: stdout)")

	rootCmd.AddCommand(fetchCmd)
}
