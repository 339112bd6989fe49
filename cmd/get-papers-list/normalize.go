// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-papers/internal/records"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <in.csv>",
	Short: "Rewrite a results CSV with current column names and placeholders",
	Long: `Normalize reads a results CSV, renames legacy columns such as
"Non-academic Author(s)" and "Company Affiliation(s)", fills blank cells
with their placeholders and writes the table back out in the current
column order.`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rows, err := records.ReadFile(args[0], cfg.Classify.EmptyList())
	if err != nil {
		return err
	}
	logger.Info().Str("file", args[0]).Int("rows", len(rows)).Msg("loaded records")

	out, _ := cmd.Flags().GetString("output")
	return emitRows(cmd.Context(), cfg, rows, out)
}

func init() {
	normalizeCmd.Flags().StringP("output", "o", "", "CSV file to write (default: stdout)")

	rootCmd.AddCommand(normalizeCmd)
}
