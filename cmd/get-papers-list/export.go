// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-papers/internal/records"
	"github.com/pdiddy/pubmed-papers/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored records to YAML, JSON or CSV",
	Long: `Export reads the records saved with --db and writes them to
<db>/export.yaml or <db>/export.json. --format csv writes the table to
stdout instead.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Store.Dir == "" {
		return fmt.Errorf("no store directory: pass --db or set store.dir")
	}

	s, err := store.NewStore(cfg.Store, cfg.Classify.EmptyList())
	if err != nil {
		return err
	}
	defer s.Close()

	companyOnly, _ := cmd.Flags().GetBool("company-only")
	limit, _ := cmd.Flags().GetInt("limit")
	filter := store.Filter{CompanyOnly: companyOnly, Max: limit}

	format, _ := cmd.Flags().GetString("format")
	var path string
	switch format {
	case "yaml", "":
		path, err = s.ExportYAML(ctx, filter)
	case "json":
		path, err = s.ExportJSON(ctx, filter)
	case "csv":
		entries, err := s.List(ctx, filter)
		if err != nil {
			return err
		}
		return records.Write(os.Stdout, store.Rows(entries))
	default:
		return fmt.Errorf("unsupported format %q: use yaml, json or csv", format)
	}
	if err != nil {
		return err
	}

	fmt.Println("Exported to", path)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml, json or csv")
	exportCmd.Flags().Bool("company-only", false, "only records with company-affiliated authors")
	exportCmd.Flags().Int("limit", 0, "maximum records to export (0 = all for yaml/json, store default for csv)")

	rootCmd.AddCommand(exportCmd)
}
