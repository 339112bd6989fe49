// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-papers/internal/classify"
	"github.com/pdiddy/pubmed-papers/internal/fetch"
	"github.com/pdiddy/pubmed-papers/internal/pubmed"
	"github.com/pdiddy/pubmed-papers/internal/search"
)

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}
	client := pubmed.NewClient(cfg.PubMed)

	var ids []string
	if queryFile, _ := cmd.Flags().GetString("query-file"); queryFile != "" {
		qf, err := search.ReadQueryFile(queryFile)
		if err != nil {
			return err
		}
		logger.Info().Str("file", queryFile).Str("term", qf.Term).Int("ids", len(qf.IDs)).Msg("replaying saved query")
		ids = qf.IDs
	} else {
		query, err := queryFromFlags(cmd, args)
		if err != nil {
			return err
		}
		if query.IsEmpty() {
			return fmt.Errorf("query is empty: provide a search term, --author or --keyword")
		}

		out, err := search.Run(ctx, client, query, cfg.PubMed.MaxResults)
		if err != nil {
			return err
		}
		logger.Info().Str("term", out.Term).Int("ids", len(out.IDs)).Msg("search complete")
		logger.Debug().Strs("ids", out.IDs).Msg("pubmed ids")

		if savePath, _ := cmd.Flags().GetString("save-query"); savePath != "" {
			if err := search.WriteQueryFile(savePath, query, cfg.PubMed.MaxResults, out); err != nil {
				return err
			}
			logger.Info().Str("file", savePath).Msg("query saved")
		}
		ids = out.IDs
	}

	if len(ids) == 0 {
		logger.Warn().Msg("no papers found")
	}

	result, err := fetch.Process(ctx, client, ids, classify.New(cfg.Classify), logger)
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	return emitRows(ctx, cfg, result.Rows, file)
}

// queryFromFlags builds a search query from the positional arguments and
// the structured query flags.
func queryFromFlags(cmd *cobra.Command, args []string) (search.Query, error) {
	q := search.Query{FreeText: strings.TrimSpace(strings.Join(args, " "))}
	q.Author, _ = cmd.Flags().GetString("author")
	q.Keywords, _ = cmd.Flags().GetStringSlice("keyword")

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	var err error
	if q.DateFrom, err = parseDate("from", from); err != nil {
		return q, err
	}
	if q.DateTo, err = parseDate("to", to); err != nil {
		return q, err
	}
	if !q.DateFrom.IsZero() && !q.DateTo.IsZero() && q.DateTo.Before(q.DateFrom) {
		return q, fmt.Errorf("--to %s is before --from %s", to, from)
	}
	return q, nil
}

func parseDate(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(search.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q: use YYYY-MM-DD", flag, value)
	}
	return t, nil
}
