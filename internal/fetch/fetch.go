// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch drives the per-article pipeline: fetch the XML, extract
// fields, classify authors and render a row. A failure for one ID never
// drops it from the output; a placeholder row is written instead.
package fetch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pubmed-papers/internal/classify"
	"github.com/pdiddy/pubmed-papers/internal/extract"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Fetcher returns the efetch XML for one PubMed ID. *pubmed.Client
// satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, pmid string) ([]byte, error)
}

// BatchResult holds the rows produced by a batch and per-outcome counts.
type BatchResult struct {
	Rows      []types.Row
	Succeeded int
	Failed    int
	Skipped   int
}

// Total returns the number of rows in the result.
func (r BatchResult) Total() int {
	return len(r.Rows)
}

// HasFailures reports whether any ID fell back to a placeholder row.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Article fetches, extracts, classifies and renders a single ID.
func Article(ctx context.Context, f Fetcher, pmid string, c *classify.Classifier) (types.Row, error) {
	data, err := f.Fetch(ctx, pmid)
	if err != nil {
		return types.Row{}, fmt.Errorf("fetching %s: %w", pmid, err)
	}
	art, err := extract.Extract(data)
	if err != nil {
		return types.Row{}, fmt.Errorf("extracting %s: %w", pmid, err)
	}
	return c.Render(c.Assemble(pmid, art)), nil
}

// Process runs Article for each ID in order. Failures are logged and
// replaced by the classifier's fallback row, so the result holds exactly
// one row per ID processed. If ctx is cancelled the rows built so far are
// returned together with ctx.Err().
func Process(ctx context.Context, f Fetcher, ids []string, c *classify.Classifier, log zerolog.Logger) (BatchResult, error) {
	var result BatchResult
	for i, pmid := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		log.Debug().Str("pmid", pmid).Int("n", i+1).Int("of", len(ids)).Msg("processing")

		row, err := Article(ctx, f, pmid, c)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			log.Warn().Err(err).Str("pmid", pmid).Msg("using placeholder record")
			result.Rows = append(result.Rows, c.Fallback(pmid))
			result.Failed++
			continue
		}
		result.Rows = append(result.Rows, row)
		result.Succeeded++
	}
	log.Info().
		Int("total", result.Total()).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("batch complete")
	return result, nil
}

// Refresh re-fetches the first limit rows (all rows when limit <= 0) and
// passes the rest through unchanged. When a re-fetch fails the existing
// row keeps its title, date and author lists, and its email becomes
// types.NotAvailable.
func Refresh(ctx context.Context, f Fetcher, rows []types.Row, limit int, c *classify.Classifier, log zerolog.Logger) (BatchResult, error) {
	if limit <= 0 || limit > len(rows) {
		limit = len(rows)
	}

	result := BatchResult{Rows: make([]types.Row, 0, len(rows))}
	for i, existing := range rows {
		if i >= limit {
			result.Rows = append(result.Rows, existing)
			result.Skipped++
			continue
		}
		if err := ctx.Err(); err != nil {
			result.Rows = append(result.Rows, rows[i:]...)
			result.Skipped += len(rows) - i
			return result, err
		}
		log.Debug().Str("pmid", existing.PubmedID).Int("n", i+1).Int("of", limit).Msg("refreshing")

		row, err := Article(ctx, f, existing.PubmedID, c)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				result.Rows = append(result.Rows, rows[i:]...)
				result.Skipped += len(rows) - i
				return result, ctxErr
			}
			log.Warn().Err(err).Str("pmid", existing.PubmedID).Msg("keeping existing record")
			result.Rows = append(result.Rows, keepExisting(existing))
			result.Failed++
			continue
		}
		result.Rows = append(result.Rows, row)
		result.Succeeded++
	}
	log.Info().
		Int("refreshed", result.Succeeded).
		Int("failed", result.Failed).
		Int("unchanged", result.Skipped).
		Msg("refresh complete")
	return result, nil
}

func keepExisting(r types.Row) types.Row {
	r.CorrespondingEmail = types.NotAvailable
	return r
}
