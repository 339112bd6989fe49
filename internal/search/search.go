// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search turns a structured query into PubMed term syntax and
// collects the matching PubMed IDs.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Searcher returns the PubMed IDs matching a term. *pubmed.Client
// satisfies it.
type Searcher interface {
	Search(ctx context.Context, term string, maxResults int) ([]string, error)
}

// Query holds the search parameters. FreeText is passed through verbatim,
// so a full PubMed query can be given there on its own.
type Query struct {
	FreeText string
	Author   string
	Keywords []string
	DateFrom time.Time
	DateTo   time.Time
}

// IsEmpty reports whether the query contains no searchable terms. A date
// range alone is not searchable.
func (q Query) IsEmpty() bool {
	if strings.TrimSpace(q.FreeText) != "" || strings.TrimSpace(q.Author) != "" {
		return false
	}
	for _, kw := range q.Keywords {
		if strings.TrimSpace(kw) != "" {
			return false
		}
	}
	return true
}

const (
	pdatFormat = "2006/01/02"
	openStart  = "1800"
	openEnd    = "3000"
)

// Term renders the query in PubMed syntax, joining the parts with AND:
//
//	cancer AND Smith[Author] AND immunotherapy[Title/Abstract] AND ("2020/01/01"[PDAT] : "3000"[PDAT])
func (q Query) Term() string {
	var parts []string
	if ft := strings.TrimSpace(q.FreeText); ft != "" {
		parts = append(parts, ft)
	}
	if a := strings.TrimSpace(q.Author); a != "" {
		parts = append(parts, a+"[Author]")
	}
	for _, kw := range q.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			parts = append(parts, kw+"[Title/Abstract]")
		}
	}
	if r := dateRange(q.DateFrom, q.DateTo); r != "" {
		parts = append(parts, r)
	}
	return strings.Join(parts, " AND ")
}

func dateRange(from, to time.Time) string {
	if from.IsZero() && to.IsZero() {
		return ""
	}
	start, end := openStart, openEnd
	if !from.IsZero() {
		start = from.Format(pdatFormat)
	}
	if !to.IsZero() {
		end = to.Format(pdatFormat)
	}
	return fmt.Sprintf("(%q[PDAT] : %q[PDAT])", start, end)
}

// Output holds the IDs found for a query and dedup statistics.
type Output struct {
	Term        string
	IDs         []string
	DupsRemoved int
}

// Run searches for q and returns the distinct IDs in the order the
// searcher returned them.
func Run(ctx context.Context, s Searcher, q Query, maxResults int) (Output, error) {
	if q.IsEmpty() {
		return Output{}, fmt.Errorf("query is empty: provide a search term or structured parameters")
	}
	term := q.Term()

	ids, err := s.Search(ctx, term, maxResults)
	if err != nil {
		return Output{Term: term}, fmt.Errorf("searching %q: %w", term, err)
	}

	deduped, removed := deduplicate(ids)
	return Output{Term: term, IDs: deduped, DupsRemoved: removed}, nil
}

// deduplicate drops blank and repeated IDs, keeping first occurrences.
func deduplicate(ids []string) ([]string, int) {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	removed := 0
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if seen[id] {
			removed++
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, removed
}
