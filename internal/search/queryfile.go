// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// QueryFile is the on-disk record of a search: the query, the PubMed term
// it produced and the IDs found. A saved file lets a fetch be replayed
// without searching again.
type QueryFile struct {
	Query   QueryParams  `yaml:"query"`
	Term    string       `yaml:"term"`
	IDs     []string     `yaml:"ids"`
	Summary QuerySummary `yaml:"summary"`
}

// QueryParams stores the query parameters in a serializable form.
type QueryParams struct {
	FreeText string   `yaml:"free_text,omitempty"`
	Author   string   `yaml:"author,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
	DateFrom string   `yaml:"date_from,omitempty"`
	DateTo   string   `yaml:"date_to,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total             int       `yaml:"total"`
	MaxResults        int       `yaml:"max_results"`
	DuplicatesRemoved int       `yaml:"duplicates_removed"`
	Timestamp         time.Time `yaml:"timestamp"`
}

// DateFormat is the layout for query dates on the command line and in
// query files.
const DateFormat = "2006-01-02"

// WriteQueryFile saves the query and its IDs to a YAML file.
func WriteQueryFile(path string, query Query, maxResults int, out Output) error {
	qf := QueryFile{
		Query: QueryParams{
			FreeText: query.FreeText,
			Author:   query.Author,
			Keywords: query.Keywords,
		},
		Term: out.Term,
		IDs:  out.IDs,
		Summary: QuerySummary{
			Total:             len(out.IDs),
			MaxResults:        maxResults,
			DuplicatesRemoved: out.DupsRemoved,
			Timestamp:         time.Now().UTC(),
		},
	}
	if !query.DateFrom.IsZero() {
		qf.Query.DateFrom = query.DateFrom.Format(DateFormat)
	}
	if !query.DateTo.IsZero() {
		qf.Query.DateTo = query.DateTo.Format(DateFormat)
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating query file dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToQuery converts stored QueryParams back into a Query struct.
func (p QueryParams) ToQuery() (Query, error) {
	q := Query{
		FreeText: p.FreeText,
		Author:   p.Author,
		Keywords: p.Keywords,
	}
	if p.DateFrom != "" {
		t, err := time.Parse(DateFormat, p.DateFrom)
		if err != nil {
			return q, fmt.Errorf("invalid date_from %q: %w", p.DateFrom, err)
		}
		q.DateFrom = t
	}
	if p.DateTo != "" {
		t, err := time.Parse(DateFormat, p.DateTo)
		if err != nil {
			return q, fmt.Errorf("invalid date_to %q: %w", p.DateTo, err)
		}
		q.DateTo = t
	}
	return q, nil
}
