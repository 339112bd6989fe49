// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package records reads and writes the tabular paper output as CSV. Every
// cell is written as text; missing cells read from older files are filled
// with the column's sentinel so a sentinel is never mistaken for a missing
// value on reload.
package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// columnAliases maps header names found in older result files to the
// current column names.
var columnAliases = map[string]string{
	"Non-academic Author(s)": types.ColNonAcademicAuthors,
	"Non-academic Authors":   types.ColNonAcademicAuthors,
	"Company Affiliation(s)": types.ColCompanyAffiliations,
}

// ErrMissingID is returned when a file has no PubmedID column.
var ErrMissingID = errors.New("missing PubmedID column")

// Write writes the header and rows to w.
func Write(w io.Writer, rows []types.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.Columns()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Values()); err != nil {
			return fmt.Errorf("writing row %s: %w", r.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// NormalizeColumn maps a header name to its current column name.
func NormalizeColumn(name string) string {
	name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	if canonical, ok := columnAliases[name]; ok {
		return canonical
	}
	return name
}

// Read parses CSV with a header row. Columns are matched by name after
// alias normalization, unknown columns are ignored, and blank or absent
// cells take the sentinel for their column. emptyList is the text used
// for blank author list cells. Rows with a blank PubmedID are skipped.
func Read(r io.Reader, emptyList string) ([]types.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		col := NormalizeColumn(h)
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}
	if _, ok := index[types.ColPubmedID]; !ok {
		return nil, ErrMissingID
	}

	var rows []types.Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}

		cell := func(col, sentinel string) string {
			i, ok := index[col]
			if !ok || i >= len(rec) || strings.TrimSpace(rec[i]) == "" {
				return sentinel
			}
			return rec[i]
		}

		row := types.Row{
			PubmedID:            strings.TrimSpace(cell(types.ColPubmedID, "")),
			Title:               cell(types.ColTitle, types.NotAvailable),
			PublicationDate:     cell(types.ColPublicationDate, types.NotAvailable),
			NonAcademicAuthors:  cell(types.ColNonAcademicAuthors, emptyList),
			CompanyAffiliations: cell(types.ColCompanyAffiliations, emptyList),
			CorrespondingEmail:  cell(types.ColCorrespondingEmail, types.NotAvailable),
		}
		if row.PubmedID == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadFile reads rows from the CSV file at path.
func ReadFile(path, emptyList string) ([]types.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Read(f, emptyList)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}

// WriteFile writes rows to path through a temporary file in the same
// directory, renamed into place on success.
func WriteFile(path string, rows []types.Row) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".records-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	writeErr := Write(tmpFile, rows)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
