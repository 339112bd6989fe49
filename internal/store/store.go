// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps rendered paper records in a local SQLite database so
// results accumulate across runs and can be listed or exported.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

const (
	dbFile = "papers.db"

	// Fixed-width so fetched_at sorts lexically.
	timeFormat = "2006-01-02T15:04:05.000000000Z07:00"
)

// ErrNotFound is returned by Get when no record has the requested ID.
var ErrNotFound = errors.New("record not found")

// Store manages the records SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	emptyList  string
	now        func() time.Time
}

// NewStore opens or creates dir/papers.db and its schema. emptyList is the
// text that marks an empty author list in saved rows; it decides which
// rows count as having company authors.
func NewStore(cfg types.StoreConfig, emptyList string) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("store directory not set")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}

	s := &Store{
		db:         db,
		dir:        cfg.Dir,
		maxResults: maxResults,
		emptyList:  emptyList,
		now:        time.Now,
	}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			pmid TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			publication_date TEXT NOT NULL,
			non_academic_authors TEXT NOT NULL,
			company_affiliations TEXT NOT NULL,
			corresponding_email TEXT NOT NULL,
			has_company INTEGER NOT NULL DEFAULT 0,
			fetched_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_fetched_at ON records(fetched_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save upserts rows in a single transaction. A row whose PubmedID already
// exists replaces the stored one.
func (s *Store) Save(ctx context.Context, rows []types.Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (pmid, title, publication_date, non_academic_authors,
			company_affiliations, corresponding_email, has_company, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(pmid) DO UPDATE SET
			title=excluded.title, publication_date=excluded.publication_date,
			non_academic_authors=excluded.non_academic_authors,
			company_affiliations=excluded.company_affiliations,
			corresponding_email=excluded.corresponding_email,
			has_company=excluded.has_company, fetched_at=excluded.fetched_at`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	fetchedAt := s.now().UTC().Format(timeFormat)
	for _, r := range rows {
		if r.PubmedID == "" {
			return fmt.Errorf("saving record: empty PubMed ID")
		}
		_, err := stmt.ExecContext(ctx,
			r.PubmedID, r.Title, r.PublicationDate, r.NonAcademicAuthors,
			r.CompanyAffiliations, r.CorrespondingEmail, s.hasCompany(r), fetchedAt,
		)
		if err != nil {
			return fmt.Errorf("upserting %s: %w", r.PubmedID, err)
		}
	}
	return tx.Commit()
}

func (s *Store) hasCompany(r types.Row) bool {
	return r.CompanyAffiliations != "" && r.CompanyAffiliations != s.emptyList
}

// Get returns the stored row for pmid, or ErrNotFound.
func (s *Store) Get(ctx context.Context, pmid string) (types.Row, error) {
	var r types.Row
	err := s.db.QueryRowContext(ctx,
		`SELECT pmid, title, publication_date, non_academic_authors,
			company_affiliations, corresponding_email
		 FROM records WHERE pmid = ?`, pmid,
	).Scan(&r.PubmedID, &r.Title, &r.PublicationDate, &r.NonAcademicAuthors,
		&r.CompanyAffiliations, &r.CorrespondingEmail)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Row{}, fmt.Errorf("%s: %w", pmid, ErrNotFound)
	}
	if err != nil {
		return types.Row{}, fmt.Errorf("querying %s: %w", pmid, err)
	}
	return r, nil
}

// Filter narrows List and the exports.
type Filter struct {
	// CompanyOnly keeps rows with at least one company-affiliated author.
	CompanyOnly bool

	// Max caps the number of rows; zero uses the store default.
	Max int
}

// Entry is a stored row with the time it was last saved.
type Entry struct {
	types.Row `yaml:",inline"`
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// List returns stored rows, most recently saved first, then by PubMed ID.
func (s *Store) List(ctx context.Context, f Filter) ([]Entry, error) {
	limit := f.Max
	if limit <= 0 {
		limit = s.maxResults
	}

	query := `SELECT pmid, title, publication_date, non_academic_authors,
			company_affiliations, corresponding_email, fetched_at
		 FROM records`
	if f.CompanyOnly {
		query += ` WHERE has_company = 1`
	}
	query += ` ORDER BY fetched_at DESC, pmid LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var fetchedAt string
		if err := rows.Scan(&e.PubmedID, &e.Title, &e.PublicationDate, &e.NonAcademicAuthors,
			&e.CompanyAffiliations, &e.CorrespondingEmail, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if t, err := time.Parse(timeFormat, fetchedAt); err == nil {
			e.FetchedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Rows strips the timestamps from entries.
func Rows(entries []Entry) []types.Row {
	out := make([]types.Row, len(entries))
	for i, e := range entries {
		out[i] = e.Row
	}
	return out
}
