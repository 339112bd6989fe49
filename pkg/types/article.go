// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-papers pipeline:
// the intermediate article fields produced by the field extractor, the
// classified author view, and the normalized PaperRecord with its tabular Row.
package types

import "strings"

// RawAuthor is one Author node as read from the article XML. Empty strings
// mean the corresponding child node was absent.
type RawAuthor struct {
	LastName       string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	ForeName       string `json:"fore_name,omitempty" yaml:"fore_name,omitempty"`
	CollectiveName string `json:"collective_name,omitempty" yaml:"collective_name,omitempty"`

	// Affiliations holds every non-blank Affiliation text under the author,
	// in document order. It may be empty.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}

// HasName reports whether the author carries any usable name.
func (a RawAuthor) HasName() bool {
	return a.LastName != "" || a.ForeName != "" || a.CollectiveName != ""
}

// DateParts holds the optional Year, Month and Day children of PubDate.
type DateParts struct {
	Year  string `json:"year,omitempty" yaml:"year,omitempty"`
	Month string `json:"month,omitempty" yaml:"month,omitempty"`
	Day   string `json:"day,omitempty" yaml:"day,omitempty"`
}

// Compose joins the parts that are present with "-" in year-month-day
// order. ok is false when no part is present.
func (d DateParts) Compose() (date string, ok bool) {
	parts := make([]string, 0, 3)
	for _, p := range []string{d.Year, d.Month, d.Day} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "-"), true
}

// Article is the flat set of fields extracted from one article's XML.
type Article struct {
	Title    string      `json:"title" yaml:"title"`
	HasTitle bool        `json:"has_title" yaml:"has_title"`
	Date     DateParts   `json:"date" yaml:"date"`
	Authors  []RawAuthor `json:"authors" yaml:"authors"`

	// DocumentText is the raw XML the article was parsed from. The
	// document-wide email scan runs over it.
	DocumentText string `json:"-" yaml:"-"`
}

// ClassifiedAuthor is the affiliation classification of one author.
type ClassifiedAuthor struct {
	DisplayName   string `json:"display_name" yaml:"display_name"`
	IsNonAcademic bool   `json:"is_non_academic" yaml:"is_non_academic"`
	IsCompany     bool   `json:"is_company" yaml:"is_company"`

	// CompanyAffiliations lists the affiliation texts that matched a
	// company keyword.
	CompanyAffiliations []string `json:"company_affiliations,omitempty" yaml:"company_affiliations,omitempty"`

	// EmailFound is the first email in this author's affiliation texts.
	EmailFound string `json:"email_found,omitempty" yaml:"email_found,omitempty"`
}
