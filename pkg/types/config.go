// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for calls to NCBI E-utilities.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// RequestInterval is the minimum spacing between consecutive requests
	// (default 500ms).
	RequestInterval time.Duration `json:"request_interval" yaml:"request_interval"`
}

// PubMedConfig holds settings for the E-utilities search and fetch calls.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the E-utilities root (default
	// "https://eutils.ncbi.nlm.nih.gov/entrez/eutils").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey is an optional NCBI API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Email is the contact address NCBI asks tools to send.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// MaxResults caps the number of IDs returned by a search (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// CacheTTL controls how long fetched article XML stays cached in
	// process (default 10m).
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

// NameOrder selects how an author's display name is composed.
type NameOrder string

const (
	// NameFirstLast renders "Jane Doe".
	NameFirstLast NameOrder = "first-last"
	// NameLastFirst renders "Doe, Jane".
	NameLastFirst NameOrder = "last-first"
)

// CompanyListMode selects what the Company Affiliations column holds.
type CompanyListMode string

const (
	// CompanyByAuthor lists the display names of company-affiliated authors.
	CompanyByAuthor CompanyListMode = "author"
	// CompanyByAffiliation lists the raw affiliation texts that matched.
	CompanyByAffiliation CompanyListMode = "affiliation"
)

// EmailScope selects where the corresponding email is searched for.
type EmailScope string

const (
	// EmailFromAffiliations scans authors' affiliation texts in author order.
	EmailFromAffiliations EmailScope = "affiliation"
	// EmailFromDocument scans the whole raw article XML.
	EmailFromDocument EmailScope = "document"
)

// DefaultAcademicKeywords mark an affiliation as academic.
var DefaultAcademicKeywords = []string{
	"university", "institute", "college", "school", "lab", "laboratory",
	"research", "faculty", "department", "hospital", "clinic",
	"center for", "medical center", "department of",
}

// DefaultCompanyKeywords mark an affiliation as a company.
var DefaultCompanyKeywords = []string{
	"inc", "ltd", "llc", "corp", "company", "pharma", "technologies",
	"biotech", "co.", "medical technology",
}

// ClassifyConfig holds the classification and rendering policy.
type ClassifyConfig struct {
	AcademicKeywords []string        `json:"academic_keywords" yaml:"academic_keywords"`
	CompanyKeywords  []string        `json:"company_keywords" yaml:"company_keywords"`
	NameOrder        NameOrder       `json:"name_order" yaml:"name_order"`
	CompanyListMode  CompanyListMode `json:"company_list_mode" yaml:"company_list_mode"`
	EmailScope       EmailScope      `json:"email_scope" yaml:"email_scope"`

	// EmptyListText is written for an empty author list column. A nil
	// pointer means the default ("None"); an empty string is allowed.
	EmptyListText *string `json:"empty_list_text,omitempty" yaml:"empty_list_text,omitempty"`
}

// DefaultClassifyConfig returns the documented default policy.
func DefaultClassifyConfig() ClassifyConfig {
	return ClassifyConfig{
		AcademicKeywords: append([]string(nil), DefaultAcademicKeywords...),
		CompanyKeywords:  append([]string(nil), DefaultCompanyKeywords...),
		NameOrder:        NameFirstLast,
		CompanyListMode:  CompanyByAuthor,
		EmailScope:       EmailFromAffiliations,
	}
}

// EmptyList returns the configured empty-list text.
func (c ClassifyConfig) EmptyList() string {
	if c.EmptyListText == nil {
		return EmptyListNone
	}
	return *c.EmptyListText
}

// StoreConfig holds settings for the SQLite record store.
type StoreConfig struct {
	// Dir is the directory holding papers.db and exports.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default limit for listing records (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	Level string `json:"level" yaml:"level"`

	// Format is json or console.
	Format string `json:"format" yaml:"format"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	PubMed   PubMedConfig   `json:"pubmed" yaml:"pubmed"`
	Classify ClassifyConfig `json:"classify" yaml:"classify"`
	Store    StoreConfig    `json:"store" yaml:"store"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
}
