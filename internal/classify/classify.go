// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides which authors of an article have non-academic or
// company affiliations, picks a corresponding email, and assembles the
// normalized PaperRecord. A Classifier holds only its immutable policy and
// is safe for concurrent use.
package classify

import (
	"regexp"
	"strings"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Classifier applies a ClassifyConfig to extracted articles.
type Classifier struct {
	academic  []string
	company   []string
	nameOrder types.NameOrder
	listMode  types.CompanyListMode
	scope     types.EmailScope
	emptyList string
}

// New returns a Classifier for cfg. Keywords are lowercased once here.
// Nil keyword sets and unset modes fall back to the defaults of
// types.DefaultClassifyConfig.
func New(cfg types.ClassifyConfig) *Classifier {
	def := types.DefaultClassifyConfig()
	if cfg.AcademicKeywords == nil {
		cfg.AcademicKeywords = def.AcademicKeywords
	}
	if cfg.CompanyKeywords == nil {
		cfg.CompanyKeywords = def.CompanyKeywords
	}
	c := &Classifier{
		academic:  lowerAll(cfg.AcademicKeywords),
		company:   lowerAll(cfg.CompanyKeywords),
		nameOrder: cfg.NameOrder,
		listMode:  cfg.CompanyListMode,
		scope:     cfg.EmailScope,
		emptyList: cfg.EmptyList(),
	}
	if c.nameOrder == "" {
		c.nameOrder = def.NameOrder
	}
	if c.listMode == "" {
		c.listMode = def.CompanyListMode
	}
	if c.scope == "" {
		c.scope = def.EmailScope
	}
	return c
}

func lowerAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// IsAcademic reports whether the affiliation text contains any academic
// keyword, ignoring case.
func (c *Classifier) IsAcademic(affiliation string) bool {
	return containsAny(affiliation, c.academic)
}

// IsCompany reports whether the affiliation text contains any company
// keyword, ignoring case.
func (c *Classifier) IsCompany(affiliation string) bool {
	return containsAny(affiliation, c.company)
}

// DisplayName composes the author's name. A personal name takes
// precedence over a collective name; ok is false when neither exists.
func (c *Classifier) DisplayName(a types.RawAuthor) (string, bool) {
	switch {
	case a.LastName != "" && a.ForeName != "":
		if c.nameOrder == types.NameLastFirst {
			return a.LastName + ", " + a.ForeName, true
		}
		return a.ForeName + " " + a.LastName, true
	case a.LastName != "":
		return a.LastName, true
	case a.ForeName != "":
		return a.ForeName, true
	case a.CollectiveName != "":
		return a.CollectiveName, true
	}
	return "", false
}

// ClassifyAuthor evaluates each affiliation of a independently. The author
// is non-academic when at least one affiliation matches no academic
// keyword, and a company author when any affiliation matches a company
// keyword. An author without affiliations is neither. ok is false when the
// author has no name.
func (c *Classifier) ClassifyAuthor(a types.RawAuthor) (types.ClassifiedAuthor, bool) {
	name, ok := c.DisplayName(a)
	if !ok {
		return types.ClassifiedAuthor{}, false
	}

	ca := types.ClassifiedAuthor{DisplayName: name}
	for _, aff := range a.Affiliations {
		if !c.IsAcademic(aff) {
			ca.IsNonAcademic = true
		}
		if c.IsCompany(aff) {
			ca.IsCompany = true
			ca.CompanyAffiliations = append(ca.CompanyAffiliations, aff)
		}
		if ca.EmailFound == "" {
			ca.EmailFound = FindEmail(aff)
		}
	}
	return ca, true
}

// FindEmail returns the first email address in text, or "".
func FindEmail(text string) string {
	return emailPattern.FindString(text)
}
