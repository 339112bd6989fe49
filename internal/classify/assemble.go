// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Assemble builds the PaperRecord for one extracted article. pmid is
// supplied by the caller and is not read from the XML.
func (c *Classifier) Assemble(pmid string, a types.Article) types.PaperRecord {
	rec := types.PaperRecord{
		PubmedID:            pmid,
		Title:               types.NotAvailable,
		PublicationDate:     types.NotAvailable,
		NonAcademicAuthors:  []string{},
		CompanyAffiliations: []string{},
	}
	if a.HasTitle {
		rec.Title = a.Title
	}
	if date, ok := a.Date.Compose(); ok {
		rec.PublicationDate = date
	}

	var affiliationEmail string
	for _, raw := range a.Authors {
		ca, ok := c.ClassifyAuthor(raw)
		if !ok {
			continue
		}
		if ca.IsNonAcademic {
			rec.NonAcademicAuthors = append(rec.NonAcademicAuthors, ca.DisplayName)
		}
		if ca.IsCompany {
			if c.listMode == types.CompanyByAffiliation {
				rec.CompanyAffiliations = append(rec.CompanyAffiliations, ca.CompanyAffiliations...)
			} else {
				rec.CompanyAffiliations = append(rec.CompanyAffiliations, ca.DisplayName)
			}
		}
		if affiliationEmail == "" {
			affiliationEmail = ca.EmailFound
		}
	}

	switch c.scope {
	case types.EmailFromDocument:
		rec.CorrespondingEmail = FindEmail(a.DocumentText)
	default:
		rec.CorrespondingEmail = affiliationEmail
	}
	return rec
}

// Render converts rec to its tabular text form. Lists are joined with
// ", "; empty lists become the configured empty-list text and a missing
// email becomes types.NotAvailable.
func (c *Classifier) Render(rec types.PaperRecord) types.Row {
	row := types.Row{
		PubmedID:            rec.PubmedID,
		Title:               orNotAvailable(rec.Title),
		PublicationDate:     orNotAvailable(rec.PublicationDate),
		NonAcademicAuthors:  c.joinList(rec.NonAcademicAuthors),
		CompanyAffiliations: c.joinList(rec.CompanyAffiliations),
		CorrespondingEmail:  orNotAvailable(rec.CorrespondingEmail),
	}
	return row
}

// Fallback returns the placeholder row for pmid under this classifier's
// empty-list convention.
func (c *Classifier) Fallback(pmid string) types.Row {
	return types.FallbackRow(pmid, c.emptyList)
}

// EmptyList returns the text used for empty author lists.
func (c *Classifier) EmptyList() string {
	return c.emptyList
}

func (c *Classifier) joinList(items []string) string {
	if len(items) == 0 {
		return c.emptyList
	}
	return strings.Join(items, ", ")
}

func orNotAvailable(s string) string {
	if s == "" {
		return types.NotAvailable
	}
	return s
}
