// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NotAvailable is the placeholder for a title, date, or email that could
// not be determined.
const NotAvailable = "Not Available"

// EmptyListNone is the default placeholder for an empty author list column.
const EmptyListNone = "None"

// Column names of the tabular output, in their stable order.
const (
	ColPubmedID            = "PubmedID"
	ColTitle               = "Title"
	ColPublicationDate     = "Publication Date"
	ColNonAcademicAuthors  = "Non-Academic Authors"
	ColCompanyAffiliations = "Company Affiliations"
	ColCorrespondingEmail  = "Corresponding Author Email"
)

// Columns returns the output header in column order.
func Columns() []string {
	return []string{
		ColPubmedID,
		ColTitle,
		ColPublicationDate,
		ColNonAcademicAuthors,
		ColCompanyAffiliations,
		ColCorrespondingEmail,
	}
}

// PaperRecord is the normalized record for one publication. It is built
// once from a single article and the caller-supplied PubMed ID.
type PaperRecord struct {
	PubmedID        string `json:"pubmed_id" yaml:"pubmed_id"`
	Title           string `json:"title" yaml:"title"`
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors holds display names in author order.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations holds display names or raw affiliation texts,
	// depending on the configured CompanyListMode.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is empty when no email was found.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}

// Row is a PaperRecord rendered to text, one field per output column.
// Every field holds either a value or a sentinel, never an empty marker
// for missing data.
type Row struct {
	PubmedID            string `json:"pubmed_id" yaml:"pubmed_id"`
	Title               string `json:"title" yaml:"title"`
	PublicationDate     string `json:"publication_date" yaml:"publication_date"`
	NonAcademicAuthors  string `json:"non_academic_authors" yaml:"non_academic_authors"`
	CompanyAffiliations string `json:"company_affiliations" yaml:"company_affiliations"`
	CorrespondingEmail  string `json:"corresponding_email" yaml:"corresponding_email"`
}

// Values returns the row's fields in column order.
func (r Row) Values() []string {
	return []string{
		r.PubmedID,
		r.Title,
		r.PublicationDate,
		r.NonAcademicAuthors,
		r.CompanyAffiliations,
		r.CorrespondingEmail,
	}
}

// FallbackRow returns the placeholder row for an ID whose article could
// not be fetched or parsed.
func FallbackRow(pmid, emptyList string) Row {
	return Row{
		PubmedID:            pmid,
		Title:               NotAvailable,
		PublicationDate:     NotAvailable,
		NonAcademicAuthors:  emptyList,
		CompanyAffiliations: emptyList,
		CorrespondingEmail:  NotAvailable,
	}
}
