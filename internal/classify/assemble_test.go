// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

func sampleArticle() types.Article {
	return types.Article{
		Title:    "Drug response in cell lines",
		HasTitle: true,
		Date:     types.DateParts{Year: "2020", Month: "Jan"},
		Authors: []types.RawAuthor{
			{ForeName: "Jane", LastName: "Doe", Affiliations: []string{"Acme Pharma Inc, Boston"}},
			{LastName: "Smith", Affiliations: []string{"Department of Biology, State University. smith@state.edu"}},
			{ForeName: "Ola", LastName: "Nordmann", Affiliations: []string{"Genomix Ltd", "Oslo University Hospital"}},
			{CollectiveName: "Consortium X"},
		},
		DocumentText: `<PubmedArticle><Note>first@document.org</Note></PubmedArticle>`,
	}
}

func TestAssemble(t *testing.T) {
	c := defaultClassifier()
	rec := c.Assemble("123", sampleArticle())

	assert.Equal(t, "123", rec.PubmedID)
	assert.Equal(t, "Drug response in cell lines", rec.Title)
	assert.Equal(t, "2020-Jan", rec.PublicationDate)
	assert.Equal(t, []string{"Jane Doe", "Ola Nordmann"}, rec.NonAcademicAuthors)
	assert.Equal(t, []string{"Jane Doe", "Ola Nordmann"}, rec.CompanyAffiliations)
	assert.Equal(t, "smith@state.edu", rec.CorrespondingEmail)
}

func TestAssembleCompanyByAffiliation(t *testing.T) {
	cfg := types.DefaultClassifyConfig()
	cfg.CompanyListMode = types.CompanyByAffiliation
	rec := New(cfg).Assemble("1", sampleArticle())

	assert.Equal(t, []string{"Acme Pharma Inc, Boston", "Genomix Ltd"}, rec.CompanyAffiliations)
}

func TestAssembleDocumentEmailScope(t *testing.T) {
	cfg := types.DefaultClassifyConfig()
	cfg.EmailScope = types.EmailFromDocument
	rec := New(cfg).Assemble("1", sampleArticle())

	assert.Equal(t, "first@document.org", rec.CorrespondingEmail)
}

func TestAssembleSentinels(t *testing.T) {
	c := defaultClassifier()
	rec := c.Assemble("42", types.Article{})

	assert.Equal(t, types.NotAvailable, rec.Title)
	assert.Equal(t, types.NotAvailable, rec.PublicationDate)
	assert.Empty(t, rec.NonAcademicAuthors)
	assert.Empty(t, rec.CompanyAffiliations)
	assert.Empty(t, rec.CorrespondingEmail)

	row := c.Render(rec)
	assert.Equal(t, types.Row{
		PubmedID:            "42",
		Title:               types.NotAvailable,
		PublicationDate:     types.NotAvailable,
		NonAcademicAuthors:  "None",
		CompanyAffiliations: "None",
		CorrespondingEmail:  types.NotAvailable,
	}, row)
}

func TestAssembleKeepsDuplicateAuthors(t *testing.T) {
	a := types.Article{Authors: []types.RawAuthor{
		{LastName: "Twin", Affiliations: []string{"Acme Inc"}},
		{LastName: "Twin", Affiliations: []string{"Acme Inc"}},
	}}
	rec := defaultClassifier().Assemble("7", a)
	assert.Equal(t, []string{"Twin", "Twin"}, rec.NonAcademicAuthors)
	assert.Equal(t, []string{"Twin", "Twin"}, rec.CompanyAffiliations)
}

func TestAssembleDatePartsNeverUnknown(t *testing.T) {
	c := defaultClassifier()
	tests := []struct {
		parts types.DateParts
		want  string
	}{
		{types.DateParts{Year: "2020", Month: "Jan"}, "2020-Jan"},
		{types.DateParts{Year: "2020", Month: "Jan", Day: "05"}, "2020-Jan-05"},
		{types.DateParts{Year: "2021"}, "2021"},
		{types.DateParts{Month: "Mar", Day: "3"}, "Mar-3"},
		{types.DateParts{}, types.NotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			rec := c.Assemble("1", types.Article{Date: tt.parts})
			assert.Equal(t, tt.want, rec.PublicationDate)
			assert.NotContains(t, rec.PublicationDate, "Unknown")
		})
	}
}

func TestAssembleEmailIsIdempotent(t *testing.T) {
	for _, scope := range []types.EmailScope{types.EmailFromAffiliations, types.EmailFromDocument} {
		cfg := types.DefaultClassifyConfig()
		cfg.EmailScope = scope
		c := New(cfg)
		a := sampleArticle()
		first := c.Assemble("1", a).CorrespondingEmail
		second := c.Assemble("1", a).CorrespondingEmail
		assert.Equal(t, first, second, string(scope))
	}
}

func TestRender(t *testing.T) {
	c := defaultClassifier()
	row := c.Render(c.Assemble("99", sampleArticle()))

	assert.Equal(t, "Jane Doe, Ola Nordmann", row.NonAcademicAuthors)
	assert.Equal(t, "Jane Doe, Ola Nordmann", row.CompanyAffiliations)
	assert.Equal(t, "smith@state.edu", row.CorrespondingEmail)
}

func TestRenderEmptyListText(t *testing.T) {
	empty := ""
	cfg := types.DefaultClassifyConfig()
	cfg.EmptyListText = &empty
	c := New(cfg)

	row := c.Render(c.Assemble("5", types.Article{Title: "t", HasTitle: true}))
	assert.Equal(t, "", row.NonAcademicAuthors)
	assert.Equal(t, "", row.CompanyAffiliations)
	assert.Equal(t, c.Fallback("5").NonAcademicAuthors, row.NonAcademicAuthors)
}

func TestRenderNoAuthorsUsesSentinelConsistently(t *testing.T) {
	c := defaultClassifier()
	row := c.Render(c.Assemble("8", types.Article{Title: "No authors", HasTitle: true}))
	assert.Equal(t, row.NonAcademicAuthors, row.CompanyAffiliations)
	assert.Equal(t, types.EmptyListNone, row.NonAcademicAuthors)
	assert.False(t, strings.Contains(row.Title, "Unknown"))
}
