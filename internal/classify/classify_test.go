// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

func defaultClassifier() *Classifier {
	return New(types.DefaultClassifyConfig())
}

func TestIsAcademic(t *testing.T) {
	c := defaultClassifier()
	tests := []struct {
		text string
		want bool
	}{
		{"Harvard University, Cambridge, MA", true},
		{"MASSACHUSETTS GENERAL HOSPITAL", true},
		{"Department of Chemistry", true},
		{"Broad Institute", true},
		{"Center for Vaccine Research", true},
		{"Mayo Clinic", true},
		{"Acme Pharma Inc", false},
		{"Independent consultant, Berlin", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsAcademic(tt.text))
		})
	}
}

func TestIsCompany(t *testing.T) {
	c := defaultClassifier()
	tests := []struct {
		text string
		want bool
	}{
		{"Acme Pharma Inc", true},
		{"Genomix LTD", true},
		{"Novartis Pharmaceuticals", true},
		{"Verily Life Sciences LLC", true},
		{"BioNTech Corp.", true},
		{"Siemens Medical Technology", true},
		{"Department of Biology, State University", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsCompany(tt.text))
		})
	}
}

func TestAcademicKeywordsNeverYieldNonAcademic(t *testing.T) {
	c := defaultClassifier()
	for _, text := range []string{
		"Some UNIVERSITY somewhere",
		"st. mary's hospital",
		"Department Of Surgery",
	} {
		ca, ok := c.ClassifyAuthor(types.RawAuthor{LastName: "X", Affiliations: []string{text}})
		require.True(t, ok)
		assert.False(t, ca.IsNonAcademic, text)
	}
}

func TestCompanyKeywordsAlwaysYieldCompany(t *testing.T) {
	c := defaultClassifier()
	for _, text := range []string{"Foo INC", "Bar Ltd.", "Baz pharma"} {
		ca, ok := c.ClassifyAuthor(types.RawAuthor{LastName: "X", Affiliations: []string{text}})
		require.True(t, ok)
		assert.True(t, ca.IsCompany, text)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		order  types.NameOrder
		author types.RawAuthor
		want   string
		wantOK bool
	}{
		{"first last", types.NameFirstLast, types.RawAuthor{ForeName: "Jane", LastName: "Doe"}, "Jane Doe", true},
		{"last first", types.NameLastFirst, types.RawAuthor{ForeName: "Jane", LastName: "Doe"}, "Doe, Jane", true},
		{"last only", types.NameLastFirst, types.RawAuthor{LastName: "Smith"}, "Smith", true},
		{"fore only", types.NameFirstLast, types.RawAuthor{ForeName: "Cher"}, "Cher", true},
		{"collective", types.NameFirstLast, types.RawAuthor{CollectiveName: "Study Group"}, "Study Group", true},
		{"no name", types.NameFirstLast, types.RawAuthor{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := types.DefaultClassifyConfig()
			cfg.NameOrder = tt.order
			got, ok := New(cfg).DisplayName(tt.author)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyAuthor(t *testing.T) {
	c := defaultClassifier()

	t.Run("company author is also non-academic", func(t *testing.T) {
		ca, ok := c.ClassifyAuthor(types.RawAuthor{
			ForeName: "Jane", LastName: "Doe",
			Affiliations: []string{"Acme Pharma Inc"},
		})
		require.True(t, ok)
		assert.Contains(t, ca.DisplayName, "Jane")
		assert.Contains(t, ca.DisplayName, "Doe")
		assert.True(t, ca.IsNonAcademic)
		assert.True(t, ca.IsCompany)
		assert.Equal(t, []string{"Acme Pharma Inc"}, ca.CompanyAffiliations)
	})

	t.Run("academic author is neither", func(t *testing.T) {
		ca, ok := c.ClassifyAuthor(types.RawAuthor{
			LastName:     "Smith",
			Affiliations: []string{"Department of Biology, State University"},
		})
		require.True(t, ok)
		assert.False(t, ca.IsNonAcademic)
		assert.False(t, ca.IsCompany)
	})

	t.Run("one non-academic affiliation is enough", func(t *testing.T) {
		ca, ok := c.ClassifyAuthor(types.RawAuthor{
			LastName: "Chen",
			Affiliations: []string{
				"Stanford University",
				"Private practice, Palo Alto",
			},
		})
		require.True(t, ok)
		assert.True(t, ca.IsNonAcademic)
		assert.False(t, ca.IsCompany)
	})

	t.Run("academic company lab is company only", func(t *testing.T) {
		ca, ok := c.ClassifyAuthor(types.RawAuthor{
			LastName:     "Ito",
			Affiliations: []string{"Research Laboratories, Takeda Pharma Ltd"},
		})
		require.True(t, ok)
		assert.False(t, ca.IsNonAcademic)
		assert.True(t, ca.IsCompany)
	})

	t.Run("no affiliations is neither", func(t *testing.T) {
		ca, ok := c.ClassifyAuthor(types.RawAuthor{LastName: "Nobody"})
		require.True(t, ok)
		assert.False(t, ca.IsNonAcademic)
		assert.False(t, ca.IsCompany)
		assert.Empty(t, ca.EmailFound)
	})

	t.Run("first email across affiliations", func(t *testing.T) {
		ca, ok := c.ClassifyAuthor(types.RawAuthor{
			LastName: "Roe",
			Affiliations: []string{
				"University of Oslo",
				"Oslo Biotech AS. Electronic address: roe@oslobio.no",
				"second@example.org",
			},
		})
		require.True(t, ok)
		assert.Equal(t, "roe@oslobio.no", ca.EmailFound)
	})
}

func TestFindEmail(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Contact: jane.doe+lab@acme-pharma.co.uk.", "jane.doe+lab@acme-pharma.co.uk"},
		{"<Affiliation>x@y.io</Affiliation>", "x@y.io"},
		{"first a@b.com then c@d.com", "a@b.com"},
		{"no email here @ all", ""},
		{"user@localhost", ""},
		{"bad@domain.c", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, FindEmail(tt.text))
		})
	}
}

func TestNewDefaultsForZeroConfig(t *testing.T) {
	c := New(types.ClassifyConfig{})
	assert.True(t, c.IsAcademic("State University"))
	assert.True(t, c.IsCompany("Acme Inc"))
	assert.Equal(t, types.EmptyListNone, c.EmptyList())

	name, _ := c.DisplayName(types.RawAuthor{ForeName: "A", LastName: "B"})
	assert.Equal(t, "A B", name)
}

func TestCustomKeywords(t *testing.T) {
	cfg := types.DefaultClassifyConfig()
	cfg.AcademicKeywords = []string{"  Academy "}
	cfg.CompanyKeywords = []string{"GmbH"}
	c := New(cfg)

	assert.True(t, c.IsAcademic("Polish Academy of Sciences"))
	assert.False(t, c.IsAcademic("State University"))
	assert.True(t, c.IsCompany("Bayer gmbh"))
	assert.False(t, c.IsCompany("Acme Inc"))
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	c := defaultClassifier()
	lower := "acme pharma inc"
	upper := strings.ToUpper(lower)
	assert.Equal(t, c.IsCompany(lower), c.IsCompany(upper))
	assert.Equal(t, c.IsAcademic(lower), c.IsAcademic(upper))
}
