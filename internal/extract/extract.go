// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract parses one PubMed article's XML into the flat fields the
// classifier works on: title, publication date parts, authors with their
// affiliation texts, and the raw document text.
package extract

import "github.com/pdiddy/pubmed-papers/pkg/types"

// articleRoots are the element names accepted as the article node, in
// order of preference.
var articleRoots = []string{"PubmedArticle", "PubmedBookArticle", "Article"}

// Extract parses data and returns the article's fields. Missing fields are
// not errors; they are left empty for the assembler to fill with sentinels.
// Malformed XML yields a *ParseError and a document without an article
// node yields a *NotFoundError.
func Extract(data []byte) (types.Article, error) {
	doc, err := parseTree(data)
	if err != nil {
		return types.Article{}, err
	}

	article := locateArticle(doc)
	if article == nil {
		return types.Article{}, &NotFoundError{Roots: articleRoots}
	}

	a := types.Article{DocumentText: string(data)}

	if title := article.find("ArticleTitle").text(); title != "" {
		a.Title = title
		a.HasTitle = true
	}

	if pubDate := article.find("PubDate"); pubDate != nil {
		a.Date = types.DateParts{
			Year:  pubDate.child("Year").text(),
			Month: pubDate.child("Month").text(),
			Day:   pubDate.child("Day").text(),
		}
	}

	for _, an := range article.findAll("Author") {
		author, ok := readAuthor(an)
		if !ok {
			continue
		}
		a.Authors = append(a.Authors, author)
	}

	return a, nil
}

func locateArticle(doc *node) *node {
	for _, name := range articleRoots {
		if n := doc.find(name); n != nil {
			return n
		}
	}
	return nil
}

// readAuthor returns the author's names and affiliation texts. ok is false
// when the author has neither a personal nor a collective name.
func readAuthor(n *node) (types.RawAuthor, bool) {
	foreName := n.child("ForeName").text()
	if foreName == "" {
		foreName = n.child("FirstName").text()
	}
	a := types.RawAuthor{
		LastName: n.child("LastName").text(),
		ForeName: foreName,
	}
	if a.LastName == "" && a.ForeName == "" {
		a.CollectiveName = n.child("CollectiveName").text()
	}
	if !a.HasName() {
		return types.RawAuthor{}, false
	}

	for _, aff := range n.findAll("Affiliation") {
		if text := aff.text(); text != "" {
			a.Affiliations = append(a.Affiliations, text)
		}
	}
	return a, true
}
