// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// node is an element of the parsed document. Character data and child
// elements are kept in document order so nested markup (e.g. <i> inside
// a title) flattens back to the text a reader sees.
type node struct {
	name     string
	children []*node
	segments []segment
}

type segment struct {
	text  string
	child *node
}

// parseTree decodes data into a synthetic document node whose children
// are the top-level elements.
func parseTree(data []byte) (*node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = charset.NewReaderLabel
	doc := &node{}
	stack := []*node{doc}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}

		top := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			if top == doc && len(doc.children) > 0 {
				return nil, &ParseError{Err: fmt.Errorf("second root element <%s>", t.Name.Local)}
			}
			n := &node{name: t.Name.Local}
			top.children = append(top.children, n)
			top.segments = append(top.segments, segment{child: n})
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if top == doc {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, &ParseError{Err: errors.New("text outside the root element")}
				}
				continue
			}
			top.segments = append(top.segments, segment{text: string(t)})
		}
	}

	if len(doc.children) == 0 {
		return nil, &ParseError{Err: errors.New("no root element")}
	}
	return doc, nil
}

// child returns the first direct child named name, or nil.
func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// find returns the first descendant named name in document order, or nil.
func (n *node) find(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
		if found := c.find(name); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every descendant named name in document order.
func (n *node) findAll(name string) []*node {
	var out []*node
	for _, c := range n.children {
		if c.name == name {
			out = append(out, c)
		}
		out = append(out, c.findAll(name)...)
	}
	return out
}

// text returns the element's flattened character data with runs of
// whitespace collapsed. A nil node yields "".
func (n *node) text() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.writeText(&b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func (n *node) writeText(b *strings.Builder) {
	for _, s := range n.segments {
		if s.child != nil {
			s.child.writeText(b)
			continue
		}
		b.WriteString(s.text)
	}
}
