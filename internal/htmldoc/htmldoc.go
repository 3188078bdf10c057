// Package htmldoc parses HTML that may be a full document or a bare
// fragment, and renders it back in the same shape.
package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML tree.
//
// For fragments, Root is a synthetic document node whose children are the
// top-level fragment nodes. Render emits only those children, so no
// <html><body> wrapper is added.
type Document struct {
	Root     *html.Node
	Fragment bool
}

// IsFullDocument reports whether content starts like a complete HTML
// document rather than a fragment.
func IsFullDocument(content string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html")
}

// BodyContext returns a detached body element used as the parsing context
// for fragments.
func BodyContext() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
}

// Parse parses content as a full document or a fragment.
func Parse(content string) (*Document, error) {
	if IsFullDocument(content) {
		root, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return nil, err
		}
		return &Document{Root: root}, nil
	}

	nodes, err := html.ParseFragment(strings.NewReader(content), BodyContext())
	if err != nil {
		return nil, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return &Document{Root: container, Fragment: true}, nil
}

// Render serializes the document back to a string.
func (d *Document) Render() (string, error) {
	var buf strings.Builder

	if d.Fragment {
		for c := d.Root.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, d.Root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Walk calls fn for n and every descendant in document order. Returning
// false from fn skips the node's children.
func Walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, fn)
	}
}

// Attr returns the value of the named attribute and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
