package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-regexmark/internal/htmldoc"
)

// StyleAttr marks the <style> element added by InjectStyle.
const StyleAttr = "data-regexmark"

// InjectStyle appends a <style> block holding css to the document head.
// Without a head the block goes first in body, or first under root for a
// fragment. A block already carrying StyleAttr is reused instead. Empty
// css is a no-op. It reports whether a block was written.
func InjectStyle(root *html.Node, css string) bool {
	if root == nil || strings.TrimSpace(css) == "" {
		return false
	}
	text := &html.Node{Type: html.TextNode, Data: sanitizeCSS(css)}

	if prev := findStyleBlock(root); prev != nil {
		for c := prev.FirstChild; c != nil; c = prev.FirstChild {
			prev.RemoveChild(c)
		}
		prev.AppendChild(text)
		return true
	}

	style := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr:     []html.Attribute{{Key: StyleAttr}},
	}
	style.AppendChild(text)

	if head := findElement(root, atom.Head); head != nil {
		head.AppendChild(style)
		return true
	}
	parent := root
	if body := findElement(root, atom.Body); body != nil {
		parent = body
	}
	parent.InsertBefore(style, parent.FirstChild)
	return true
}

// sanitizeCSS escapes "</" so the stylesheet cannot close its <style>
// element. Style children are rendered verbatim.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// findStyleBlock returns the <style> element InjectStyle added, if any.
func findStyleBlock(root *html.Node) *html.Node {
	var found *html.Node
	htmldoc.Walk(root, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			if _, ok := htmldoc.Attr(n, StyleAttr); ok {
				found = n
			}
			return false
		}
		return true
	})
	return found
}

func findElement(root *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	htmldoc.Walk(root, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = n
			return false
		}
		return true
	})
	return found
}
