package pipeline

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// calloutMarker matches "[!type]" with an optional fold sign and the rest of
// the first line as title.
var calloutMarker = regexp.MustCompile(`^\[!([A-Za-z0-9_-]+)\]([+-]?)[ \t]*([^\n]*)`)

// TransformCallouts rewrites blockquotes that start with a callout marker
// into callout markup:
//
//	<div class="callout" data-callout="note">
//	  <div class="callout-title"><div class="callout-title-inner">Title</div></div>
//	  <div class="callout-content">...</div>
//	</div>
//
// It returns the number of callouts converted. Nested callouts are handled
// from the outermost in.
func TransformCallouts(root *html.Node) int {
	if root == nil {
		return 0
	}

	var quotes []*html.Node
	goquery.NewDocumentFromNode(root).Find("blockquote").Each(func(_ int, s *goquery.Selection) {
		quotes = append(quotes, s.Get(0))
	})

	count := 0
	for _, q := range quotes {
		if convertCallout(q) {
			count++
		}
	}
	return count
}

func convertCallout(quote *html.Node) bool {
	first := firstElementChild(quote)
	if first == nil || first.DataAtom != atom.P {
		return false
	}
	lead := first.FirstChild
	if lead == nil || lead.Type != html.TextNode {
		return false
	}
	m := calloutMarker.FindStringSubmatchIndex(lead.Data)
	if m == nil {
		return false
	}

	kind := strings.ToLower(lead.Data[m[2]:m[3]])
	fold := lead.Data[m[4]:m[5]]
	titleText := lead.Data[m[6]:m[7]]
	rest := lead.Data[m[1]:]

	callout := element(atom.Div, "callout")
	callout.Attr = append(callout.Attr, html.Attribute{Key: "data-callout", Val: kind})
	if fold != "" {
		callout.Attr = append(callout.Attr, html.Attribute{Key: "data-callout-fold", Val: fold})
	}

	title := element(atom.Div, "callout-title")
	inner := element(atom.Div, "callout-title-inner")
	title.AppendChild(inner)
	callout.AppendChild(title)

	content := element(atom.Div, "callout-content")
	callout.AppendChild(content)

	// Title: the rest of the marker line plus inline siblings up to the
	// first line break.
	if titleText != "" {
		inner.AppendChild(&html.Node{Type: html.TextNode, Data: titleText})
	}
	first.RemoveChild(lead)
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.P, Data: "p"}
	if rest != "" {
		// The marker line ended inside this text node: the remainder
		// starts the body.
		body.AppendChild(&html.Node{Type: html.TextNode, Data: strings.TrimPrefix(rest, "\n")})
		moveChildren(first, body)
	} else {
		for c := first.FirstChild; c != nil; c = first.FirstChild {
			first.RemoveChild(c)
			if c.Type == html.ElementNode && c.DataAtom == atom.Br {
				break
			}
			inner.AppendChild(c)
		}
		moveChildren(first, body)
	}
	if inner.FirstChild == nil {
		inner.AppendChild(&html.Node{Type: html.TextNode, Data: defaultCalloutTitle(kind)})
	}
	trimLeadingNewline(body)
	if body.FirstChild != nil {
		content.AppendChild(body)
	}

	quote.RemoveChild(first)
	moveChildren(quote, content)

	quote.Parent.InsertBefore(callout, quote)
	quote.Parent.RemoveChild(quote)
	return true
}

func defaultCalloutTitle(kind string) string {
	if kind == "" {
		return kind
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}

func element(a atom.Atom, class string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
}

func firstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func moveChildren(from, to *html.Node) {
	for c := from.FirstChild; c != nil; c = from.FirstChild {
		from.RemoveChild(c)
		to.AppendChild(c)
	}
}

func trimLeadingNewline(n *html.Node) {
	c := n.FirstChild
	if c == nil || c.Type != html.TextNode {
		return
	}
	c.Data = strings.TrimLeft(c.Data, "\n")
	if c.Data == "" {
		n.RemoveChild(c)
		trimLeadingNewline(n)
	}
}
