package rewrite

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/alnah/go-regexmark/internal/htmldoc"
	"github.com/alnah/go-regexmark/internal/markup"
)

// CandidateSelector selects the block elements a pass looks at.
const CandidateSelector = "p, li, h1, h2, h3, h4, h5, h6, td, .callout-title-inner, .table-cell-wrapper"

// cellWrapperSelector also matches the tree root itself, for hosts that hand
// over a single table cell.
const cellWrapperSelector = ".table-cell-wrapper"

var errEmptyFragment = errors.New("sanitized fragment is empty")

// HTMLTree adapts a parsed HTML tree to Tree. It is not safe for concurrent
// use; passes over the same tree must be serialized.
type HTMLTree struct {
	root      *html.Node
	sanitizer *markup.Sanitizer
	generated map[*html.Node]struct{}
}

var _ Tree = (*HTMLTree)(nil)

// NewHTMLTree wraps root, which may be a document node or an element.
func NewHTMLTree(root *html.Node, sanitizer *markup.Sanitizer) *HTMLTree {
	if sanitizer == nil {
		sanitizer = markup.NewSanitizer()
	}
	return &HTMLTree{
		root:      root,
		sanitizer: sanitizer,
		generated: make(map[*html.Node]struct{}),
	}
}

// Candidates returns matching elements in document order.
func (t *HTMLTree) Candidates() []Element {
	if t.root == nil {
		return nil
	}

	doc := goquery.NewDocumentFromNode(t.root)
	var out []Element
	if t.root.Type == html.ElementNode && doc.Is(cellWrapperSelector) {
		out = append(out, &htmlElement{tree: t, node: t.root})
	}
	doc.Find(CandidateSelector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, &htmlElement{tree: t, node: s.Get(0)})
	})
	return out
}

type htmlElement struct {
	tree *HTMLTree
	node *html.Node
}

func (e *htmlElement) Text() string {
	return goquery.NewDocumentFromNode(e.node).Text()
}

func (e *htmlElement) Leaves() []Leaf {
	var out []Leaf
	htmldoc.Walk(e.node, func(n *html.Node) bool {
		if _, ok := e.tree.generated[n]; ok {
			return false
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return false
		}
		if n.Type == html.TextNode {
			out = append(out, htmlLeaf{tree: e.tree, node: n})
		}
		return true
	})
	return out
}

// htmlLeaf is a value type so two lookups of the same node compare equal.
type htmlLeaf struct {
	tree *HTMLTree
	node *html.Node
}

func (l htmlLeaf) Text() string { return l.node.Data }

func (l htmlLeaf) Replace(f markup.Fragment) error {
	parent := l.node.Parent
	if parent == nil {
		return errors.New("text node is detached")
	}

	nodes, err := l.tree.sanitizer.Nodes(f)
	if err != nil {
		return err
	}
	if len(nodes) == 0 && strings.TrimSpace(f.VisibleText()) != "" {
		return errEmptyFragment
	}

	for _, n := range nodes {
		parent.InsertBefore(n, l.node)
		l.tree.generated[n] = struct{}{}
	}
	parent.RemoveChild(l.node)
	return nil
}
