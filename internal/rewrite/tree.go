package rewrite

import "github.com/alnah/go-regexmark/internal/markup"

// Tree yields the candidate elements of a document, in document order.
type Tree interface {
	Candidates() []Element
}

// Element is a candidate block element.
type Element interface {
	// Text returns the concatenated text of the element's subtree.
	Text() string
	// Leaves returns the element's text leaves in document order,
	// excluding leaves inside markup generated by the current pass.
	Leaves() []Leaf
}

// Leaf is a text node. Implementations must be comparable so the pass can
// recognize a leaf reached through two nested candidates.
type Leaf interface {
	Text() string
	// Replace swaps the leaf for the rendered fragment.
	Replace(f markup.Fragment) error
}
