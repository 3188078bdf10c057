package rewrite

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnah/go-regexmark/internal/markup"
	"github.com/alnah/go-regexmark/internal/ruleset"
)

// In-memory tree used to exercise the pass without HTML.

type fakeTree struct {
	elements []*fakeElement
}

func (t *fakeTree) Candidates() []Element {
	out := make([]Element, len(t.elements))
	for i, e := range t.elements {
		out[i] = e
	}
	return out
}

type fakeElement struct {
	leaves []*fakeLeaf
	calls  int
}

func (e *fakeElement) Text() string {
	var s string
	for _, l := range e.leaves {
		s += l.text
	}
	return s
}

func (e *fakeElement) Leaves() []Leaf {
	e.calls++
	out := make([]Leaf, len(e.leaves))
	for i, l := range e.leaves {
		out[i] = l
	}
	return out
}

type fakeLeaf struct {
	text     string
	replaced *markup.Fragment
	fail     bool
}

func (l *fakeLeaf) Text() string { return l.text }

func (l *fakeLeaf) Replace(f markup.Fragment) error {
	if l.fail {
		return errors.New("boom")
	}
	l.replaced = &f
	return nil
}

func compile(rules ...ruleset.Rule) *ruleset.Set {
	return ruleset.Compile(rules)
}

var (
	boldRule = ruleset.Rule{Regex: `{{open:\*\*}}(.*?){{close:\*\*}}`, Class: "bold-mark", Hide: true}
	todoRule = ruleset.Rule{Regex: `TODO`, Class: "todo"}
)

func TestRewrite_ReplacesMatchingLeaves(t *testing.T) {
	t.Parallel()

	hit := &fakeLeaf{text: "say **hi** now"}
	miss := &fakeLeaf{text: " plain"}
	tree := &fakeTree{elements: []*fakeElement{{leaves: []*fakeLeaf{hit, miss}}}}

	stats := Rewrite(tree, compile(boldRule))

	require.NotNil(t, hit.replaced)
	assert.Equal(t, "say hi now", hit.replaced.VisibleText())
	assert.Nil(t, miss.replaced)
	assert.Equal(t, Stats{Candidates: 1, Qualified: 1, Leaves: 2, Replaced: 1}, stats)
}

func TestRewrite_SkipsElementsThatDoNotQualify(t *testing.T) {
	t.Parallel()

	el := &fakeElement{leaves: []*fakeLeaf{{text: "nothing here"}}}
	stats := Rewrite(&fakeTree{elements: []*fakeElement{el}}, compile(todoRule))

	assert.Equal(t, 0, el.calls, "leaves of a non-qualifying element are never collected")
	assert.Equal(t, Stats{Candidates: 1}, stats)
}

func TestRewrite_QualifiedElementWithoutMatchingLeaf(t *testing.T) {
	t.Parallel()

	// "TODO" only exists across two leaves.
	a, b := &fakeLeaf{text: "TO"}, &fakeLeaf{text: "DO"}
	stats := Rewrite(&fakeTree{elements: []*fakeElement{{leaves: []*fakeLeaf{a, b}}}}, compile(todoRule))

	assert.Nil(t, a.replaced)
	assert.Nil(t, b.replaced)
	assert.Equal(t, 1, stats.Qualified)
	assert.Equal(t, 0, stats.Replaced)
}

func TestRewrite_LeafSharedByNestedCandidatesVisitedOnce(t *testing.T) {
	t.Parallel()

	shared := &fakeLeaf{text: "TODO"}
	tree := &fakeTree{elements: []*fakeElement{
		{leaves: []*fakeLeaf{shared}},
		{leaves: []*fakeLeaf{shared}},
	}}

	stats := Rewrite(tree, compile(todoRule))

	assert.Equal(t, 1, stats.Leaves)
	assert.Equal(t, 1, stats.Replaced)
}

func TestRewrite_WhitespaceLeavesUntouched(t *testing.T) {
	t.Parallel()

	ws := &fakeLeaf{text: "\n  "}
	tree := &fakeTree{elements: []*fakeElement{{leaves: []*fakeLeaf{ws, {text: "x"}}}}}

	Rewrite(tree, compile(ruleset.Rule{Regex: `[\s\S]*`, Class: "any"}))

	assert.Nil(t, ws.replaced)
}

func TestRewrite_ReplaceFailureIsCountedNotFatal(t *testing.T) {
	t.Parallel()

	bad := &fakeLeaf{text: "TODO a", fail: true}
	good := &fakeLeaf{text: "TODO b"}
	tree := &fakeTree{elements: []*fakeElement{{leaves: []*fakeLeaf{bad, good}}}}

	var buf bytes.Buffer
	stats := Rewrite(tree, compile(todoRule), WithLogger(zerolog.New(&buf)))

	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Replaced)
	assert.NotNil(t, good.replaced)
	assert.Contains(t, buf.String(), `"classes":["todo"]`)
}

func TestRewrite_NoActiveRules(t *testing.T) {
	t.Parallel()

	leaf := &fakeLeaf{text: "TODO"}
	tree := &fakeTree{elements: []*fakeElement{{leaves: []*fakeLeaf{leaf}}}}

	tests := []struct {
		name string
		set  *ruleset.Set
	}{
		{"nil set", nil},
		{"empty set", compile()},
		{"only invalid rules", compile(ruleset.Rule{Regex: "(", Class: "x"}, ruleset.Rule{Regex: "[^x]", Class: "y"})},
		{"blank class", compile(ruleset.Rule{Regex: "TODO", Class: " "})},
		{"invalid class", compile(ruleset.Rule{Regex: "TODO", Class: "a:b"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, Stats{}, Rewrite(tree, tt.set))
		})
	}
	assert.Nil(t, leaf.replaced)
}

func TestRewrite_NilTree(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Stats{}, Rewrite(nil, compile(todoRule)))
}
