package markup

import (
	"strings"

	"github.com/alnah/go-regexmark/internal/ruleset"
)

// Synthesize builds the fragment for text from the transforms of one leaf.
//
// Hide transforms are applied first, in order: the first occurrence of the
// full match in the plain text still remaining is replaced by a marker
// showing the captured group. A match that no longer occurs (it overlapped
// an earlier hide match) is dropped. Non-hide transforms then wrap the
// result, the first rule outermost.
//
// With no effective transform the result is the unchanged leaf.
func Synthesize(text string, transforms []ruleset.Transform) Fragment {
	runs := []Run{{Text: text}}

	for _, t := range transforms {
		if t.Hide {
			runs = hide(runs, t)
		}
	}

	for i := len(transforms) - 1; i >= 0; i-- {
		t := transforms[i]
		if t.Hide {
			continue
		}
		runs = []Run{{Class: t.Class, Match: text, Children: runs}}
	}

	return Fragment{Runs: runs}
}

// hide splits the first plain run containing t.Match around a marker.
func hide(runs []Run, t ruleset.Transform) []Run {
	if t.Match == "" {
		return runs
	}
	for i, r := range runs {
		if r.Styled() {
			continue
		}
		idx := strings.Index(r.Text, t.Match)
		if idx < 0 {
			continue
		}

		out := make([]Run, 0, len(runs)+2)
		out = append(out, runs[:i]...)
		if before := r.Text[:idx]; before != "" {
			out = append(out, Run{Text: before})
		}
		out = append(out, Run{Class: t.Class, Text: t.Text, Match: t.Match})
		if after := r.Text[idx+len(t.Match):]; after != "" {
			out = append(out, Run{Text: after})
		}
		return append(out, runs[i+1:]...)
	}
	return runs
}
