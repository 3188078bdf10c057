package markup

import "strings"

// Run is one piece of a fragment.
//
// Plain runs have an empty Class and hold Text. Styled runs have a Class and
// a Match. A styled run either shows Text (hidden-delimiter markers) or wraps
// Children (whole-leaf markers).
type Run struct {
	Class    string
	Text     string
	Match    string
	Children []Run
}

// Styled reports whether the run carries a marker class.
func (r Run) Styled() bool { return r.Class != "" }

// VisibleText returns the text the run displays.
func (r Run) VisibleText() string {
	if len(r.Children) == 0 {
		return r.Text
	}
	var b strings.Builder
	for _, c := range r.Children {
		b.WriteString(c.VisibleText())
	}
	return b.String()
}

// Fragment is the synthesized replacement for one text leaf.
type Fragment struct {
	Runs []Run
}

// Unchanged reports whether the fragment is a single plain run, meaning the
// leaf must be left as it is.
func (f Fragment) Unchanged() bool {
	return len(f.Runs) == 1 && !f.Runs[0].Styled()
}

// VisibleText concatenates the visible text of all runs.
func (f Fragment) VisibleText() string {
	var b strings.Builder
	for _, r := range f.Runs {
		b.WriteString(r.VisibleText())
	}
	return b.String()
}

// Classes returns the marker classes in the fragment, outermost first.
func (f Fragment) Classes() []string {
	var out []string
	var walk func([]Run)
	walk = func(runs []Run) {
		for _, r := range runs {
			if r.Styled() {
				out = append(out, r.Class)
			}
			walk(r.Children)
		}
	}
	walk(f.Runs)
	return out
}
