package markup

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	xhtml "golang.org/x/net/html"

	"github.com/alnah/go-regexmark/internal/htmldoc"
)

// ContentsAttr holds the full matched text on every marker.
const ContentsAttr = "data-contents"

// HTML renders the fragment as a container span holding its runs.
// Text and attribute values are escaped; the result still has to be
// sanitized before it is parsed into a document.
func (f Fragment) HTML() string {
	var b strings.Builder
	b.WriteString("<span>")
	writeRuns(&b, f.Runs)
	b.WriteString("</span>")
	return b.String()
}

func writeRuns(b *strings.Builder, runs []Run) {
	for _, r := range runs {
		if !r.Styled() {
			b.WriteString(html.EscapeString(r.Text))
			continue
		}
		b.WriteString(`<span class="`)
		b.WriteString(html.EscapeString(r.Class))
		b.WriteString(`" ` + ContentsAttr + `="`)
		b.WriteString(html.EscapeString(r.Match))
		b.WriteString(`">`)
		if len(r.Children) > 0 {
			writeRuns(b, r.Children)
		} else {
			b.WriteString(html.EscapeString(r.Text))
		}
		b.WriteString("</span>")
	}
}

// Sanitizer restricts generated markup to marker spans.
// It is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer allowing only span elements with a
// class list and the data-contents attribute.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowNoAttrs().OnElements("span")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span")
	p.AllowAttrs(ContentsAttr).OnElements("span")
	return &Sanitizer{policy: p}
}

// Sanitize strips everything the policy does not allow.
func (s *Sanitizer) Sanitize(markup string) string {
	return s.policy.Sanitize(markup)
}

// Nodes renders, sanitizes and parses the fragment into detached nodes
// ready to replace a text leaf.
func (s *Sanitizer) Nodes(f Fragment) ([]*xhtml.Node, error) {
	clean := s.Sanitize(f.HTML())
	return xhtml.ParseFragment(strings.NewReader(clean), htmldoc.BodyContext())
}
