package rewrite

import (
	"fmt"
	"sync"

	"github.com/alnah/go-regexmark/internal/htmldoc"
	"github.com/alnah/go-regexmark/internal/markup"
	"github.com/alnah/go-regexmark/internal/ruleset"
)

var defaultSanitizer = sync.OnceValue(markup.NewSanitizer)

// HTML runs a pass over an HTML document or fragment and renders the
// result in the same shape. With no active rule the content is returned
// as is.
func HTML(content string, set *ruleset.Set, opts ...Option) (string, Stats, error) {
	if set.Len() == 0 {
		return content, Stats{}, nil
	}

	doc, err := htmldoc.Parse(content)
	if err != nil {
		return "", Stats{}, fmt.Errorf("parsing html: %w", err)
	}

	stats := Rewrite(NewHTMLTree(doc.Root, defaultSanitizer()), set, opts...)
	if stats.Replaced == 0 {
		return content, stats, nil
	}

	out, err := doc.Render()
	if err != nil {
		return "", stats, fmt.Errorf("rendering html: %w", err)
	}
	return out, stats, nil
}
