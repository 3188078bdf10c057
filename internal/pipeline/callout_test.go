package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/alnah/go-regexmark/internal/htmldoc"
)

func TestTransformCallouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		count   int
		want    []string
		exclude []string
	}{
		{
			name:  "title and body split on line break",
			html:  "<blockquote>\n<p>[!note] My title<br />\nBody text</p>\n</blockquote>",
			count: 1,
			want: []string{
				`<div class="callout" data-callout="note">`,
				`<div class="callout-title-inner">My title</div>`,
				`<div class="callout-content"><p>Body text</p>`,
			},
			exclude: []string{"<blockquote>", "[!note]"},
		},
		{
			name:  "title without body",
			html:  "<blockquote><p>[!warning] Careful</p></blockquote>",
			count: 1,
			want:  []string{`<div class="callout-title-inner">Careful</div>`},
		},
		{
			name:  "default title from type",
			html:  "<blockquote><p>[!TIP]</p><p>More</p></blockquote>",
			count: 1,
			want: []string{
				`data-callout="tip"`,
				`<div class="callout-title-inner">Tip</div>`,
				`<p>More</p>`,
			},
		},
		{
			name:  "inline markup kept in title",
			html:  "<blockquote><p>[!info] Use <strong>this</strong><br />now</p></blockquote>",
			count: 1,
			want:  []string{`<div class="callout-title-inner">Use <strong>this</strong></div>`},
		},
		{
			name:  "soft wrapped title line",
			html:  "<blockquote><p>[!note] Title\nbody</p></blockquote>",
			count: 1,
			want: []string{
				`<div class="callout-title-inner">Title</div>`,
				`<p>body</p>`,
			},
		},
		{
			name:  "fold sign",
			html:  "<blockquote><p>[!faq]- Closed</p></blockquote>",
			count: 1,
			want:  []string{`data-callout-fold="-"`},
		},
		{
			name:  "plain blockquote untouched",
			html:  "<blockquote><p>Just a quote</p></blockquote>",
			count: 0,
			want:  []string{"<blockquote><p>Just a quote</p></blockquote>"},
		},
		{
			name:  "nested callouts",
			html:  "<blockquote><p>[!note] Outer</p><blockquote><p>[!tip] Inner</p></blockquote></blockquote>",
			count: 2,
			want:  []string{`data-callout="note"`, `data-callout="tip"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := htmldoc.Parse(tt.html)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if n := TransformCallouts(doc.Root); n != tt.count {
				t.Errorf("TransformCallouts() = %d, want %d", n, tt.count)
			}
			got, err := doc.Render()
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("rendered = %q, want to contain %q", got, w)
				}
			}
			for _, e := range tt.exclude {
				if strings.Contains(got, e) {
					t.Errorf("rendered = %q, should not contain %q", got, e)
				}
			}
		})
	}
}

func TestTransformCallouts_FromMarkdown(t *testing.T) {
	t.Parallel()

	out, err := NewGoldmarkConverter().ToHTML(context.Background(), "> [!note] Heads up\n> Body line", "")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	doc, err := htmldoc.Parse(out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if n := TransformCallouts(doc.Root); n != 1 {
		t.Fatalf("TransformCallouts() = %d, want 1", n)
	}
	got, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, `<div class="callout-title-inner">Heads up</div>`) {
		t.Errorf("rendered = %q, want callout title", got)
	}
}
