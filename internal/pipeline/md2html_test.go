package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()

	tests := []struct {
		name     string
		markdown string
		title    string
		want     []string
		exclude  []string
	}{
		{
			name:     "document wrapper with title",
			markdown: "# Hi",
			title:    "Notes",
			want:     []string{"<!DOCTYPE html>", "<title>Notes</title>", `<h1 id="hi">Hi</h1>`},
		},
		{
			name:     "default title",
			markdown: "x",
			want:     []string{"<title>Document</title>"},
		},
		{
			name:     "title escaped",
			markdown: "x",
			title:    "<b>&",
			want:     []string{"<title>&lt;b&gt;&amp;</title>"},
		},
		{
			name:     "hard wraps",
			markdown: "a\nb",
			want:     []string{"a<br />"},
		},
		{
			name:     "gfm table",
			markdown: "| a |\n|---|\n| b |",
			want:     []string{"<table>", "<td>b</td>"},
		},
		{
			name:     "highlight placeholders become mark",
			markdown: "a " + MarkStartPlaceholder + "b" + MarkEndPlaceholder,
			want:     []string{"<mark>b</mark>"},
		},
		{
			name:     "raw html dropped",
			markdown: "<script>alert(1)</script>",
			exclude:  []string{"<script>"},
		},
		{
			name:     "code uses classes",
			markdown: "```go\nfunc main() {}\n```",
			want:     []string{`class="chroma"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.markdown, tt.title)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("ToHTML() = %q, want to contain %q", got, w)
				}
			}
			for _, e := range tt.exclude {
				if strings.Contains(got, e) {
					t.Errorf("ToHTML() = %q, should not contain %q", got, e)
				}
			}
		})
	}
}

func TestGoldmarkConverter_SoftWraps(t *testing.T) {
	t.Parallel()

	got, err := NewGoldmarkConverter(WithHardWraps(false)).ToHTML(context.Background(), "a\nb", "")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if strings.Contains(got, "<br") {
		t.Errorf("ToHTML() = %q, want no line break", got)
	}
}

func TestGoldmarkConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "# x", "")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
