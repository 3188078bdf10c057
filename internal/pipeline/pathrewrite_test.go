package pipeline

import (
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-regexmark/internal/htmldoc"
)

func testSourceDir() string {
	if runtime.GOOS == "windows" {
		return `C:\notes`
	}
	return "/notes"
}

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	sourceDir := testSourceDir()

	tests := []struct {
		name      string
		html      string
		sourceDir string
		want      string
	}{
		{"relative image", `<img src="./img/a.png">`, sourceDir, `src="file://`},
		{"relative image without dot slash", `<img src="img/a.png">`, sourceDir, `src="file://`},
		{"relative link", `<a href="other.md">x</a>`, sourceDir, `href="file://`},
		{"absolute path unchanged", `<img src="/abs/a.png">`, sourceDir, `src="/abs/a.png"`},
		{"https unchanged", `<img src="https://example.com/a.png">`, sourceDir, `src="https://example.com/a.png"`},
		{"data URI unchanged", `<img src="data:image/png;base64,AA">`, sourceDir, `src="data:image/png;base64,AA"`},
		{"protocol relative unchanged", `<img src="//cdn.example.com/a.png">`, sourceDir, `src="//cdn.example.com/a.png"`},
		{"anchor unchanged", `<a href="#top">x</a>`, sourceDir, `href="#top"`},
		{"mailto unchanged", `<a href="mailto:a@b.c">x</a>`, sourceDir, `href="mailto:a@b.c"`},
		{"vault link unchanged", `<a href="obsidian://open?file=x">x</a>`, sourceDir, `href="obsidian://open?file=x"`},
		{"video unchanged", `<video src="./v.mp4"></video>`, sourceDir, `src="./v.mp4"`},
		{"script unchanged", `<script src="./s.js"></script>`, sourceDir, `src="./s.js"`},
		{"empty src unchanged", `<img src="">`, sourceDir, `src=""`},
		{"traversal blocked", `<img src="../../../etc/passwd">`, sourceDir, `src="../../../etc/passwd"`},
		{"traversal in middle blocked", `<img src="img/../../../etc/passwd">`, sourceDir, `src="img/../../../etc/passwd"`},
		{"spaces encoded", `<img src="./my images/a.png">`, sourceDir, `my%20images`},
		{"hash encoded", `<img src="./file#1.png">`, sourceDir, `file%231.png`},
		{"attributes kept", `<img src="./a.png" alt="Logo" width="100">`, sourceDir, `alt="Logo" width="100"`},
		{"empty source dir unchanged", `<img src="./a.png">`, "", `src="./a.png"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, tt.sourceDir)
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("RewriteRelativePaths() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestRewriteRelativePaths_DocumentShape(t *testing.T) {
	t.Parallel()

	sourceDir := testSourceDir()

	full, err := RewriteRelativePaths("<!DOCTYPE html><html><head></head><body><img src=\"a.png\"></body></html>", sourceDir)
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}
	if !strings.Contains(full, "<html>") || !strings.Contains(full, `src="file://`) {
		t.Errorf("full document = %q, want structure kept and path rewritten", full)
	}

	frag, err := RewriteRelativePaths(`<p>Hello</p><img src="a.png">`, sourceDir)
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}
	if strings.Contains(frag, "<html>") || !strings.HasPrefix(frag, "<p>Hello</p>") {
		t.Errorf("fragment = %q, want no document wrapper", frag)
	}
}

func TestRewritePaths_Count(t *testing.T) {
	t.Parallel()

	doc, err := htmldoc.Parse(`<img src="a.png"><img src="b.png"><img src="https://x/c.png"><a href="d.md">d</a>`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	n, err := RewritePaths(doc.Root, testSourceDir())
	if err != nil {
		t.Fatalf("RewritePaths() error = %v", err)
	}
	if n != 3 {
		t.Errorf("RewritePaths() = %d, want 3", n)
	}
}

func TestIsPathUnderDir(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	tests := []struct {
		path string
		dir  string
		want bool
	}{
		{"/notes/a.png", "/notes", true},
		{"/notes", "/notes", true},
		{"/notes/sub/a.png", "/notes/", true},
		{"/notes-other/a.png", "/notes", false},
		{"/etc/passwd", "/notes", false},
	}

	for _, tt := range tests {
		if got := isPathUnderDir(tt.path, tt.dir); got != tt.want {
			t.Errorf("isPathUnderDir(%q, %q) = %v, want %v", tt.path, tt.dir, got, tt.want)
		}
	}
}
