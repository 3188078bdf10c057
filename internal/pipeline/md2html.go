package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates Markdown to HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultTitle is used when a document has no title.
const DefaultTitle = "Document"

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// HTMLConverter converts Markdown to a standalone HTML document.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content, title string) (string, error)
}

// GoldmarkConverter converts Markdown with goldmark, GFM extensions and
// chroma syntax highlighting.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

var _ HTMLConverter = (*GoldmarkConverter)(nil)

// ConverterOption configures a GoldmarkConverter.
type ConverterOption func(*converterConfig)

type converterConfig struct {
	hardWraps bool
	style     string
}

// WithHardWraps renders single newlines as <br>. Enabled by default, which
// matches a vault with strict line breaks turned off.
func WithHardWraps(enabled bool) ConverterOption {
	return func(c *converterConfig) { c.hardWraps = enabled }
}

// WithCodeStyle sets the chroma style name. Empty keeps CSS classes only so
// the stylesheet controls code colors.
func WithCodeStyle(style string) ConverterOption {
	return func(c *converterConfig) { c.style = style }
}

// NewGoldmarkConverter creates a converter.
func NewGoldmarkConverter(opts ...ConverterOption) *GoldmarkConverter {
	cfg := converterConfig{hardWraps: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	hl := []highlighting.Option{
		highlighting.WithFormatOptions(chromahtml.WithClasses(cfg.style == "")),
	}
	if cfg.style != "" {
		hl = append(hl, highlighting.WithStyle(cfg.style))
	}

	rendererOpts := []goldmark.Option{}
	if cfg.hardWraps {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(gmhtml.WithHardWraps()))
	}

	// WithUnsafe is not used: raw HTML in notes is dropped, and generated
	// markup only enters the tree through the sanitizer.
	md := goldmark.New(append([]goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(hl...),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithXHTML()),
	}, rendererOpts...)...)

	return &GoldmarkConverter{md: md}
}

// ToHTML converts content and wraps it in an HTML5 document titled title.
// Goldmark has no context support, so conversion runs in a goroutine and
// ctx only bounds the wait.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if title == "" {
		title = DefaultTitle
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		body := ConvertMarkPlaceholders(buf.String())
		done <- result{html: fmt.Sprintf(htmlTemplate, html.EscapeString(title), body)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
