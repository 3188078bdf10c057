package regexmark

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-regexmark/internal/assets"
	"github.com/alnah/go-regexmark/internal/htmldoc"
	"github.com/alnah/go-regexmark/internal/logging"
	"github.com/alnah/go-regexmark/internal/markup"
	"github.com/alnah/go-regexmark/internal/pipeline"
	"github.com/alnah/go-regexmark/internal/rewrite"
	"github.com/alnah/go-regexmark/internal/ruleset"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.Preprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
	_ pdfRenderer                   = (*rodRenderer)(nil)
)

// Renderer runs the rendering pipeline: Markdown conversion, the
// regex-mark pass, style injection and optional PDF output.
// Create with NewRenderer, use Render, and Close when done.
//
// A Renderer is not safe for concurrent use because it owns one browser.
// Use a RendererPool to render in parallel.
type Renderer struct {
	cfg           rendererConfig
	set           *ruleset.Set
	styleLoader   assets.StyleLoader
	sanitizer     *markup.Sanitizer
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	pdfConverter  pdfConverter
	logger        zerolog.Logger
}

// NewRenderer creates a Renderer. The rules are compiled once here; rules
// that cannot be used are reported by Diagnostics and logged, they are
// not an error. Returns an error if the style cannot be resolved.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			timeout:   defaultTimeout,
			hardWraps: true,
			logger:    zerolog.Nop(),
		},
		preprocessor: pipeline.NewPreprocessor(),
	}

	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.Component(r.cfg.logger, "renderer")

	if r.styleLoader == nil {
		resolver, err := assets.NewResolver(r.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		r.styleLoader = resolver
	}

	if err := r.resolveStyle(); err != nil {
		return nil, err
	}

	if r.set == nil {
		r.set = ruleset.Compile(r.cfg.rules,
			ruleset.WithLogger(logging.Component(r.cfg.logger, "ruleset")),
			ruleset.WithMatchTimeout(r.cfg.matchTimeout),
		)
	}

	if r.htmlConverter == nil {
		r.htmlConverter = pipeline.NewGoldmarkConverter(
			pipeline.WithHardWraps(r.cfg.hardWraps),
			pipeline.WithCodeStyle(r.cfg.codeStyle),
		)
	}

	r.sanitizer = markup.NewSanitizer()

	// Create PDF converter if not injected (e.g., by tests)
	if r.pdfConverter == nil {
		r.pdfConverter = newRodConverter(r.cfg.timeout)
	}

	return r, nil
}

// Render runs the full pipeline and returns the marked HTML and, unless
// input.HTMLOnly is set, the PDF. The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := input.validate(); err != nil {
		return nil, err
	}
	done := logging.LogOperationStart(r.logger, "render")
	defer done()

	content := input.HTML
	fromMarkdown := strings.TrimSpace(input.Markdown) != ""
	if fromMarkdown {
		md := r.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		content, err = r.htmlConverter.ToHTML(ctx, md, input.Title)
		if err != nil {
			return nil, fmt.Errorf("converting to HTML: %w", err)
		}
	}

	doc, err := htmldoc.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}

	if fromMarkdown {
		n := pipeline.TransformCallouts(doc.Root)
		r.logger.Trace().Int("callouts", n).Msg("Converted callouts")
	}

	if _, err := pipeline.RewritePaths(doc.Root, input.SourceDir); err != nil {
		return nil, fmt.Errorf("rewriting relative paths: %w", err)
	}

	stats := rewrite.Rewrite(rewrite.NewHTMLTree(doc.Root, r.sanitizer), r.set,
		rewrite.WithLogger(r.logger))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Base style first, user CSS last so it can override.
	css := r.cfg.resolvedStyle
	if input.CSS != "" {
		css = strings.TrimSpace(css + "\n" + input.CSS)
	}
	pipeline.InjectStyle(doc.Root, css)

	htmlContent, err := doc.Render()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}

	res := &Result{
		HTML:        htmlContent,
		Stats:       stats,
		Diagnostics: r.set.Diagnostics(),
	}

	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := r.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// MarkHTML applies only the regex-mark pass to HTML a host already
// rendered, a full document or a fragment. No style is injected. The
// content comes back unchanged when nothing matched.
func (r *Renderer) MarkHTML(content string) (string, Stats, error) {
	return rewrite.HTML(content, r.set, rewrite.WithLogger(r.logger))
}

// Diagnostics returns the rules that do not take part in marking, with
// the reason for each.
func (r *Renderer) Diagnostics() []Diagnostic {
	return r.set.Diagnostics()
}

// Close releases resources (headless Chrome browser).
func (r *Renderer) Close() error {
	if r.pdfConverter != nil {
		return r.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS.
// Called during NewRenderer after options are applied and the loader is set.
func (r *Renderer) resolveStyle() error {
	if r.cfg.noStyle {
		r.cfg.resolvedStyle = ""
		return nil
	}

	input := r.cfg.styleInput
	if strings.Contains(input, "{") {
		r.cfg.resolvedStyle = input
		return nil
	}

	css, err := assets.ResolveStyle(r.styleLoader, input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	r.cfg.resolvedStyle = css
	return nil
}

// MarkHTML compiles rules and applies one regex-mark pass to content.
// It is a shortcut for a one-off pass; reuse a Renderer to compile once.
func MarkHTML(content string, rules []Rule) (string, error) {
	set := ruleset.Compile(rules)
	out, _, err := rewrite.HTML(content, set)
	return out, err
}
