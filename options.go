package regexmark

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-regexmark/internal/ruleset"
)

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	timeout       time.Duration
	matchTimeout  time.Duration
	rules         []Rule
	styleInput    string // style name, CSS file path, or CSS content
	resolvedStyle string
	noStyle       bool
	assetPath     string
	hardWraps     bool
	codeStyle     string
	logger        zerolog.Logger
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF page load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("regexmark: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithRules sets the ordered rule list. Later calls replace earlier ones.
func WithRules(rules []Rule) Option {
	return func(r *Renderer) {
		r.cfg.rules = append([]Rule(nil), rules...)
	}
}

// WithMatchTimeout bounds each regex match attempt. A timed-out match
// counts as no match.
func WithMatchTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.cfg.matchTimeout = d
	}
}

// WithStyle selects the base stylesheet: an embedded or custom style name,
// a path to a .css file, or CSS content.
func WithStyle(style string) Option {
	return func(r *Renderer) {
		r.cfg.styleInput = style
	}
}

// WithoutStyle disables the base stylesheet. Input.CSS is still injected.
func WithoutStyle() Option {
	return func(r *Renderer) {
		r.cfg.noStyle = true
	}
}

// WithAssetPath adds a directory of custom styles (<path>/styles/<name>.css)
// that take precedence over the embedded ones.
func WithAssetPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = path
	}
}

// WithHardWraps controls whether single newlines in Markdown become line
// breaks. Enabled by default.
func WithHardWraps(enabled bool) Option {
	return func(r *Renderer) {
		r.cfg.hardWraps = enabled
	}
}

// WithCodeStyle sets the chroma style used for inline code highlighting.
// Empty emits CSS classes styled by the stylesheet.
func WithCodeStyle(style string) Option {
	return func(r *Renderer) {
		r.cfg.codeStyle = style
	}
}

// WithLogger sets the logger used for rule diagnostics and pass statistics.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) {
		r.cfg.logger = l
	}
}

// withRuleSet reuses a compiled rule set instead of compiling the rules.
// Compiled sets are immutable, so pool members share one.
func withRuleSet(s *ruleset.Set) Option {
	return func(r *Renderer) {
		r.set = s
	}
}
