package ruleset

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-regexmark/internal/pattern"
)

// Diagnostic explains why a configured rule does not fully participate.
type Diagnostic struct {
	Index int   // position in the configured rule list
	Rule  Rule  // the rule as configured
	Err   error // ErrRuleDisabled, ErrInvalidClass or a pattern sentinel error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("rule %d (%q): %v", d.Index, d.Rule.Regex, d.Err)
}

// Transform is the effect one rule has on one text leaf.
type Transform struct {
	Rule  int    // position in the configured rule list
	Class string // style class of the marker
	Hide  bool   // show only Text, drop the rest of Match
	Text  string // visible text: the whole leaf, or the captured group when hiding
	Match string // full matched text, kept on the marker for consumers
}

// compiledRule is an active rule with its compiled pattern.
type compiledRule struct {
	index   int
	rule    Rule
	pattern *pattern.Compiled
	inert   bool // hide requested but the pattern has no group
}

// Set is an immutable compiled rule list. It is safe for concurrent use.
type Set struct {
	rules       []compiledRule
	diagnostics []Diagnostic
	logger      zerolog.Logger
}

// Option configures Compile.
type Option func(*options)

type options struct {
	logger  zerolog.Logger
	timeout time.Duration
}

// WithLogger sets the logger used for rule diagnostics and match timeouts.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMatchTimeout bounds each match attempt. Non-positive means the
// pattern package default.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// Compile validates rules in order and builds a Set. It never fails:
// unusable rules become diagnostics and are logged once here.
func Compile(rules []Rule, opts ...Option) *Set {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Set{logger: o.logger}
	for i, r := range rules {
		if !r.Enabled() {
			s.diagnose(i, r, ErrRuleDisabled)
			continue
		}
		if !ValidClass(r.Class) {
			s.diagnose(i, r, fmt.Errorf("%w: %q", ErrInvalidClass, r.Class))
			continue
		}

		c, err := pattern.Compile(r.Regex, o.timeout)
		if err != nil {
			s.diagnose(i, r, err)
			continue
		}

		cr := compiledRule{index: i, rule: r, pattern: c}
		if r.Hide && !c.HasGroup() {
			cr.inert = true
			s.diagnose(i, r, pattern.ErrNoCaptureGroup)
		}
		s.rules = append(s.rules, cr)
	}

	s.logger.Debug().
		Int("configured", len(rules)).
		Int("active", s.Len()).
		Msg("Compiled rule set")
	return s
}

// diagnose records a diagnostic and logs it. Disabled rules are routine
// (a freshly added editor row) and only logged at debug level.
func (s *Set) diagnose(i int, r Rule, err error) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Index: i, Rule: r, Err: err})

	ev := s.logger.Warn()
	if err == ErrRuleDisabled {
		ev = s.logger.Debug()
	}
	ev.Int("rule", i).
		Str("regex", r.Regex).
		Str("class", r.Class).
		Err(err).
		Msg("Rule ignored")
}

// Len returns the number of rules that can produce transforms.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, r := range s.rules {
		if !r.inert {
			n++
		}
	}
	return n
}

// Diagnostics returns the problems found at compile time, in rule order.
func (s *Set) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(s.diagnostics))
	copy(out, s.diagnostics)
	return out
}
