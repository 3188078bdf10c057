package pattern

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single match attempt.
const DefaultMatchTimeout = 250 * time.Millisecond

// Compiled is a validated, normalized pattern ready for matching.
type Compiled struct {
	source string
	re     *regexp2.Regexp
	groups int
}

// Match is the result of a single match attempt.
type Match struct {
	Text  string // full matched substring
	Group string // first capturing group, empty when absent or unmatched
}

// Compile normalizes raw, rejects unsafe shapes and compiles the result.
// A non-positive timeout selects DefaultMatchTimeout.
func Compile(raw string, timeout time.Duration) (*Compiled, error) {
	if raw == "" {
		return nil, ErrEmptyPattern
	}

	source := Normalize(raw)
	if IsUnsafe(source) {
		return nil, fmt.Errorf("%w: %q", ErrUnsafePattern, raw)
	}

	re, err := regexp2.Compile(source, regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	if timeout <= 0 {
		timeout = DefaultMatchTimeout
	}
	re.MatchTimeout = timeout

	return &Compiled{
		source: source,
		re:     re,
		groups: len(re.GetGroupNumbers()) - 1, // group 0 is the whole match
	}, nil
}

// Validate reports why raw cannot be used as a pattern, or nil.
func Validate(raw string) error {
	_, err := Compile(raw, 0)
	return err
}

// HasGroup reports whether raw normalizes to a valid pattern with at least
// one capturing group. The editor uses it to enable the hide toggle and the
// evaluator uses it to decide whether a hide rule can ever fire.
func HasGroup(raw string) bool {
	c, err := Compile(raw, 0)
	if err != nil {
		return false
	}
	return c.HasGroup()
}

// Source returns the normalized pattern.
func (c *Compiled) Source() string { return c.source }

// HasGroup reports whether the pattern has a capturing group.
func (c *Compiled) HasGroup() bool { return c.groups > 0 }

// MatchString reports whether the pattern matches s.
// A timed-out attempt counts as no match and returns the timeout error.
func (c *Compiled) MatchString(s string) (bool, error) {
	return c.re.MatchString(s)
}

// Find runs a single match attempt against s. It returns nil when there is
// no match.
func (c *Compiled) Find(s string) (*Match, error) {
	m, err := c.re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil, err
	}

	res := &Match{Text: m.String()}
	if c.groups > 0 {
		if g := m.GroupByNumber(1); g != nil && len(g.Captures) > 0 {
			res.Group = g.String()
		}
	}
	return res, nil
}
