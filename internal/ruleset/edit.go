package ruleset

import (
	"fmt"

	"github.com/alnah/go-regexmark/internal/pattern"
)

// The functions below back the rule editor. They return new slices and
// leave their input untouched.

// Add appends r to the end of rules.
func Add(rules []Rule, r Rule) []Rule {
	out := make([]Rule, 0, len(rules)+1)
	out = append(out, rules...)
	return append(out, r)
}

// Remove deletes the rule at index i.
func Remove(rules []Rule, i int) ([]Rule, error) {
	if err := checkIndex(rules, i); err != nil {
		return nil, err
	}
	out := make([]Rule, 0, len(rules)-1)
	out = append(out, rules[:i]...)
	return append(out, rules[i+1:]...), nil
}

// Move relocates the rule at index from to index to, shifting the rules
// in between.
func Move(rules []Rule, from, to int) ([]Rule, error) {
	if err := checkIndex(rules, from); err != nil {
		return nil, err
	}
	if err := checkIndex(rules, to); err != nil {
		return nil, err
	}

	out := make([]Rule, len(rules))
	copy(out, rules)
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out, nil
}

func checkIndex(rules []Rule, i int) error {
	if i < 0 || i >= len(rules) {
		return fmt.Errorf("%w: %d (have %d rules)", ErrIndexOutOfRange, i, len(rules))
	}
	return nil
}

// Finding is the editor-facing verdict on one rule.
type Finding struct {
	Index int
	Rule  Rule
	// HideApplicable tells the editor whether the hide toggle can work.
	HideApplicable bool
	// Problems lists pattern and class errors. Empty means the rule is usable.
	Problems []error
}

// OK reports whether the rule has no problems.
func (f Finding) OK() bool { return len(f.Problems) == 0 }

// Verify checks every rule the way the editor's verify action does: the
// pattern must compile and be safe, the class must be a valid CSS class,
// and hide needs a capturing group.
func Verify(rules []Rule) []Finding {
	findings := make([]Finding, 0, len(rules))
	for i, r := range rules {
		f := Finding{Index: i, Rule: r, HideApplicable: pattern.HasGroup(r.Regex)}

		if err := pattern.Validate(r.Regex); err != nil {
			f.Problems = append(f.Problems, err)
		}
		if !ValidClass(r.Class) {
			f.Problems = append(f.Problems, fmt.Errorf("%w: %q", ErrInvalidClass, r.Class))
		}
		if r.Hide && !f.HideApplicable && pattern.Validate(r.Regex) == nil {
			f.Problems = append(f.Problems, pattern.ErrNoCaptureGroup)
		}
		findings = append(findings, f)
	}
	return findings
}
