package pattern

import (
	"regexp"
	"strings"
)

// Precompiled patterns for wrapper and shape detection.
var (
	// {{open:X}} and {{close:X}}, X captured lazily
	openWrapper  = regexp.MustCompile(`\{\{open:(.*?)\}\}`)
	closeWrapper = regexp.MustCompile(`\{\{close:(.*?)\}\}`)

	// [^...] anywhere in the pattern
	negatedClass = regexp.MustCompile(`\[\^.*\]`)

	// [^...\n...] anywhere in the pattern
	negatedClassWithNewline = regexp.MustCompile(`\[\^.*\\n.*\]`)
)

// Normalize replaces the first {{open:X}} with X and then the first
// {{close:X}} with X. Each wrapper is applied at most once.
func Normalize(raw string) string {
	return unwrapFirst(closeWrapper, unwrapFirst(openWrapper, raw))
}

// unwrapFirst replaces only the first match of re with its first group.
func unwrapFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:loc[0]])
	b.WriteString(s[loc[2]:loc[3]])
	b.WriteString(s[loc[1]:])
	return b.String()
}

// IsUnsafe reports whether the pattern contains a negated character class
// that does not exclude newlines.
func IsUnsafe(raw string) bool {
	return negatedClass.MatchString(raw) && !negatedClassWithNewline.MatchString(raw)
}

// HasWrappers reports whether raw uses the open or close wrapper syntax.
func HasWrappers(raw string) bool {
	return openWrapper.MatchString(raw) || closeWrapper.MatchString(raw)
}
