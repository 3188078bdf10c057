package ruleset

import "regexp"

// Rule is a single configured (pattern, class, hide) triple.
// The persisted shape matches the editor's: {regex, class, hide}.
type Rule struct {
	Regex string `yaml:"regex" json:"regex"`
	Class string `yaml:"class" json:"class"`
	Hide  bool   `yaml:"hide,omitempty" json:"hide,omitempty"`
}

// cssClass matches a single CSS class identifier.
var cssClass = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// Enabled reports whether the rule has both a pattern and a class.
func (r Rule) Enabled() bool {
	return r.Regex != "" && r.Class != ""
}

// ValidClass reports whether class is a usable CSS class name.
func ValidClass(class string) bool {
	return cssClass.MatchString(class)
}
