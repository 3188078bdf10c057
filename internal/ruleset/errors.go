package ruleset

import "errors"

// Sentinel errors for rule diagnostics and editing.
var (
	ErrRuleDisabled    = errors.New("rule is disabled (empty pattern or class)")
	ErrInvalidClass    = errors.New("class is not a valid CSS class name")
	ErrIndexOutOfRange = errors.New("rule index out of range")
)
