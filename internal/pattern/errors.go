package pattern

import "errors"

// Sentinel errors for pattern validation.
var (
	ErrEmptyPattern   = errors.New("pattern is empty")
	ErrInvalidPattern = errors.New("pattern does not compile")
	ErrUnsafePattern  = errors.New("negated character class without newline exclusion")
	ErrNoCaptureGroup = errors.New("pattern has no capturing group")
)
