// Package pattern turns a rule's raw pattern text into a compiled regular
// expression.
//
// Raw patterns may mark literal delimiters with a wrapper syntax:
//
//	{{open:\*\*}}(.*?){{close:\*\*}}
//
// Normalize strips the first {{open:X}} and the first {{close:X}} wrapper,
// keeping X, which yields the usable pattern \*\*(.*?)\*\*. The wrappers only
// document intent for the editor; matching always uses the normalized form.
//
// Compiled patterns use ECMAScript semantics (dlclark/regexp2) so rules written
// for browser engines behave the same way here. Every compiled pattern carries
// a match timeout, which bounds the cost of pathological backtracking.
//
// # Unsafe shapes
//
// Validate rejects a negated character class such as [^x] unless the class
// mentions \n. Without the newline token such a class matches across lines
// and can swallow a whole document. The check is a textual heuristic, not a
// static analysis: some safe patterns are rejected, and no attempt is made to
// catch every unbounded construct.
package pattern
