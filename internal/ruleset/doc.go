// Package ruleset compiles user rules and evaluates them against text.
//
// A Rule pairs a pattern with a style class and a hide flag. Compile turns an
// ordered rule list into a Set: rules that are disabled, invalid or unsafe are
// dropped from matching and reported as diagnostics instead of errors, so a
// bad rule never prevents the document from rendering.
//
// A Set answers two questions for the rewrite pass:
//
//   - Qualifies: does any active rule match an element's aggregate text?
//   - EvaluateLeaf: which transforms apply to one text leaf, in rule order?
//
// Each rule runs at most one match attempt per call, so patterns that match
// the empty string cannot loop.
package ruleset
