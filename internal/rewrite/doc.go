// Package rewrite runs the regex-mark pass over a document tree.
//
// The pass walks candidate block elements, skips the ones whose text no
// active rule matches, then evaluates every text leaf of the remaining
// elements and replaces the leaves that produced a styled fragment. Leaves
// are collected before any mutation, and leaves inside markup generated by
// the same pass are never visited again.
//
// The pass works against the Tree, Element and Leaf interfaces. HTMLTree is
// the production implementation on top of golang.org/x/net/html, with
// candidates selected through goquery.
package rewrite
