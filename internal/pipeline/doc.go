// Package pipeline implements the Markdown-to-HTML stages that run around
// the regex-mark pass.
//
// Stages, in the order the renderer runs them:
//   - Markdown preprocessing (line endings, blank lines, ==highlight==,
//     %%comments%%)
//   - Markdown to HTML conversion via goldmark
//   - Callout blocks (> [!note] Title) to callout markup
//   - Relative image and link paths to file:// URLs
//   - Stylesheet injection
//
// The tree-level stages work on a parsed *html.Node so a document is parsed
// once, rewritten in place, then rendered. The regex-mark pass itself lives
// in internal/rewrite.
package pipeline
