package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-regexmark/internal/htmldoc"
)

// pathAttrs lists the attributes rewritten per element. Media elements,
// srcset and script[src] are left alone: PDFs cannot play media and scripts
// never load from the note folder.
var pathAttrs = map[string]string{
	"img": "src",
	"a":   "href",
}

// RewritePaths converts relative img[src] and a[href] values under root to
// absolute file:// URLs resolved against sourceDir, so the browser finds
// assets next to the note. It returns the number of rewritten attributes.
// Paths escaping sourceDir are left as they are.
func RewritePaths(root *html.Node, sourceDir string) (int, error) {
	if sourceDir == "" || root == nil {
		return 0, nil
	}

	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return 0, err
	}

	count := 0
	htmldoc.Walk(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		key, ok := pathAttrs[n.Data]
		if !ok {
			return true
		}
		for i, a := range n.Attr {
			if a.Key != key || !isRelativePath(a.Val) {
				continue
			}
			abs := filepath.Join(absDir, a.Val)
			if !isPathUnderDir(abs, absDir) {
				continue
			}
			n.Attr[i].Val = pathToFileURL(abs)
			count++
		}
		return true
	})
	return count, nil
}

// RewriteRelativePaths is RewritePaths over an HTML string. The content is
// returned unchanged when sourceDir is empty.
func RewriteRelativePaths(content, sourceDir string) (string, error) {
	if sourceDir == "" {
		return content, nil
	}

	doc, err := htmldoc.Parse(content)
	if err != nil {
		return "", err
	}
	if _, err := RewritePaths(doc.Root, sourceDir); err != nil {
		return "", err
	}
	return doc.Render()
}

// isRelativePath reports whether p points into the note folder: not empty,
// not a URL or anchor, not absolute.
func isRelativePath(p string) bool {
	if p == "" || strings.HasPrefix(p, "#") || strings.HasPrefix(p, "//") {
		return false
	}
	for _, scheme := range []string{"http://", "https://", "file://", "data:", "mailto:", "obsidian://"} {
		if strings.HasPrefix(p, scheme) {
			return false
		}
	}
	return !filepath.IsAbs(p)
}

// isPathUnderDir reports whether absPath is dir or below it.
func isPathUnderDir(absPath, dir string) bool {
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(filepath.Clean(absPath)+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL, handling
// Windows separators.
func pathToFileURL(absPath string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}
	return u.String()
}
