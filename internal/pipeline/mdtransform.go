package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters so they
// pass through goldmark unchanged without WithUnsafe. ConvertMarkPlaceholders
// turns them into <mark> tags after conversion.
const (
	MarkStartPlaceholder = "\uE000"
	MarkEndPlaceholder   = "\uE001"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)
)

const commentDelimiter = "%%"

// MarkdownPreprocessor prepares Markdown source for conversion.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// Preprocessor applies the source-level rewrites a vault note needs before
// goldmark sees it.
type Preprocessor struct {
	// Highlights converts ==text== to <mark>.
	Highlights bool
	// StripComments removes %%comments%% outside fenced code.
	StripComments bool
}

var _ MarkdownPreprocessor = (*Preprocessor)(nil)

// NewPreprocessor returns a Preprocessor with every rewrite enabled.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{Highlights: true, StripComments: true}
}

// PreprocessMarkdown returns content unchanged if ctx is already done.
func (p *Preprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = crlfOrCR.ReplaceAllString(content, "\n")
	if p.StripComments {
		content = stripComments(content)
	}
	if p.Highlights {
		content = highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
	}
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// ConvertMarkPlaceholders turns highlight placeholders into <mark> tags.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}

// stripComments drops text between %% pairs. Comments may span lines; an
// unclosed comment runs to the end of the note. Fenced code is kept as is.
func stripComments(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	var fence string
	inComment := false
	for _, line := range strings.SplitAfter(content, "\n") {
		if !inComment {
			if marker := fenceMarker(line); marker != "" {
				switch {
				case fence == "":
					fence = marker
				case marker == fence:
					fence = ""
				}
				b.WriteString(line)
				continue
			}
			if fence != "" {
				b.WriteString(line)
				continue
			}
		}

		for {
			idx := strings.Index(line, commentDelimiter)
			if idx < 0 {
				if !inComment {
					b.WriteString(line)
				}
				break
			}
			if !inComment {
				b.WriteString(line[:idx])
			}
			inComment = !inComment
			line = line[idx+len(commentDelimiter):]
		}
	}
	return b.String()
}

// fenceMarker returns the fence a line opens or closes, if any.
func fenceMarker(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "```"):
		return "```"
	case strings.HasPrefix(trimmed, "~~~"):
		return "~~~"
	}
	return ""
}
