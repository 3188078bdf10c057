package regexmark

import (
	"fmt"
	"strings"

	"github.com/alnah/go-regexmark/internal/rewrite"
	"github.com/alnah/go-regexmark/internal/ruleset"
)

// Rule is one regex-mark rule: text matching Regex is wrapped in a marker
// carrying Class. With Hide set, only the first capture group stays visible.
type Rule = ruleset.Rule

// Diagnostic explains why a configured rule does not take part in marking.
type Diagnostic = ruleset.Diagnostic

// Stats counts what a marking pass touched.
type Stats = rewrite.Stats

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// dimensions returns paper width and height in inches, swapped for landscape.
func (p *PageSettings) dimensions() (width, height float64) {
	switch strings.ToLower(p.Size) {
	case PageSizeA4:
		width, height = 8.27, 11.69
	case PageSizeLegal:
		width, height = 8.5, 14
	default:
		width, height = 8.5, 11
	}
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		width, height = height, width
	}
	return width, height
}

func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input contains rendering parameters. Exactly one of Markdown or HTML
// must be set.
type Input struct {
	Markdown  string        // Markdown source, converted with goldmark
	HTML      string        // HTML already rendered by a host, marked as is
	Title     string        // document title for Markdown input (optional)
	SourceDir string        // base for relative image and link paths (optional)
	CSS       string        // extra CSS appended after the style (optional)
	Page      *PageSettings // PDF page settings (optional, nil = defaults)
	HTMLOnly  bool          // skip PDF generation
}

// validate checks the content fields and page settings.
func (in Input) validate() error {
	hasMarkdown := strings.TrimSpace(in.Markdown) != ""
	hasHTML := strings.TrimSpace(in.HTML) != ""
	switch {
	case hasMarkdown && hasHTML:
		return ErrAmbiguousInput
	case !hasMarkdown && !hasHTML:
		return ErrEmptyInput
	}
	return in.Page.Validate()
}

// Result holds the rendered output.
type Result struct {
	HTML        string       // marked HTML document
	PDF         []byte       // nil when Input.HTMLOnly is set
	Stats       Stats        // what the marking pass touched
	Diagnostics []Diagnostic // rules that did not take part
}
