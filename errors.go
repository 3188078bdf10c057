package regexmark

import (
	"errors"

	"github.com/alnah/go-regexmark/internal/assets"
	"github.com/alnah/go-regexmark/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyInput     = errors.New("input content cannot be empty")
	ErrAmbiguousInput = errors.New("input must set either Markdown or HTML, not both")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrHTMLParse      = errors.New("HTML parsing failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = assets.ErrInvalidBasePath
)
