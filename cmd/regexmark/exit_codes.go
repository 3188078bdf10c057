package main

import (
	"context"
	"errors"
	"os"

	regexmark "github.com/alnah/go-regexmark"
	"github.com/alnah/go-regexmark/internal/assets"
	"github.com/alnah/go-regexmark/internal/config"
	"github.com/alnah/go-regexmark/internal/hints"
	"github.com/alnah/go-regexmark/internal/ruleset"
)

// Exit codes for the regexmark CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, rules, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// ErrUsage marks command line mistakes.
var ErrUsage = errors.New("invalid usage")

// reportedError wraps an error whose details were already printed. It
// still drives the exit code.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, regexmark.ErrBrowserConnect) ||
		errors.Is(err, regexmark.ErrPageCreate) ||
		errors.Is(err, regexmark.ErrPageLoad) ||
		errors.Is(err, regexmark.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrMkdirOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoFiles) ||
		errors.Is(err, config.ErrRulesNotFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrRulesParse) ||
		errors.Is(err, regexmark.ErrEmptyInput) ||
		errors.Is(err, regexmark.ErrAmbiguousInput) ||
		errors.Is(err, regexmark.ErrInvalidPageSize) ||
		errors.Is(err, regexmark.ErrInvalidOrientation) ||
		errors.Is(err, regexmark.ErrInvalidMargin) ||
		errors.Is(err, regexmark.ErrStyleNotFound) ||
		errors.Is(err, regexmark.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, ruleset.ErrIndexOutOfRange) ||
		errors.Is(err, ruleset.ErrInvalidClass) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrNoRulesFile) ||
		errors.Is(err, ErrRuleProblems) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, env *Environment) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, regexmark.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, regexmark.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, regexmark.ErrPDFGeneration):
		return hints.ForHTMLOutput()
	case errors.Is(err, config.ErrConfigNotFound):
		var nf *configNotFoundError
		if errors.As(err, &nf) {
			return hints.ForConfigNotFound(config.SearchPaths(nf.name))
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, regexmark.ErrStyleNotFound):
		if env.StyleLoader == nil {
			return ""
		}
		return hints.ForStyleNotFound(env.StyleLoader.Styles())
	case errors.Is(err, ruleset.ErrInvalidClass):
		return hints.ForInvalidClass()
	}
	return ""
}
