package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	regexmark "github.com/alnah/go-regexmark"
	"github.com/alnah/go-regexmark/internal/config"
	"github.com/alnah/go-regexmark/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md, .markdown, .html or .htm extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoFiles            = errors.New("no supported files found")
)

// Supported input extensions.
var (
	markdownExtensions = []string{".md", ".markdown"}
	htmlExtensions     = []string{".html", ".htm"}
)

// markedSuffix keeps HTML output from overwriting its HTML source.
const markedSuffix = ".marked"

// FileToRender represents a single file to process.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// isMarkdown reports whether path is a Markdown source.
func isMarkdown(path string) bool {
	return fileutil.HasExtension(path, markdownExtensions...)
}

// isSupported reports whether path is a Markdown or HTML source.
func isSupported(path string) bool {
	return isMarkdown(path) || fileutil.HasExtension(path, htmlExtensions...)
}

// outputExtension returns the file extension for an output format.
func outputExtension(format string) string {
	if strings.EqualFold(format, config.FormatPDF) {
		return ".pdf"
	}
	return ".html"
}

// discoverFiles finds all supported files to render.
func discoverFiles(inputPath, output, format string) ([]FileToRender, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateInputExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, output, "", format)
		return []FileToRender{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToRender
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			// Hidden directories (.obsidian, .git) hold no notes.
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isSupported(path) || strings.HasSuffix(strings.TrimSuffix(path, filepath.Ext(path)), markedSuffix) {
			return nil
		}
		outPath := resolveOutputPath(path, output, inputPath, format)
		files = append(files, FileToRender{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the output path for an input file. An
// output ending in the format's extension names a single file; anything
// else is a directory mirroring the input tree.
func resolveOutputPath(inputPath, output, baseInputDir, format string) string {
	outExt := outputExtension(format)
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	var outPath string
	switch {
	case output == "":
		outPath = filepath.Join(filepath.Dir(inputPath), base+outExt)
	case fileutil.HasExtension(output, outExt):
		return output
	default:
		relDir := ""
		if baseInputDir != "" {
			if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
				relDir = filepath.Dir(rel)
			}
		}
		outPath = filepath.Join(output, relDir, base+outExt)
	}

	if filepath.Clean(outPath) == filepath.Clean(inputPath) {
		outPath = strings.TrimSuffix(outPath, outExt) + markedSuffix + outExt
	}
	return outPath
}

// validateInputExtension checks that the file is Markdown or HTML.
func validateInputExtension(path string) error {
	if !isSupported(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > regexmark.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, regexmark.MaxPoolSize)
	}
	return nil
}
