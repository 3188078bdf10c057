package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	regexmark "github.com/alnah/go-regexmark"
	"github.com/alnah/go-regexmark/internal/config"
	"github.com/alnah/go-regexmark/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output file")
	ErrMkdirOutput = errors.New("failed to create output directory")
)

// CLIRenderer is the interface for the rendering service.
type CLIRenderer interface {
	Render(ctx context.Context, input regexmark.Input) (*regexmark.Result, error)
}

// Compile-time interface implementation check.
var _ CLIRenderer = (*regexmark.Renderer)(nil)

// Pool abstracts renderer pool operations for testability.
type Pool interface {
	Acquire(ctx context.Context) (CLIRenderer, error)
	Release(CLIRenderer)
	Size() int
}

// renderParams groups parameters shared across batch/file rendering.
type renderParams struct {
	format string
	css    string
	page   *regexmark.PageSettings
}

// RenderResult holds the outcome of a single render.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
	Stats      regexmark.Stats
	Ignored    int // rules that did not take part
}

// renderBatch processes files concurrently using the renderer pool.
func renderBatch(ctx context.Context, pool Pool, files []FileToRender, params *renderParams) []RenderResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]RenderResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := pool.Acquire(ctx)
			if err != nil {
				// No renderer for this worker, fail the jobs it picks up
				for idx := range jobs {
					results[idx] = RenderResult{InputPath: files[idx].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(r)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = renderFile(ctx, r, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderFile processes a single file and returns the result.
func renderFile(ctx context.Context, r CLIRenderer, f FileToRender, params *renderParams) RenderResult {
	start := time.Now()
	result := RenderResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) RenderResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadInput, err))
	}

	input := regexmark.Input{
		SourceDir: filepath.Dir(f.InputPath),
		CSS:       params.css,
		Page:      params.page,
		HTMLOnly:  !strings.EqualFold(params.format, config.FormatPDF),
	}
	if isMarkdown(f.InputPath) {
		input.Markdown = string(content)
		input.Title = strings.TrimSuffix(filepath.Base(f.InputPath), filepath.Ext(f.InputPath))
	} else {
		input.HTML = string(content)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrMkdirOutput, err))
	}

	res, err := r.Render(ctx, input)
	if err != nil {
		return fail(err)
	}
	result.Stats = res.Stats
	result.Ignored = len(res.Diagnostics)

	data := []byte(res.HTML)
	if !input.HTMLOnly {
		data = res.PDF
	}
	// #nosec G306 -- rendered documents are meant to be readable
	if err := os.WriteFile(f.OutputPath, data, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed renders.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Marked    int // total replaced text leaves
	Ignored   int // rules ignored, the same for every file
}

// countResults tallies succeeded and failed renders.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Marked += r.Stats.Replaced
		summary.Ignored = max(summary.Ignored, r.Ignored)
	}
	return summary
}

// printResults outputs render results and returns the summary.
func printResults(results []RenderResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			hint := hintFor(r.Err, env)
			if errors.Is(r.Err, ErrMkdirOutput) {
				hint = hints.ForOutputDirectory()
			}
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hint)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d marked, %v)\n", r.InputPath, r.OutputPath, r.Stats.Replaced, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}
