// Package regexmark marks up rendered notes with user-defined regex rules
// and prints them to HTML or PDF.
//
// A rule pairs a regular expression with a CSS class. Text that matches is
// wrapped in a <span> carrying the class, so a stylesheet can highlight it.
// A rule with Hide set keeps only its first capture group visible and
// stores the full match in a data-contents attribute:
//
//	{Regex: `\[\[(.+?)\]\]`, Class: "wikilink", Hide: true}
//
// turns "See [[Home]]" into "See Home", with "Home" inside a wikilink span.
//
// Patterns follow JavaScript regex syntax. Rules that cannot be used
// (empty, unparsable, or matching almost anything, like [^x]) are skipped
// and reported by Renderer.Diagnostics rather than failing the render.
//
// # Quick Start
//
//	r, err := regexmark.NewRenderer(regexmark.WithRules(rules))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	result, err := r.Render(ctx, regexmark.Input{
//	    Markdown: "TODO: ship it",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", result.PDF, 0644)
//
// The result carries the PDF bytes (result.PDF) and the marked HTML
// (result.HTML). Use Input.HTMLOnly to skip PDF generation.
//
// To mark HTML produced by another renderer, pass Input.HTML instead of
// Markdown, or call Renderer.MarkHTML for the marking pass alone.
//
// # Rendering Pipeline
//
//  1. Markdown preprocessing (line endings, %%comments%%, ==highlight==)
//  2. Markdown to HTML via Goldmark (GFM, footnotes, syntax highlighting)
//  3. Callout blockquotes become callout blocks, relative paths become file:// URLs
//  4. The regex-mark pass over paragraphs, list items, headings, table cells
//     and callout titles
//  5. Style injection (embedded or custom stylesheet, then Input.CSS)
//  6. PDF rendering via headless Chrome (go-rod)
//
// # Parallel Processing
//
// A Renderer owns one browser and is not safe for concurrent use. For
// batch rendering, use a RendererPool:
//
//	pool := regexmark.NewRendererPool(regexmark.ResolvePoolSize(0), opts...)
//	defer pool.Close()
//
//	r, err := pool.Acquire(ctx)
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(r)
//	result, err := r.Render(ctx, input)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package regexmark
