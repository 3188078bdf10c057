package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose int
}

// pageFlags holds PDF page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// styleFlags holds stylesheet flags.
type styleFlags struct {
	style     string // name or path of the base stylesheet
	css       string // extra CSS file appended after the style
	assetPath string // custom style directory
	noStyle   bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common  commonFlags
	rules   string
	output  string
	workers int
	timeout string
	format  string
	page    pageFlags
	style   styleFlags
}

// rulesFlags holds flags for the rules subcommands.
type rulesFlags struct {
	common commonFlags
	rules  string
	regex  string
	class  string
	hide   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.CountVarP(&f.verbose, "verbose", "v", "more logging (-v info, -vv debug, -vvv trace)")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addStyleFlags adds stylesheet flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the style")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom style directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable the base stylesheet")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, usage io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	f := &renderFlags{}

	fs.StringVarP(&f.rules, "rules", "r", "", "rules file (YAML or JSON list)")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.format, "format", "", "output format: html, pdf")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addStyleFlags(fs, &f.style)

	fs.SetOutput(usage)
	fs.Usage = func() { printRenderUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseRulesFlags parses flags for a rules subcommand.
func parseRulesFlags(sub string, args []string, usage io.Writer) (*rulesFlags, []string, error) {
	fs := flag.NewFlagSet("rules "+sub, flag.ContinueOnError)
	f := &rulesFlags{}

	fs.StringVarP(&f.rules, "rules", "r", "", "rules file (YAML or JSON list)")
	addCommonFlags(fs, &f.common)
	if sub == "add" {
		fs.StringVar(&f.regex, "regex", "", "pattern, optionally with {{open:...}} {{close:...}} wrappers")
		fs.StringVar(&f.class, "class", "", "CSS class of the marker")
		fs.BoolVar(&f.hide, "hide", false, "show only the first capture group")
	}

	fs.SetOutput(usage)
	fs.Usage = func() { printRulesUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
