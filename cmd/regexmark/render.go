package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	regexmark "github.com/alnah/go-regexmark"
	"github.com/alnah/go-regexmark/internal/config"
	"github.com/alnah/go-regexmark/internal/fileutil"
	"github.com/alnah/go-regexmark/internal/hints"
	"github.com/alnah/go-regexmark/internal/logging"
)

// Sentinel errors for the render command.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrReadCSS        = errors.New("failed to read CSS file")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrRenderFailed   = errors.New("some files failed to render")
)

// configNotFoundError keeps the name that was looked up so the hint can
// list the searched paths.
type configNotFoundError struct {
	name string
	err  error
}

func (e *configNotFoundError) Error() string { return e.err.Error() }
func (e *configNotFoundError) Unwrap() error { return e.err }

// runRenderCmd parses flags and runs the render command.
func runRenderCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return runRender(ctx, positional, flags, env)
}

// runRender orchestrates the rendering process.
func runRender(ctx context.Context, positionalArgs []string, flags *renderFlags, env *Environment) error {
	verbosity := flags.common.verbose
	if flags.common.quiet {
		verbosity = -1
	}
	base := logging.Setup(verbosity, env.Stderr)
	logger := logging.GetLogger("render")
	setMaxProcs(logger)

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// CLI wins over env, env over the config file
	applyEnvConfig(envCfg, cfg)
	mergeRenderFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg)
	if err != nil {
		return err
	}

	rules, err := cfg.ResolveRules()
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, cfg.Output.DefaultDir, cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoFiles, inputPath)
	}

	css, err := readCSSFile(flags.style.css)
	if err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := min(regexmark.ResolvePoolSize(workers), len(files))
	logger.Info().
		Int("files", len(files)).
		Int("rules", len(rules)).
		Int("workers", poolSize).
		Str("format", cfg.Output.Format).
		Msg("Rendering")

	pool := newRendererPool(poolSize, buildRendererOptions(cfg, rules, timeout, base)...)
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn().Err(err).Msg("Closing renderers")
		}
	}()

	results := renderBatch(ctx, pool, files, &renderParams{
		format: cfg.Output.Format,
		css:    css,
		page:   buildPageSettings(cfg),
	})

	summary := printResults(results, flags.common.quiet, flags.common.verbose > 0, env)
	if !flags.common.quiet && summary.Ignored > 0 {
		fmt.Fprintf(env.Stderr, "warning: some rules were ignored%s\n", hints.ForIgnoredRules(summary.Ignored, cfg.Rules.File))
	}

	// Failures were printed per file above
	if summary.Failed > 0 {
		if len(results) == 1 {
			return &reportedError{err: results[0].Err}
		}
		return &reportedError{err: fmt.Errorf("%w: %d of %d", ErrRenderFailed, summary.Failed, len(results))}
	}
	return nil
}

// loadConfig loads the config named by the flag or REGEXMARK_CONFIG, or
// returns the defaults when neither is set.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			err = &configNotFoundError{name: name, err: err}
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeRenderFlags copies explicitly set CLI flags over config values.
func mergeRenderFlags(flags *renderFlags, cfg *config.Config) {
	if flags.rules != "" {
		cfg.Rules.File = flags.rules
	}
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	switch {
	case flags.format != "":
		cfg.Output.Format = flags.format
	case fileutil.HasExtension(flags.output, ".pdf"):
		cfg.Output.Format = config.FormatPDF
	case fileutil.HasExtension(flags.output, ".html", ".htm"):
		cfg.Output.Format = config.FormatHTML
	}
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin != 0 {
		cfg.Page.Margin = flags.page.margin
	}
	if flags.style.style != "" {
		cfg.CSS.Style = flags.style.style
	}
	if flags.style.noStyle {
		cfg.CSS.Disabled = true
	}
	if flags.style.assetPath != "" {
		cfg.Assets.BasePath = flags.style.assetPath
	}
}

// resolveTimeout parses the --timeout flag, falling back to
// REGEXMARK_TIMEOUT. Zero means the library default.
func resolveTimeout(flagValue string, envCfg *envConfig) (time.Duration, error) {
	if flagValue == "" {
		return envCfg.Timeout, nil
	}
	d, err := time.ParseDuration(flagValue)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q (use a positive duration like 30s or 2m)", ErrInvalidTimeout, flagValue)
	}
	return d, nil
}

// resolveInputPath picks the positional argument or the configured
// default directory.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// readCSSFile reads the extra CSS file, if any.
func readCSSFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(data), nil
}

// buildPageSettings converts page config, filling unset fields with
// defaults. Margin 0 stays 0 and means the default margin.
func buildPageSettings(cfg *config.Config) *regexmark.PageSettings {
	page := regexmark.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}
	return page
}

// buildRendererOptions turns config into renderer options.
func buildRendererOptions(cfg *config.Config, rules []regexmark.Rule, timeout time.Duration, logger zerolog.Logger) []regexmark.Option {
	opts := []regexmark.Option{
		regexmark.WithRules(rules),
		regexmark.WithLogger(logger),
		regexmark.WithHardWraps(!cfg.Markdown.StrictLineBreaks),
		regexmark.WithCodeStyle(cfg.Markdown.CodeStyle),
		regexmark.WithStyle(cfg.CSS.Style),
		regexmark.WithAssetPath(cfg.Assets.BasePath),
	}
	if cfg.Rules.MatchTimeoutMS > 0 {
		opts = append(opts, regexmark.WithMatchTimeout(time.Duration(cfg.Rules.MatchTimeoutMS)*time.Millisecond))
	}
	if timeout > 0 {
		opts = append(opts, regexmark.WithTimeout(timeout))
	}
	if cfg.CSS.Disabled {
		opts = append(opts, regexmark.WithoutStyle())
	}
	return opts
}
