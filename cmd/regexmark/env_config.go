package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-regexmark/internal/config"
)

// envPrefix is the prefix of every environment variable the CLI reads.
const envPrefix = "REGEXMARK_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // REGEXMARK_CONFIG: config file name or path
	RulesPath  string        // REGEXMARK_RULES: rules file
	Style      string        // REGEXMARK_STYLE: CSS style name or path
	Timeout    time.Duration // REGEXMARK_TIMEOUT: PDF generation timeout
	InputDir   string        // REGEXMARK_INPUT_DIR: default input directory
	OutputDir  string        // REGEXMARK_OUTPUT_DIR: default output directory
	Format     string        // REGEXMARK_FORMAT: html or pdf
	PageSize   string        // REGEXMARK_PAGE_SIZE: a4, letter, legal
	Workers    int           // REGEXMARK_WORKERS: parallel workers
}

// knownEnvVars lists valid REGEXMARK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"REGEXMARK_CONFIG":     true,
	"REGEXMARK_RULES":      true,
	"REGEXMARK_STYLE":      true,
	"REGEXMARK_TIMEOUT":    true,
	"REGEXMARK_INPUT_DIR":  true,
	"REGEXMARK_OUTPUT_DIR": true,
	"REGEXMARK_FORMAT":     true,
	"REGEXMARK_PAGE_SIZE":  true,
	"REGEXMARK_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables through
// getenv. Unparsable durations and worker counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("REGEXMARK_CONFIG"),
		RulesPath:  getenv("REGEXMARK_RULES"),
		Style:      getenv("REGEXMARK_STYLE"),
		InputDir:   getenv("REGEXMARK_INPUT_DIR"),
		OutputDir:  getenv("REGEXMARK_OUTPUT_DIR"),
		Format:     getenv("REGEXMARK_FORMAT"),
		PageSize:   getenv("REGEXMARK_PAGE_SIZE"),
	}

	if timeout := getenv("REGEXMARK_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("REGEXMARK_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars warns about unrecognized REGEXMARK_* variables.
// Helps catch typos like REGEXMARK_RULE instead of REGEXMARK_RULES.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeRenderFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.RulesPath != "" && cfg.Rules.File == "" {
		cfg.Rules.File = env.RulesPath
	}
	if env.Style != "" && cfg.CSS.Style == "" {
		cfg.CSS.Style = env.Style
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	// Format has a non-empty default, so the env var only yields to a
	// config file that changed it.
	if env.Format != "" && cfg.Output.Format == config.DefaultConfig().Output.Format {
		cfg.Output.Format = env.Format
	}
	if env.PageSize != "" && cfg.Page.Size == "" {
		cfg.Page.Size = env.PageSize
	}
}
