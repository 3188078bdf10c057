// Package config loads the CLI configuration and standalone rule files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-regexmark/internal/fileutil"
	"github.com/alnah/go-regexmark/internal/ruleset"
	"github.com/alnah/go-regexmark/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory under the user config dir searched for named
// configs.
const AppDir = "go-regexmark"

// Field limits. Rule validity is not checked here: bad rules are reported
// by the rule set and skipped at render time.
const (
	MaxPathLength      = 4096
	MaxStyleLength     = 4096 // name or path
	MaxFormatLength    = 10
	MaxPageSizeLength  = 10
	MaxOrientLength    = 10
	MaxCodeStyleLength = 50
	MaxRules           = 1000
	MaxRegexLength     = 2000
	MaxClassLength     = 200
	MaxMatchTimeoutMS  = 60_000
)

// Output formats.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// Config holds every setting the CLI reads from a YAML file.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Rules    RulesConfig    `yaml:"rules"`
	CSS      CSSConfig      `yaml:"css"`
	Assets   AssetsConfig   `yaml:"assets"`
	Page     PageConfig     `yaml:"page"`
	Markdown MarkdownConfig `yaml:"markdown"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // used when no input argument is given
}

// OutputConfig defines output options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
	Format     string `yaml:"format"`     // "html" or "pdf" (default: "html")
}

// RulesConfig defines where rules come from. File rules come first, then
// Inline rules, in order.
type RulesConfig struct {
	File           string         `yaml:"file"`           // YAML or JSON list of {regex, class, hide}
	Inline         []ruleset.Rule `yaml:"inline"`         // rules written in the config itself
	MatchTimeoutMS int            `yaml:"matchTimeoutMs"` // per match attempt, 0 = default
}

// CSSConfig selects the stylesheet.
type CSSConfig struct {
	Style    string `yaml:"style"`    // built-in name or path to a .css file (empty = "default")
	Disabled bool   `yaml:"disabled"` // inject no stylesheet at all
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // directory holding styles/{name}.css; empty = embedded only
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches, 0 = default
}

// MarkdownConfig mirrors the editor options that change rendering.
type MarkdownConfig struct {
	StrictLineBreaks bool   `yaml:"strictLineBreaks"` // single newlines do not break lines
	CodeStyle        string `yaml:"codeStyle"`        // chroma style; empty = CSS classes
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: FormatHTML},
	}
}

// Validate checks field lengths and enumerations. LoadConfig calls it; it
// is exported for callers building a Config by hand.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"output.format", c.Output.Format, MaxFormatLength},
		{"rules.file", c.Rules.File, MaxPathLength},
		{"css.style", c.CSS.Style, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientLength},
		{"markdown.codeStyle", c.Markdown.CodeStyle, MaxCodeStyleLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if err := validateOneOf("output.format", c.Output.Format, FormatHTML, FormatPDF); err != nil {
		return err
	}
	if err := validateOneOf("page.size", c.Page.Size, "letter", "a4", "legal"); err != nil {
		return err
	}
	if err := validateOneOf("page.orientation", c.Page.Orientation, "portrait", "landscape"); err != nil {
		return err
	}
	if c.Page.Margin != 0 && (c.Page.Margin < 0.25 || c.Page.Margin > 3.0) {
		return fmt.Errorf("%w: page.margin must be between 0.25 and 3.0 inches, got %.2f", ErrInvalidValue, c.Page.Margin)
	}

	if len(c.Rules.Inline) > MaxRules {
		return fmt.Errorf("%w: rules.inline has %d rules (max %d)", ErrInvalidValue, len(c.Rules.Inline), MaxRules)
	}
	if err := validateRuleFields("rules.inline", c.Rules.Inline); err != nil {
		return err
	}
	if c.Rules.MatchTimeoutMS < 0 || c.Rules.MatchTimeoutMS > MaxMatchTimeoutMS {
		return fmt.Errorf("%w: rules.matchTimeoutMs must be between 0 and %d, got %d", ErrInvalidValue, MaxMatchTimeoutMS, c.Rules.MatchTimeoutMS)
	}
	return nil
}

func validateRuleFields(prefix string, rules []ruleset.Rule) error {
	for i, r := range rules {
		if err := validateFieldLength(fmt.Sprintf("%s[%d].regex", prefix, i), r.Regex, MaxRegexLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("%s[%d].class", prefix, i), r.Class, MaxClassLength); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRule checks a single rule's field lengths, for rules entered
// outside a file.
func ValidateRule(rule ruleset.Rule) error {
	return validateRuleFields("rule", []ruleset.Rule{rule})
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateOneOf accepts an empty value or one of allowed, ignoring case.
func validateOneOf(fieldName, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// LoadConfig loads a config by file path or by name. Names are looked up as
// ./<name>.yaml|.yml, then in <user config dir>/go-regexmark/. A missing
// file is an error; there is no silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup
// order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
