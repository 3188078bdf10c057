package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-regexmark/internal/fileutil"
	"github.com/alnah/go-regexmark/internal/ruleset"
	"github.com/alnah/go-regexmark/internal/yamlutil"
)

// Sentinel errors for rule files.
var (
	ErrRulesNotFound = errors.New("rules file not found")
	ErrRulesParse    = errors.New("failed to parse rules file")
)

// LoadRules reads a YAML or JSON list of {regex, class, hide}. Unknown keys
// are rejected so a typo does not silently disable a rule. An empty file
// holds no rules.
func LoadRules(path string) ([]ruleset.Rule, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- rules path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRulesNotFound, path)
		}
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var rules []ruleset.Rule
	if err := yamlutil.UnmarshalStrict(data, &rules); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRulesParse, path, err)
	}
	if len(rules) > MaxRules {
		return nil, fmt.Errorf("%w: %s has %d rules (max %d)", ErrInvalidValue, path, len(rules), MaxRules)
	}
	if err := validateRuleFields(path, rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// SaveRules writes rules atomically. Files ending in .json are written as
// JSON, everything else as YAML.
func SaveRules(path string, rules []ruleset.Rule) error {
	if rules == nil {
		rules = []ruleset.Rule{}
	}

	marshal := yamlutil.Marshal
	if fileutil.HasExtension(path, ".json") {
		marshal = yamlutil.MarshalJSON
	}
	data, err := marshal(rules)
	if err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules file: %w", err)
	}
	return nil
}

// ResolveRules returns the rules the config selects: the rules file first,
// then inline rules.
func (c *Config) ResolveRules() ([]ruleset.Rule, error) {
	var rules []ruleset.Rule
	if c.Rules.File != "" {
		fileRules, err := LoadRules(c.Rules.File)
		if err != nil {
			return nil, err
		}
		rules = append(rules, fileRules...)
	}
	return append(rules, c.Rules.Inline...), nil
}
