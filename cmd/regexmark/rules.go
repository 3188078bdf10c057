package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-regexmark/internal/config"
	"github.com/alnah/go-regexmark/internal/pattern"
	"github.com/alnah/go-regexmark/internal/ruleset"
)

// Sentinel errors for the rules command.
var (
	ErrNoRulesFile  = errors.New("no rules file specified")
	ErrRuleProblems = errors.New("some rules have problems")
)

// runRulesCmd dispatches a rules subcommand.
func runRulesCmd(args []string, env *Environment) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing rules subcommand", ErrUsage)
	}

	sub := args[0]
	switch sub {
	case "list", "add", "remove", "move", "check":
	default:
		return fmt.Errorf("%w: unknown rules subcommand %q", ErrUsage, sub)
	}

	flags, positional, err := parseRulesFlags(sub, args[1:], env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	path, err := resolveRulesPath(flags, env)
	if err != nil {
		return err
	}

	switch sub {
	case "list":
		return runRulesList(path, env)
	case "add":
		return runRulesAdd(path, flags, env)
	case "remove":
		return runRulesRemove(path, positional, flags.common.quiet, env)
	case "move":
		return runRulesMove(path, positional, flags.common.quiet, env)
	default:
		return runRulesCheck(path, flags.common.quiet, env)
	}
}

// resolveRulesPath picks the rules file: --rules, then REGEXMARK_RULES,
// then rules.file from the config.
func resolveRulesPath(flags *rulesFlags, env *Environment) (string, error) {
	if flags.rules != "" {
		return flags.rules, nil
	}
	envCfg := loadEnvConfig(env.Getenv)
	if envCfg.RulesPath != "" {
		return envCfg.RulesPath, nil
	}
	if flags.common.config != "" || envCfg.ConfigPath != "" {
		cfg, err := loadConfig(flags.common.config, envCfg)
		if err != nil {
			return "", err
		}
		if cfg.Rules.File != "" {
			return cfg.Rules.File, nil
		}
	}
	return "", fmt.Errorf("%w: use --rules or set rules.file in the config", ErrNoRulesFile)
}

// loadRulesOrEmpty loads rules, treating a missing file as an empty list
// so editing commands can create it.
func loadRulesOrEmpty(path string) ([]ruleset.Rule, error) {
	rules, err := config.LoadRules(path)
	if errors.Is(err, config.ErrRulesNotFound) {
		return nil, nil
	}
	return rules, err
}

func runRulesList(path string, env *Environment) error {
	rules, err := config.LoadRules(path)
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		fmt.Fprintf(env.Stdout, "No rules in %s\n", path)
		return nil
	}
	printRules(env.Stdout, rules)
	return nil
}

func printRules(w io.Writer, rules []ruleset.Rule) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCLASS\tHIDE\tREGEX")
	for i, r := range rules {
		hide := "no"
		if r.Hide {
			hide = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, orDash(r.Class), hide, orDash(r.Regex))
	}
	_ = tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func runRulesAdd(path string, flags *rulesFlags, env *Environment) error {
	if flags.regex == "" || flags.class == "" {
		return fmt.Errorf("%w: rules add needs --regex and --class", ErrUsage)
	}
	if !ruleset.ValidClass(flags.class) {
		return fmt.Errorf("%w: %q", ruleset.ErrInvalidClass, flags.class)
	}
	rule := ruleset.Rule{Regex: flags.regex, Class: flags.class, Hide: flags.hide}
	if err := config.ValidateRule(rule); err != nil {
		return err
	}

	rules, err := loadRulesOrEmpty(path)
	if err != nil {
		return err
	}
	rules = ruleset.Add(rules, rule)
	if err := config.SaveRules(path, rules); err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Added rule %d to %s\n", len(rules)-1, path)
	}
	// Saved as entered, like the editor; problems only disable the rule.
	finding := ruleset.Verify([]ruleset.Rule{rule})[0]
	for _, p := range finding.Problems {
		fmt.Fprintf(env.Stderr, "warning: rule %d: %v\n", len(rules)-1, p)
	}
	return nil
}

func runRulesRemove(path string, args []string, quiet bool, env *Environment) error {
	idx, err := parseIndexArgs(args, 1)
	if err != nil {
		return err
	}
	rules, err := config.LoadRules(path)
	if err != nil {
		return err
	}
	rules, err = ruleset.Remove(rules, idx[0])
	if err != nil {
		return err
	}
	if err := config.SaveRules(path, rules); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Removed rule %d from %s\n", idx[0], path)
	}
	return nil
}

func runRulesMove(path string, args []string, quiet bool, env *Environment) error {
	idx, err := parseIndexArgs(args, 2)
	if err != nil {
		return err
	}
	rules, err := config.LoadRules(path)
	if err != nil {
		return err
	}
	rules, err = ruleset.Move(rules, idx[0], idx[1])
	if err != nil {
		return err
	}
	if err := config.SaveRules(path, rules); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Moved rule %d to %d in %s\n", idx[0], idx[1], path)
	}
	return nil
}

// normalizedNote shows what a wrapped pattern actually matches.
func normalizedNote(regex string) string {
	if !pattern.HasWrappers(regex) {
		return ""
	}
	c, err := pattern.Compile(regex, 0)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(", matches %s", c.Source())
}

// runRulesCheck reports every rule's problems and whether its hide toggle
// can work. It fails when any rule has a problem.
func runRulesCheck(path string, quiet bool, env *Environment) error {
	rules, err := config.LoadRules(path)
	if err != nil {
		return err
	}

	bad := 0
	for _, f := range ruleset.Verify(rules) {
		if !f.OK() {
			bad++
			for _, p := range f.Problems {
				fmt.Fprintf(env.Stdout, "rule %d (%s): %v\n", f.Index, orDash(f.Rule.Class), p)
			}
			continue
		}
		if quiet {
			continue
		}
		hide := "hide available"
		if !f.HideApplicable {
			hide = "hide unavailable (no capture group)"
		}
		fmt.Fprintf(env.Stdout, "rule %d (%s): ok, %s%s\n", f.Index, f.Rule.Class, hide, normalizedNote(f.Rule.Regex))
	}

	if bad > 0 {
		fmt.Fprintf(env.Stdout, "\n%d of %d rules have problems\n", bad, len(rules))
		return &reportedError{err: fmt.Errorf("%w: %d of %d", ErrRuleProblems, bad, len(rules))}
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "\n%d rules ok\n", len(rules))
	}
	return nil
}

// parseIndexArgs parses exactly n rule indexes.
func parseIndexArgs(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: expected %d rule index argument(s), got %d", ErrUsage, n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: rule index %q is not a number", ErrUsage, a)
		}
		out[i] = v
	}
	return out, nil
}
