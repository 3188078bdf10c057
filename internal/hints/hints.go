// Package hints builds the actionable "hint:" lines appended to CLI errors.
// Every hint is formatted as "\n  hint: <text>".
package hints

import (
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-regexmark/internal/fileutil"
)

// IsInContainer reports whether the process runs in a container. Docker
// creates /.dockerenv.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect suggests the rod environment variables that usually fix
// a failed Chrome launch.
func ForBrowserConnect() string {
	var hs []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hs = append(hs, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hs = append(hs, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	if len(hs) == 0 {
		return ""
	}
	return format(strings.Join(hs, "; "))
}

// ForTimeout suggests a longer timeout.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForHTMLOutput suggests skipping the browser entirely.
func ForHTMLOutput() string {
	return format("use --format html to skip PDF generation")
}

// ForConfigNotFound suggests --config or creating the user config file
// among searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-regexmark") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory is shown when the output directory cannot be created.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available style names.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForIgnoredRules points at the rule checker when rules were skipped.
func ForIgnoredRules(count int, rulesPath string) string {
	if count == 0 {
		return ""
	}
	cmd := "regexmark rules check"
	if rulesPath != "" {
		cmd += " -r " + rulesPath
	}
	noun := "rule"
	if count > 1 {
		noun = "rules"
	}
	return format(fmt.Sprintf("%d %s ignored; run %q for details", count, noun, cmd))
}

// ForInvalidClass describes what a marker class may contain.
func ForInvalidClass() string {
	return format("class must be a CSS identifier: letters, digits, '-' or '_', not starting with a digit")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
