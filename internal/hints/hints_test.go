package hints

// ForBrowserConnect tests are not parallel: they use t.Setenv and replace
// IsInContainer.

import (
	"strings"
	"testing"
)

func withContainer(t *testing.T, in bool) {
	t.Helper()
	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })
	IsInContainer = func() bool { return in }
}

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name        string
		container   bool
		env         map[string]string
		wantSandbox bool
		wantBin     bool
	}{
		{
			name:        "in CI",
			env:         map[string]string{"CI": "true"},
			wantSandbox: true,
			wantBin:     true,
		},
		{
			name:        "in container",
			container:   true,
			env:         map[string]string{},
			wantSandbox: true,
			wantBin:     true,
		},
		{
			name:      "sandbox already disabled",
			container: true,
			env:       map[string]string{"ROD_NO_SANDBOX": "1"},
			wantBin:   true,
		},
		{
			name: "everything configured",
			env:  map[string]string{"ROD_BROWSER_BIN": "/usr/bin/chromium"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withContainer(t, tt.container)
			for _, k := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "ROD_NO_SANDBOX", "ROD_BROWSER_BIN"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got := ForBrowserConnect()
			if strings.Contains(got, "ROD_NO_SANDBOX") != tt.wantSandbox {
				t.Errorf("ForBrowserConnect() = %q, sandbox hint want %v", got, tt.wantSandbox)
			}
			if strings.Contains(got, "ROD_BROWSER_BIN") != tt.wantBin {
				t.Errorf("ForBrowserConnect() = %q, browser hint want %v", got, tt.wantBin)
			}
			if !tt.wantSandbox && !tt.wantBin && got != "" {
				t.Errorf("ForBrowserConnect() = %q, want empty", got)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	got := ForConfigNotFound([]string{"work.yaml", "/home/u/.config/go-regexmark/work.yaml"})
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("hint format = %q", got)
	}
	if !strings.Contains(got, "create /home/u/.config/go-regexmark/work.yaml") {
		t.Errorf("ForConfigNotFound() = %q, want user config suggestion", got)
	}

	if got := ForConfigNotFound(nil); strings.Contains(got, "create") {
		t.Errorf("ForConfigNotFound(nil) = %q, want no create suggestion", got)
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}
	if got := ForStyleNotFound([]string{"default", "plain"}); !strings.Contains(got, "available: default, plain") {
		t.Errorf("ForStyleNotFound() = %q", got)
	}
}

func TestForIgnoredRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int
		path  string
		want  string
	}{
		{0, "", ""},
		{1, "", `1 rule ignored; run "regexmark rules check" for details`},
		{3, "rules.yaml", `3 rules ignored; run "regexmark rules check -r rules.yaml" for details`},
	}

	for _, tt := range tests {
		got := ForIgnoredRules(tt.count, tt.path)
		if tt.want == "" {
			if got != "" {
				t.Errorf("ForIgnoredRules(%d) = %q, want empty", tt.count, got)
			}
			continue
		}
		if got != "\n  hint: "+tt.want {
			t.Errorf("ForIgnoredRules(%d, %q) = %q", tt.count, tt.path, got)
		}
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for _, h := range []string{ForTimeout(), ForHTMLOutput(), ForOutputDirectory(), ForInvalidClass()} {
		if !strings.HasPrefix(h, "\n  hint: ") || len(h) <= len("\n  hint: ") {
			t.Errorf("hint %q is not formatted", h)
		}
	}
}
