package assets

import (
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-regexmark/internal/fileutil"
)

// DefaultStyleName is the built-in style used when none is configured.
const DefaultStyleName = "default"

// StyleLoader loads CSS by name (without the .css extension).
type StyleLoader interface {
	LoadStyle(name string) (string, error)
	// Styles lists the available names, sorted.
	Styles() []string
}

// ValidateAssetName rejects empty names and names containing separators or
// dots, which could escape the styles directory or change the extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ResolveStyle turns a style setting into CSS. Values that look like a file
// path are read from disk; anything else is a style name for loader. An
// empty value selects DefaultStyleName.
func ResolveStyle(loader StyleLoader, value string) (string, error) {
	if value == "" {
		value = DefaultStyleName
	}
	if fileutil.IsFilePath(value) || strings.HasSuffix(value, ".css") {
		content, err := os.ReadFile(value) // #nosec G304 -- user-selected stylesheet
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrStyleNotFound, value)
			}
			return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		return string(content), nil
	}
	return loader.LoadStyle(value)
}
