package main

import (
	"io"
	"os"

	"github.com/alnah/go-regexmark/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, environment lookup, and style listing.
type Environment struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	Environ     func() []string
	StyleLoader assets.StyleLoader
}

// DefaultEnv returns production environment with embedded styles.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		Environ:     os.Environ,
		StyleLoader: assets.NewEmbeddedLoader(),
	}
}
