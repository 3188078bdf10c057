// Package assets provides the stylesheets injected into rendered documents.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── FilesystemLoader  - styles from a directory on disk
//	    └── Resolver          - custom first, embedded as fallback
//
// Built-in styles:
//
//	default  - document typography, callouts, code, and marker styles
//	plain    - marker styles only, for hosts that bring their own theme
//
// A custom directory holds styles/{name}.css. Names are validated so they
// cannot leave the directory, and FilesystemLoader resolves symlinks before
// checking containment.
package assets
