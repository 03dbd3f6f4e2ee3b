// File: pkg/bundle/config.go
package bundle

import (
	"fmt"
	"strings"
)

// Arguments holds the configuration for a single bundle operation.
type Arguments struct {
	Languages        []string // Requested language tokens (case-insensitive).
	Output           string   // Destination path for the bundle file.
	Root             string   // Directory to scan; defaults to the working directory.
	Note             bool     // Write each file's relative path as a comment before its content.
	Sort             bool     // Order files by name instead of by extension.
	RemoveEmptyLines bool     // Drop zero-length lines from file contents.
	Author           string   // Optional author name written as a leading comment.
}

// ValidateArguments checks the parts of an invocation that must be rejected
// before any file I/O happens: the language selection and the output path.
func (a *Arguments) ValidateArguments() error {
	if err := ValidateLanguages(a.Languages); err != nil {
		return err
	}
	if strings.TrimSpace(a.Output) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}
