// Package formatter renders the project directory for the non-TUI commands.
package formatter

import (
	"strings"

	"github.com/ovalkan/folio/internal/project"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(dir *project.Directory) ([]byte, error)
}

// Get returns the formatter for the given format name, defaulting to text.
func Get(format string, color bool) Formatter {
	switch strings.ToLower(format) {
	case "json":
		return NewJSON()
	case "markdown", "md":
		return NewMarkdown()
	default:
		return NewTerminal(color)
	}
}
