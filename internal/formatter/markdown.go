package formatter

import (
	"fmt"
	"strings"

	"github.com/ovalkan/folio/internal/project"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(dir *project.Directory) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Portfolio\n\n")

	if dir.Len() == 0 {
		b.WriteString("No projects.\n")
		return []byte(b.String()), nil
	}

	b.WriteString("| # | Project | Tags | Year |\n")
	b.WriteString("|---|---------|------|------|\n")
	for i, p := range dir.List() {
		title := p.Title
		if p.NDA {
			title += " (NDA)"
		}
		year := "-"
		if p.Year > 0 {
			year = fmt.Sprintf("%d", p.Year)
		}
		fmt.Fprintf(&b, "| %d | [%s](/project/%s) | %s | %s |\n",
			i+1, title, p.Slug, valueOr(strings.Join(p.Tags, ", "), "-"), year)
	}
	b.WriteString("\n")

	for _, p := range dir.List() {
		fmt.Fprintf(&b, "## %s\n\n", p.Title)
		if p.Tagline != "" {
			fmt.Fprintf(&b, "*%s*\n\n", p.Tagline)
		}
		if p.Description != "" {
			b.WriteString(strings.TrimSpace(p.Description))
			b.WriteString("\n\n")
		}
	}

	return []byte(b.String()), nil
}
