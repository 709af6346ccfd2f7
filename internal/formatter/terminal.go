package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/ovalkan/folio/internal/project"
)

// terminalFormatter formats the directory as plain text using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(dir *project.Directory) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, dir)

	if dir.Len() == 0 {
		b.WriteString("No projects found.\n")
		return []byte(b.String()), nil
	}

	f.writeProjects(&b, dir)

	return []byte(b.String()), nil
}

// writeHeader writes a box header with the project count
func (f *terminalFormatter) writeHeader(b *strings.Builder, dir *project.Directory) {
	header := fmt.Sprintf("Portfolio (%d projects)", dir.Len())
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeProjects writes one tree view per project
func (f *terminalFormatter) writeProjects(b *strings.Builder, dir *project.Directory) {
	for i, p := range dir.List() {
		name := p.Title
		if p.NDA {
			name += " " + termfmt.GetEmoji("security_pattern", f.opts)
		}
		fmt.Fprintf(b, "%d. %s (/project/%s)\n", i+1, name, p.Slug)

		items := []termfmt.TreeItem{
			{Label: "Tagline", Value: valueOr(p.Tagline, "-")},
			{Label: "Tags", Value: valueOr(strings.Join(p.Tags, ", "), "-")},
		}
		if p.Year > 0 {
			items = append(items, termfmt.TreeItem{Label: "Year", Value: fmt.Sprintf("%d", p.Year)})
		}
		if p.Repo != "" {
			items = append(items, termfmt.TreeItem{Label: "Repo", Value: p.Repo})
		}
		items = append(items, termfmt.TreeItem{Label: "Index", Value: fmt.Sprintf("%d", i), Last: true})

		b.WriteString(termfmt.TreeViewWithOptions(items, f.opts))
		b.WriteString("\n")
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
