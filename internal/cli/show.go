package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/ovalkan/folio/internal/project"
)

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Print one project brief",
		Long:  "Render a single project's brief as formatted markdown on stdout.",
		Example: `  # Show a project
  folio show wavetable-synth`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0])
		},
	}
	return cmd
}

func runShow(slug string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	projects, err := project.LoadDir(cfg.Content.Dir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	dir := project.NewDirectory(projects, ndaUnlocked(cfg))

	index, ok := dir.IndexOf(slug)
	if !ok {
		return fmt.Errorf("no project named %q", slug)
	}
	p, _ := dir.At(index)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if p.Tagline != "" {
		fmt.Fprintf(&b, "*%s*\n\n", p.Tagline)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "`%s`\n\n", strings.Join(p.Tags, "` `"))
	}
	if p.Description != "" {
		b.WriteString(strings.TrimSpace(p.Description))
		b.WriteString("\n")
	}
	if p.Repo != "" || p.URL != "" {
		b.WriteString("\n## Links\n\n")
		if p.Repo != "" {
			fmt.Fprintf(&b, "- Repository: %s\n", p.Repo)
		}
		if p.URL != "" {
			fmt.Fprintf(&b, "- Live: %s\n", p.URL)
		}
	}

	if !colorEnabled(cfg.Output.ColorMode) {
		fmt.Print(b.String())
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(88),
	)
	if err != nil {
		fmt.Print(b.String())
		return nil
	}
	out, err := renderer.Render(b.String())
	if err != nil {
		fmt.Print(b.String())
		return nil
	}
	fmt.Print(out)
	return nil
}
