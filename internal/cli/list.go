package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ovalkan/folio/internal/formatter"
	"github.com/ovalkan/folio/internal/project"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List published projects",
		Long:  "Print the project directory in the configured order, without starting the browser.",
		Example: `  # Human-readable listing
  folio list

  # Machine-readable listing
  folio list -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
	return cmd
}

func runList() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	projects, err := project.LoadDir(cfg.Content.Dir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	dir := project.NewDirectory(projects, ndaUnlocked(cfg))

	format := outputFmt
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	f := formatter.Get(format, colorEnabled(cfg.Output.ColorMode))
	out, err := f.Format(dir)
	if err != nil {
		return fmt.Errorf("failed to format project list: %w", err)
	}

	_, err = os.Stdout.Write(out)
	return err
}
