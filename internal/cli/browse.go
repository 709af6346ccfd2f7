package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ovalkan/folio/internal/config"
	"github.com/ovalkan/folio/internal/logger"
	"github.com/ovalkan/folio/internal/nav"
	"github.com/ovalkan/folio/internal/route"
	"github.com/ovalkan/folio/internal/ui"
)

const ndaUnlockEnv = "FOLIO_NDA_UNLOCK"

func newBrowseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [slug]",
		Short: "Open the interactive portfolio browser",
		Long: `Open the portfolio carousel in the terminal.

With a slug argument the browser opens directly on that project, as if its
address had been typed into the bar. Without one it resumes the last
session when session restore is enabled.`,
		Example: `  # Browse the portfolio
  folio browse

  # Open directly on a project
  folio browse wavetable-synth`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := ""
			if len(args) == 1 {
				slug = args[0]
			}
			return runBrowse(slug)
		},
	}
	return cmd
}

func runBrowse(slug string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.NewWithCallback("browse", func() bool {
		return isVerbose() || cfg.Output.Verbose
	})
	// The alternate screen owns stderr while the browser runs.
	if cfg.UI.LogFile != "" {
		if err := log.RedirectToFile(cfg.UI.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cannot open log file: %v\n", err)
		} else {
			defer func() { _ = log.Close() }()
		}
	}

	initialRoute := initialRouteFor(cfg, slug, log)
	model := ui.NewModel(cfg, log, initialRoute, ndaUnlocked(cfg))

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	loader := config.NewLoader()
	cfg, err := loader.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// initialRouteFor picks the starting address: an explicit slug wins, then the
// saved session, then the portfolio root.
func initialRouteFor(cfg *config.Config, slug string, log *logger.Logger) string {
	var codec route.Codec
	if slug != "" {
		return codec.Encode(slug)
	}
	if cfg.Session.Restore {
		saved, err := nav.LoadSession(cfg.Session.Path)
		if err != nil {
			log.Warn("failed to read session: %v", err)
		} else if saved != "" {
			return saved
		}
	}
	return "/"
}

// ndaUnlocked reports whether restricted projects should be listed. The
// config can opt in outright; otherwise the unlock passphrase has to arrive
// via the environment so it never lands in shell history.
func ndaUnlocked(cfg *config.Config) bool {
	if cfg.Content.IncludeNDA {
		return true
	}
	key := os.Getenv(ndaUnlockEnv)
	return key != "" && cfg.Content.NDAKey != "" && key == cfg.Content.NDAKey
}
