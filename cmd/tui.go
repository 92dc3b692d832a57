package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/parlsim/internal/tui"
	"github.com/theirongolddev/parlsim/internal/tui/theme"
)

var tuiFlags playerFlags

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive parliament dashboard",
	Long: "Launch the full-screen dashboard. Without founding flags the dashboard\n" +
		"opens on the new-party form.",
	RunE: runTUI,
}

func init() {
	tuiFlags.register(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so background fills survive terminals lipgloss
	// would otherwise detect as Ascii.
	lipgloss.SetColorProfile(termenv.TrueColor)

	rng, seed, err := resolveSeed(cmd)
	if err != nil {
		return err
	}
	// Engine logs stay off: the alt screen owns the terminal.
	opts := tui.Options{
		Config: cfg,
		Seed:   seed,
		Rand:   rng,
	}
	if tuiFlags.given() {
		spec, err := tuiFlags.spec(cfg, rng)
		if err != nil {
			return err
		}
		opts.Player = &spec
	}

	app, err := tui.NewApp(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if a, ok := final.(tui.App); ok {
		recordGame(cfg, a.Session())
	}
	return nil
}
