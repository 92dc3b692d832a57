package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/parlsim/internal/config"
	"github.com/theirongolddev/parlsim/internal/model"
	"github.com/theirongolddev/parlsim/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	scale, stance := cfg.General.Defaults()
	scaleVal, stanceVal := string(scale), string(stance)

	themes := huh.NewOptions(theme.Names()...)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to parlsim").
				Description("These answers become the defaults for new games."),
			huh.NewSelect[string]().
				Title("Default party size").
				Options(
					huh.NewOption("Small", string(model.ScaleSmall)),
					huh.NewOption("Big", string(model.ScaleBig)),
				).
				Value(&scaleVal),
			huh.NewSelect[string]().
				Title("Default starting stance").
				Options(
					huh.NewOption("Opposition", string(model.StanceOpposition)),
					huh.NewOption("Coalition", string(model.StanceCoalition)),
				).
				Value(&stanceVal),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Record finished games in the history journal?").
				Value(&cfg.General.Journal),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&cfg.Appearance.Theme),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	cfg.General.DefaultScale = scaleVal
	cfg.General.DefaultStance = stanceVal

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Saved to %s\n", config.ConfigPath())
	fmt.Fprintln(w, "  Run `parlsim setup` anytime to reconfigure.")
	fmt.Fprintln(w)
	return nil
}
