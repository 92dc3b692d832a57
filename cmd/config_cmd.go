package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/parlsim/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	scale, stance := cfg.General.Defaults()
	fmt.Fprintln(w, "  [General]")
	fmt.Fprintf(w, "    Default scale:  %s\n", scale)
	fmt.Fprintf(w, "    Default stance: %s\n", stance)
	fmt.Fprintf(w, "    Journal:        %v\n", cfg.General.Journal)
	fmt.Fprintf(w, "    Journal path:   %s\n", journalPath(cfg))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Generator]")
	if gen, err := cfg.Generator.Options(); err != nil {
		fmt.Fprintf(w, "    %v\n", err)
	} else {
		fmt.Fprintf(w, "    Parties:    %d-%d generated\n", gen.MinParties, gen.MaxParties)
		if len(cfg.Generator.PartyNames) > 0 {
			fmt.Fprintf(w, "    Name pool:  %s\n", strings.Join(gen.Names, ", "))
		} else {
			fmt.Fprintln(w, "    Name pool:  built-in")
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Appearance]")
	fmt.Fprintf(w, "    Theme: %s\n", cfg.Appearance.Theme)
	if seed, ok, err := config.SeedFromEnv(); err == nil && ok {
		fmt.Fprintf(w, "\n  %s=%d pins the random seed.\n", config.SeedEnv, seed)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Run `parlsim setup` to reconfigure.")
	return nil
}
