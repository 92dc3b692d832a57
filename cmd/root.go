// Package cmd implements the parlsim CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/parlsim/internal/config"
	"github.com/theirongolddev/parlsim/internal/engine"
	"github.com/theirongolddev/parlsim/internal/entropy"
)

var (
	flagSeed      int64
	flagQuiet     bool
	flagVerbose   bool
	flagNoJournal bool
	flagDB        string
)

var rootCmd = &cobra.Command{
	Use:   "parlsim",
	Short: "Coalition formation and policy simulation",
	Long: "Found a party, enter a procedurally generated parliament, watch the coalition form\n" +
		"and negotiate the budget under the fiscal rule your coalition's ideology imposes.",
	SilenceUsage: true,
	RunE:         runPlay,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Random seed for a replayable game (default: clock, or $"+config.SeedEnv+")")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log engine decisions to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoJournal, "no-journal", false, "Do not record the game in the history journal")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Journal database path (default: XDG data dir)")
}

// progressf writes a status line to stderr unless --quiet is set.
func progressf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

var warnColor = color.New(color.FgYellow)

func warnf(format string, args ...any) {
	_, _ = warnColor.Fprintf(os.Stderr, "  warning: "+format+"\n", args...)
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig falls back to defaults when the config file is unreadable so a
// broken file never blocks a game.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		warnf("%v (using defaults)", err)
		return config.DefaultConfig()
	}
	return cfg
}

// resolveSeed picks the seed from --seed, then $PARLSIM_SEED, then the
// clock.
func resolveSeed(cmd *cobra.Command) (*rand.Rand, int64, error) {
	if cmd.Flags().Changed("seed") {
		return entropy.New(flagSeed), flagSeed, nil
	}
	seed, ok, err := config.SeedFromEnv()
	if err != nil {
		return nil, 0, err
	}
	if ok {
		return entropy.New(seed), seed, nil
	}
	rng, seed := entropy.FromClock()
	return rng, seed, nil
}

// newSession builds an empty session from the config and seed flags.
func newSession(cmd *cobra.Command, cfg config.Config) (*engine.Session, *rand.Rand, error) {
	gen, err := cfg.Generator.Options()
	if err != nil {
		return nil, nil, fmt.Errorf("loading generator config: %w", err)
	}
	rng, seed, err := resolveSeed(cmd)
	if err != nil {
		return nil, nil, err
	}
	s := engine.New(engine.Config{
		Rand:      rng,
		Seed:      seed,
		Generator: gen,
		Logger:    newLogger(os.Stderr),
	})
	return s, rng, nil
}
