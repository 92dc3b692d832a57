package cmd

import (
	"github.com/spf13/cobra"
	"github.com/theirongolddev/parlsim/internal/ideology"
)

var (
	voteFlags  playerFlags
	flagChoice string
)

var voteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Put a motion to a generated parliament",
	Long: "Every party backs the option of its own compass quadrant. Without a\n" +
		"majority the two leading options go to a runoff.",
	Example: "  parlsim vote --seed 3 --choice progressive-left",
	RunE:    runVote,
}

func init() {
	voteFlags.register(voteCmd)
	voteCmd.Flags().StringVar(&flagChoice, "choice", "", "Your party's vote, e.g. conservative-right (default: your own quadrant)")
	rootCmd.AddCommand(voteCmd)
}

func runVote(cmd *cobra.Command, _ []string) error {
	var choice ideology.Quadrant
	if flagChoice != "" {
		q, err := ideology.ParseQuadrant(flagChoice)
		if err != nil {
			return err
		}
		choice = q
	}

	cfg := loadConfig()
	s, rng, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}
	spec, err := voteFlags.spec(cfg, rng)
	if err != nil {
		return err
	}
	if _, err := s.GenerateLandscape(spec); err != nil {
		return err
	}

	r, err := s.HoldVote(choice)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	printParties(w, s)
	printVote(w, r)
	return nil
}
