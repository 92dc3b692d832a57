package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/parlsim/internal/budget"
	"github.com/theirongolddev/parlsim/internal/cli"
	"github.com/theirongolddev/parlsim/internal/engine"
)

var (
	budgetFlags playerFlags
	flagAdjust  string
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Run the budget meeting from a script of adjustments",
	Long: "Generate a parliament and settle the budget. A governing party applies\n" +
		"the --adjust steps in order; an opposition party watches the coalition\n" +
		"allocate it.",
	Example: "  parlsim budget --seed 7 --scale big --stance coalition --adjust \"Healthcare+,Defense-\"",
	RunE:    runBudget,
}

func init() {
	budgetFlags.register(budgetCmd)
	budgetCmd.Flags().StringVar(&flagAdjust, "adjust", "", "Comma-separated steps such as \"Healthcare+,Defense-\"")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	s, rng, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}
	spec, err := budgetFlags.spec(cfg, rng)
	if err != nil {
		return err
	}
	if _, err := s.GenerateLandscape(spec); err != nil {
		return err
	}
	defer recordGame(cfg, s)

	w := cmd.OutOrStdout()
	printCoalition(w, s)

	event, deltas, err := advanceToBudget(s)
	if err != nil {
		return err
	}
	if event == engine.BudgetAllocated {
		if flagAdjust != "" {
			warnf("%s is in opposition; --adjust ignored", spec.Name)
		}
		printDeltas(w, deltas)
		printBudget(w, s)
		return nil
	}

	for _, step := range splitSteps(flagAdjust) {
		idx, dir, err := parseAdjustment(s, step)
		if err == nil {
			err = s.AdjustBudget(idx, dir)
			if err != nil {
				err = describeAdjustError(s, idx, dir, err)
			}
		}
		if err != nil {
			warnf("step %q: %v", step, err)
			continue
		}
		progressf("  %-28s total %s\n", step, cli.FormatShare(s.BudgetTotal()))
	}

	printBudget(w, s)
	deficit, err := s.FinalizeBudget()
	if errors.Is(err, budget.ErrUnbalancedBudget) {
		return fmt.Errorf("the %s rule needs a total of %d%%, the script leaves %d%%: %w",
			s.Rule(), budget.BaselineTotal, s.BudgetTotal(), err)
	}
	if err != nil {
		return err
	}
	if deficit > 0 {
		fmt.Fprintf(w, "  Budget passed with a %d%% deficit. Tax rate %s.\n", deficit, cli.FormatRate(s.CurrentTaxRate()))
	} else {
		fmt.Fprintf(w, "  Balanced budget passed. Tax rate %s.\n", cli.FormatRate(s.CurrentTaxRate()))
	}
	return nil
}

// advanceToBudget moves the session to the budget day.
func advanceToBudget(s *engine.Session) (engine.Event, []budget.Delta, error) {
	for {
		event, deltas, err := s.AdvanceDay()
		if err != nil || event != engine.NewDay {
			return event, deltas, err
		}
	}
}

func splitSteps(script string) []string {
	var steps []string
	for _, step := range strings.Split(script, ",") {
		if step = strings.TrimSpace(step); step != "" {
			steps = append(steps, step)
		}
	}
	return steps
}
