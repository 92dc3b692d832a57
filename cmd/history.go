package cmd

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/parlsim/internal/cli"
	"github.com/theirongolddev/parlsim/internal/model"
	"github.com/theirongolddev/parlsim/internal/store"
)

var flagLimit int

// sparklineGames is how many recent games the stats sparkline covers.
const sparklineGames = 30

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded games",
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recorded game (an id prefix is enough)",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate statistics over every recorded game",
	RunE:  runHistoryStats,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of games to list")
	historyCmd.AddCommand(historyShowCmd, historyStatsCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if flagLimit < 1 {
		return fmt.Errorf("--limit must be positive, got %d", flagLimit)
	}
	j, err := openJournal(loadConfig())
	if err != nil {
		return err
	}
	defer j.Close()

	games, err := j.RecentGames(flagLimit)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(games) == 0 {
		fmt.Fprintln(w, "  No games recorded yet. Run `parlsim play` to start one.")
		return nil
	}
	if err := writeGameTable(w, games, time.Now()); err != nil {
		return err
	}
	total, err := j.Count()
	if err != nil {
		return err
	}
	if total > len(games) {
		fmt.Fprintf(w, "  Showing %d of %d games (use --limit for more)\n", len(games), total)
	}
	return nil
}

func writeGameTable(w io.Writer, games []model.GameSummary, now time.Time) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Played", "Party", "Role", "Coalition", "Security", "Budget", "Tax"}),
	)
	for _, g := range games {
		role := "Opposition"
		if g.InCoalition {
			role = "Coalition"
		}
		if err := table.Append([]string{
			cli.ShortID(g.ID),
			cli.FormatAgo(g.PlayedAt, now),
			g.PartyName,
			role,
			fmt.Sprintf("%s (%d parties)", cli.FormatShare(g.CoalitionShare), g.CoalitionSize),
			cli.FormatScore(g.Security),
			budgetOutcome(g),
			cli.FormatRate(g.TaxRate),
		}); err != nil {
			return fmt.Errorf("building table: %w", err)
		}
	}
	return table.Render()
}

func budgetOutcome(g model.GameSummary) string {
	switch {
	case !g.BudgetDone:
		return "unsettled"
	case g.Deficit > 0:
		return fmt.Sprintf("%d%% deficit", g.Deficit)
	default:
		return "balanced"
	}
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal(loadConfig())
	if err != nil {
		return err
	}
	defer j.Close()

	g, err := j.Game(args[0])
	if errors.Is(err, store.ErrAmbiguousID) {
		return fmt.Errorf("%w; give more characters of the id", err)
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("Game %s", cli.ShortID(g.ID))))
	fmt.Fprintf(w, "  Played:    %s (%s)\n", g.PlayedAt.Local().Format("2006-01-02 15:04"), cli.FormatAgo(g.PlayedAt, time.Now()))
	fmt.Fprintf(w, "  Seed:      %d\n", g.Seed)
	fmt.Fprintf(w, "  Party:     %s (%s, founded in %s)\n", g.PartyName, g.Scale, g.Stance)
	fmt.Fprintf(w, "  Coalition: %s over %d parties, %s rule\n", cli.FormatShare(g.CoalitionShare), g.CoalitionSize, g.Rule)
	fmt.Fprintf(w, "  Security:  %s (%s)\n", cli.FormatScore(g.Security), g.SecurityTier)
	fmt.Fprintf(w, "  Budget:    %s, total %s, tax %s\n", budgetOutcome(g), cli.FormatShare(g.BudgetTotal), cli.FormatRate(g.TaxRate))
	fmt.Fprintf(w, "  Days:      %d\n\n", g.Days)

	rows := make([][]string, 0, len(g.Parties))
	for _, p := range g.Parties {
		name := p.Name
		if p.Player {
			name += " (you)"
		}
		rows = append(rows, []string{
			name,
			cli.Role(p),
			fmt.Sprintf("%s %d", p.SocialLabel, p.Social),
			fmt.Sprintf("%s %d", p.EconomicLabel, p.Economic),
			cli.FormatShare(p.VoteShare),
		})
	}
	fmt.Fprintln(w, cli.RenderTable(cli.Table{
		Title:    "Parliament",
		Headers:  []string{"Party", "Role", "Social", "Economic", "Share"},
		Rows:     rows,
		LeftCols: 4,
	}))
	fmt.Fprintf(w, "  Replay with: parlsim --seed %d\n", g.Seed)
	return nil
}

func runHistoryStats(cmd *cobra.Command, _ []string) error {
	j, err := openJournal(loadConfig())
	if err != nil {
		return err
	}
	defer j.Close()

	st, err := j.Stats()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if st.Games == 0 {
		fmt.Fprintln(w, "  No games recorded yet.")
		return nil
	}

	recent, err := j.RecentGames(sparklineGames)
	if err != nil {
		return err
	}
	security := make([]float64, 0, len(recent))
	for _, g := range recent {
		security = append(security, g.Security)
	}
	slices.Reverse(security)

	fmt.Fprintln(w, cli.RenderTitle("Parliamentary record"))
	fmt.Fprintf(w, "  Games played:        %s\n", cli.FormatNumber(int64(st.Games)))
	fmt.Fprintf(w, "  In government:       %d (%s)\n", st.Governing, cli.FormatPercent(st.GoverningRate()))
	fmt.Fprintf(w, "  Budgets settled:     %d, %d with a deficit (%d%% total)\n", st.Finalized, st.DeficitBudgets, st.TotalDeficit)
	fmt.Fprintf(w, "  Avg coalition share: %.1f%%\n", st.AvgCoalition)
	fmt.Fprintf(w, "  Avg tax rate:        %s\n", cli.FormatRate(st.AvgTaxRate))
	fmt.Fprintf(w, "  Security:            avg %s, best %s, worst %s\n",
		cli.FormatScore(st.AvgSecurity), cli.FormatScore(st.BestSecurity), cli.FormatScore(st.WorstSecurity))
	fmt.Fprintf(w, "  Recent security:     %s\n", cli.RenderSparkline(security))
	return nil
}
