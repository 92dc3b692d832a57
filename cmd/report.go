package cmd

import (
	"fmt"
	"io"

	"github.com/theirongolddev/parlsim/internal/assembly"
	"github.com/theirongolddev/parlsim/internal/budget"
	"github.com/theirongolddev/parlsim/internal/cabinet"
	"github.com/theirongolddev/parlsim/internal/cli"
	"github.com/theirongolddev/parlsim/internal/engine"
	"github.com/theirongolddev/parlsim/internal/ideology"
)

func printParties(w io.Writer, s *engine.Session) {
	rows := make([][]string, 0, len(s.Parties()))
	for _, p := range s.Parties() {
		name := p.Name
		if p.Player {
			name += " (you)"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID+1),
			name,
			cli.Role(p),
			fmt.Sprintf("%s %d", p.SocialLabel, p.Social),
			fmt.Sprintf("%s %d", p.EconomicLabel, p.Economic),
			cli.FormatShare(p.VoteShare),
		})
	}
	fmt.Fprintln(w, cli.RenderTable(cli.Table{
		Title:    "Parliament",
		Headers:  []string{"#", "Party", "Role", "Social", "Economic", "Share"},
		Rows:     rows,
		LeftCols: 5,
	}))
}

func printCoalition(w io.Writer, s *engine.Session) {
	snap := s.Coalition()
	if !snap.HasMembers {
		fmt.Fprintln(w, "  No coalition could be formed.")
		fmt.Fprintln(w)
		return
	}

	rows := [][]string{}
	for _, p := range snap.Members {
		rows = append(rows, []string{p.Name, cli.FormatShare(p.VoteShare)})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total", cli.FormatShare(snap.TotalShare)},
		[]string{"Economic lean", cli.FormatLean(snap.EconomicLean, snap.HasMembers)},
		[]string{"Social lean", cli.FormatLean(snap.SocialLean, snap.HasMembers)},
		[]string{"Fiscal rule", s.Rule().String()},
	)
	if r := s.Repaired(); r >= 0 {
		rows = append(rows, []string{"Joined after count", s.Parties()[r].Name})
	}
	fmt.Fprintln(w, cli.RenderTable(cli.Table{
		Title:   "Ruling coalition",
		Headers: []string{"Party", "Share"},
		Rows:    rows,
	}))
	printSecurity(w, s)
}

func printSecurity(w io.Writer, s *engine.Session) {
	r := s.CoalitionSecurity()
	fmt.Fprintf(w, "  %s %s (%s)\n", cli.Header("Coalition security:"), cli.FormatScore(r.Score), r.Tier)
	fmt.Fprintf(w, "  %s\n\n", cli.Muted(r.Tier.Narrative()))
}

func printBudget(w io.Writer, s *engine.Session) {
	rows := make([][]string, 0, len(s.Ledger())+3)
	for i, subj := range s.Ledger() {
		change := ""
		if d := subj.Allocation - subj.Base; d != 0 {
			change = cli.FormatSigned(d)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			subj.Name,
			cli.FormatShare(subj.Allocation),
			change,
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"", "Total", cli.FormatShare(s.BudgetTotal()), ""},
		[]string{"", "Tax rate", cli.FormatRate(s.CurrentTaxRate()), ""},
	)
	fmt.Fprintln(w, cli.RenderTable(cli.Table{
		Title:    fmt.Sprintf("Budget (%s)", s.Rule()),
		Headers:  []string{"#", "Subject", "Allocation", "Change"},
		Rows:     rows,
		LeftCols: 2,
	}))
}

func printDeltas(w io.Writer, deltas []budget.Delta) {
	if len(deltas) == 0 {
		return
	}
	fmt.Fprintln(w, "  "+cli.Header("The coalition set the budget:"))
	for _, d := range deltas {
		fmt.Fprintf(w, "    %-18s %3d%% -> %3d%%  (%s)\n", d.Subject, d.Before, d.After, cli.FormatSigned(d.Change()))
	}
	fmt.Fprintln(w)
}

func printCabinet(w io.Writer, c cabinet.Cabinet) {
	posts := append([]cabinet.Post{c.President}, c.Ministers...)
	rows := make([][]string, 0, len(posts))
	for i, p := range posts {
		l := p.Leader
		rows = append(rows, []string{
			p.Office, l.FullName(), p.Party,
			fmt.Sprintf("%d", l.Age),
			fmt.Sprintf("%d/%d/%d", l.Charisma, l.Intelligence, l.Integrity),
		})
		if i == 0 {
			rows = append(rows, []string{"---"})
		}
	}
	fmt.Fprintln(w, cli.RenderTable(cli.Table{
		Title:    "Government",
		Headers:  []string{"Office", "Holder", "Party", "Age", "Cha/Int/Itg"},
		Rows:     rows,
		LeftCols: 3,
	}))
}

func printVote(w io.Writer, r assembly.Result) {
	printRound(w, "First round", r.First)
	if r.Runoff != nil {
		printRound(w, "Runoff", *r.Runoff)
	}
	fmt.Fprintf(w, "  %s %s\n\n", cli.Header("Carried:"), r.Winner.Title())
}

func printRound(w io.Writer, title string, r assembly.Round) {
	total := 0
	for _, q := range r.Options {
		total += r.Tally[q]
	}
	rows := make([][]string, 0, len(r.Options))
	for _, q := range r.Options {
		rows = append(rows, []string{q.Title(), cli.RenderShareBar(r.Tally[q], total, 20)})
	}
	fmt.Fprintln(w, cli.RenderTable(cli.Table{
		Title:    title,
		Headers:  []string{"Option", "Votes"},
		Rows:     rows,
		LeftCols: 2,
	}))
}

func printCompass(w io.Writer, s *engine.Session) {
	fmt.Fprintln(w, "  "+cli.Header("Political compass"))
	fmt.Fprintln(w, cli.RenderCompass(s.Parties()))
	if p, ok := s.PlayerParty(); ok {
		fmt.Fprintf(w, "  %s\n", cli.RenderSpectrum(p.Social, string(ideology.Progressive), string(ideology.Conservative)))
		fmt.Fprintf(w, "  %s\n\n", cli.RenderSpectrum(p.Economic, string(ideology.Left), string(ideology.Right)))
	}
}
