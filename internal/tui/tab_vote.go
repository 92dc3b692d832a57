package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/parlsim/internal/assembly"
	"github.com/theirongolddev/parlsim/internal/cli"
	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/tui/components"
	"github.com/theirongolddev/parlsim/internal/tui/theme"
)

func (a App) renderVoteTab(cw int) string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var ob strings.Builder
	ob.WriteString(mutedStyle.Render("Which direction should the next legislative programme take?"))
	ob.WriteString("\n")
	own := ""
	if p, ok := a.session.PlayerParty(); ok {
		own = string(ideology.QuadrantOf(p.Social, p.Economic))
	}
	for i, q := range ideology.Quadrants {
		ob.WriteString("\n")
		ob.WriteString(keyStyle.Render(fmt.Sprintf("[%d] ", i+1)))
		ob.WriteString(textStyle.Render(q.Title()))
		if string(q) == own {
			ob.WriteString(mutedStyle.Render("  (your bloc)"))
		}
	}
	ob.WriteString("\n")
	ob.WriteString(keyStyle.Render("[0] "))
	ob.WriteString(textStyle.Render("Vote with your bloc"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Motion", ob.String(), cw))

	if a.lastVote == nil {
		return b.String()
	}
	r := *a.lastVote
	b.WriteString("\n")

	rounds := []string{renderRound("First round", r.First, r.Runoff == nil, components.LayoutRow(cw, 2)[0])}
	if r.Runoff != nil {
		rounds = append(rounds, renderRound("Runoff", *r.Runoff, true, components.LayoutRow(cw, 2)[1]))
	}
	if len(rounds) == 1 || a.isCompactLayout() {
		b.WriteString(strings.Join(rounds, "\n"))
	} else {
		b.WriteString(components.CardRow(rounds))
	}
	b.WriteString("\n")

	winStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Bold(true)
	b.WriteString(components.ContentCard("Result", winStyle.Render(r.Winner.Title()), cw))
	return b.String()
}

func renderRound(title string, r assembly.Round, final bool, width int) string {
	t := theme.Active
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	leadStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)

	leader, share := r.Leader()
	total := 0
	for _, q := range r.Options {
		total += r.Tally[q]
	}

	var b strings.Builder
	barW := max(10, components.CardInnerWidth(width)-30)
	for i, q := range r.Options {
		if i > 0 {
			b.WriteString("\n")
		}
		style := textStyle
		if q == leader {
			style = leadStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%-19s", q.Title())))
		b.WriteString(mutedStyle.Render(cli.RenderShareBar(r.Tally[q], total, barW)))
	}
	b.WriteString("\n")
	verdict := fmt.Sprintf("%s leads with %s", leader.Title(), cli.FormatPercent(share))
	if !final {
		verdict += ", short of a majority"
	}
	b.WriteString(mutedStyle.Render(verdict))
	return components.ContentCard(title, b.String(), width)
}
