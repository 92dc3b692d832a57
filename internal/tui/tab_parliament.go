package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/parlsim/internal/cli"
	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/model"
	"github.com/theirongolddev/parlsim/internal/tui/components"
	"github.com/theirongolddev/parlsim/internal/tui/theme"
)

func partyColor(p model.Party) lipgloss.Color {
	t := theme.Active
	switch {
	case p.Player:
		return t.Player()
	case p.InCoalition:
		return t.Coalition()
	default:
		return t.Opposition()
	}
}

func (a App) renderParliamentTab(cw int) string {
	t := theme.Active
	parties := a.session.Parties()
	snap := a.session.Coalition()
	player, _ := a.session.PlayerParty()

	var b strings.Builder

	role := "Opposition"
	if player.InCoalition {
		role = "Governing"
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Parties", Value: fmt.Sprintf("%d", len(parties)), Note: fmt.Sprintf("Day %d", a.session.Day())},
		{Label: player.Name, Value: cli.FormatShare(player.VoteShare), Note: role, Color: t.Player()},
		{Label: "Coalition", Value: cli.FormatShare(snap.TotalShare), Note: fmt.Sprintf("%d parties", len(snap.Members)), Color: t.Coalition()},
		{Label: "Security", Value: cli.FormatScore(snap.Security.Score), Note: snap.Security.Tier.String(),
			Color: components.ColorForScore(snap.Security.Score / 100)},
	}, cw))
	b.WriteString("\n")

	// Chamber strip, left to right on the economic axis.
	benches := a.session.Seats()
	segs := make([]components.Segment, len(benches))
	for i, bench := range benches {
		p := parties[bench.PartyID]
		segs[i] = components.Segment{Value: bench.Seats, Color: partyColor(p)}
	}
	innerW := components.CardInnerWidth(cw)
	legend := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
		Render(fmt.Sprintf("%-*s%s", innerW-5, "left", "right"))
	b.WriteString(components.ContentCard("Chamber", components.StackedStrip(segs, innerW)+"\n"+legend, cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		halves = []int{cw}
	}

	table := a.renderPartyTable(parties, components.CardInnerWidth(halves[0]))
	tableCard := components.ContentCard("Parties", table, halves[0])
	if len(halves) == 1 {
		b.WriteString(tableCard)
		return b.String()
	}

	values := make([]float64, len(parties))
	labels := make([]string, len(parties))
	colors := make([]lipgloss.Color, len(parties))
	for i, p := range parties {
		values[i] = float64(p.VoteShare)
		labels[i] = string(cli.CompassMarker(i))
		colors[i] = partyColor(p)
	}
	chart := components.ColumnChart(values, labels, colors, components.CardInnerWidth(halves[1]), 10)
	b.WriteString(components.CardRow([]string{
		tableCard,
		components.ContentCard("Vote share", chart, halves[1]),
	}))
	return b.String()
}

func (a App) renderPartyTable(parties []model.Party, width int) string {
	t := theme.Active
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	nameW := max(12, width-38)
	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("%-2s %-*s %-18s %4s %4s %5s",
		"#", nameW, "Party", "Quadrant", "Soc", "Eco", "Share")))
	for i, p := range parties {
		nameStyle := lipgloss.NewStyle().Foreground(partyColor(p)).Background(t.Surface)
		if p.Player {
			nameStyle = nameStyle.Bold(true)
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%-2c ", cli.CompassMarker(i))))
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(p.Name, nameW))))
		b.WriteString(rowStyle.Render(fmt.Sprintf(" %-18s %4d %4d %5s",
			ideology.QuadrantOf(p.Social, p.Economic).Title(), p.Social, p.Economic, cli.FormatShare(p.VoteShare))))
	}
	return b.String()
}
