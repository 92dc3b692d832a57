package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/parlsim/internal/cli"
	"github.com/theirongolddev/parlsim/internal/tui/components"
	"github.com/theirongolddev/parlsim/internal/tui/theme"
)

func (a App) renderCoalitionTab(cw int) string {
	t := theme.Active
	snap := a.session.Coalition()
	search := a.session.Search()
	report := snap.Security

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Italic(true)

	var b strings.Builder

	halves := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		halves = []int{cw, cw}
	}

	// Members
	var mb strings.Builder
	if !snap.HasMembers {
		mb.WriteString(noteStyle.Render("No coalition could be formed."))
	}
	nameW := max(12, components.CardInnerWidth(halves[0])-8)
	for i, p := range snap.Members {
		if i > 0 {
			mb.WriteString("\n")
		}
		nameStyle := lipgloss.NewStyle().Foreground(partyColor(p)).Background(t.Surface)
		mb.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(p.Name, nameW))))
		mb.WriteString(valueStyle.Render(fmt.Sprintf(" %6s", cli.FormatShare(p.VoteShare))))
	}
	members := components.ContentCard(fmt.Sprintf("Members (%s)", cli.FormatShare(snap.TotalShare)), mb.String(), halves[0])

	// Profile
	line := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-18s", label)) + valueStyle.Render(value) + "\n"
	}
	var pb strings.Builder
	pb.WriteString(line("Economic lean", cli.FormatLean(snap.EconomicLean, snap.HasMembers)))
	pb.WriteString(line("Social lean", cli.FormatLean(snap.SocialLean, snap.HasMembers)))
	pb.WriteString(line("Fiscal rule", a.session.Rule().String()))
	pb.WriteString(line("Majority", fmt.Sprintf("%t", snap.TotalShare >= 50)))
	if search.Seed >= 0 {
		pb.WriteString(line("Formed around", a.session.Parties()[search.Seed].Name))
		pb.WriteString(line("Cohesion limit", fmt.Sprintf("%d (%d attempts)", search.Threshold, search.Attempts)))
	}
	if r := a.session.Repaired(); r >= 0 {
		pb.WriteString(line("Joined later", a.session.Parties()[r].Name))
	}
	profile := components.ContentCard("Profile", strings.TrimSuffix(pb.String(), "\n"), halves[1])

	if len(halves) == 2 && !a.isCompactLayout() {
		b.WriteString(components.CardRow([]string{members, profile}))
	} else {
		b.WriteString(members + "\n" + profile)
	}
	b.WriteString("\n")

	// Security
	innerW := components.CardInnerWidth(cw)
	var sb strings.Builder
	sb.WriteString(components.ScoreBar("Security", report.Score/100, 10, max(10, innerW-18)))
	sb.WriteString("\n")
	sb.WriteString(noteStyle.Render(truncStr(report.Tier.Narrative(), innerW)))
	if len(report.Pairs) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(labelStyle.Render(fmt.Sprintf("Average pair difference %.2f over %d pairs", report.AverageDifference, len(report.Pairs))))
		pairW := max(10, (innerW-24)/2)
		for _, p := range report.Pairs {
			sb.WriteString("\n")
			sb.WriteString(valueStyle.Render(fmt.Sprintf("%-*s ↔ %-*s", pairW, truncStr(p.A, pairW), pairW, truncStr(p.B, pairW))))
			sb.WriteString(labelStyle.Render(fmt.Sprintf("  soc %2d eco %2d  = %2d", p.SocialDiff, p.EconomicDiff, p.Difference())))
		}
	}
	b.WriteString(components.ContentCard("Stability", sb.String(), cw))
	return b.String()
}
