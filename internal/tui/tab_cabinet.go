package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/parlsim/internal/cabinet"
	"github.com/theirongolddev/parlsim/internal/tui/components"
	"github.com/theirongolddev/parlsim/internal/tui/theme"
)

func (a App) renderCabinetTab(cw int) string {
	t := theme.Active
	cab, err := a.session.Cabinet()
	if err != nil {
		return components.ContentCard("Cabinet", err.Error(), cw)
	}

	parties := a.session.Parties()
	officeStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	statStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	innerW := components.CardInnerWidth(cw)
	const statsW = 38
	showStats := innerW >= 16+28+12+statsW
	partyW := max(12, innerW-16-28)
	if showStats {
		partyW -= statsW
	}

	row := func(p cabinet.Post) string {
		l := p.Leader
		party := lipgloss.NewStyle().Foreground(partyColor(parties[p.PartyID])).Background(t.Surface).
			Render(fmt.Sprintf("%-*s", partyW, truncStr(p.Party, partyW)))
		out := officeStyle.Render(fmt.Sprintf("%-16s", p.Office)) +
			nameStyle.Render(fmt.Sprintf("%-28s", truncStr(l.FullName(), 27))) +
			party
		if showStats {
			out += statStyle.Render(fmt.Sprintf("  age %2d  exp %2d  cha %2d int %2d itg %2d",
				l.Age, l.Experience, l.Charisma, l.Intelligence, l.Integrity))
		}
		return out
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("President", row(cab.President), cw))
	b.WriteString("\n")

	var mb strings.Builder
	for i, m := range cab.Ministers {
		if i > 0 {
			mb.WriteString("\n")
		}
		mb.WriteString(row(m))
	}
	b.WriteString(components.ContentCard("Ministers", mb.String(), cw))
	b.WriteString("\n")

	var cb strings.Builder
	counts := cab.Count()
	first := true
	for _, p := range parties {
		n := counts[p.ID]
		if n == 0 {
			continue
		}
		if !first {
			cb.WriteString(statStyle.Render("   "))
		}
		first = false
		cb.WriteString(lipgloss.NewStyle().Foreground(partyColor(p)).Background(t.Surface).
			Render(fmt.Sprintf("%s %d", p.Name, n)))
	}
	b.WriteString(components.ContentCard("Ministries held", cb.String(), cw))
	return b.String()
}
