package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/parlsim/internal/cli"
	"github.com/theirongolddev/parlsim/internal/tui/components"
	"github.com/theirongolddev/parlsim/internal/tui/theme"
)

func (a App) renderCompassTab(cw int) string {
	t := theme.Active
	parties := a.session.Parties()

	plot := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).
		Render(cli.RenderCompass(parties))

	var sb strings.Builder
	if p, ok := a.session.PlayerParty(); ok {
		sb.WriteString(cli.RenderSpectrum(p.Social, "Progressive", "Conservative"))
		sb.WriteString("\n")
		sb.WriteString(cli.RenderSpectrum(p.Economic, "Left", "Right"))
	}
	snap := a.session.Coalition()
	if snap.HasMembers {
		sb.WriteString("\n\n")
		sb.WriteString(cli.Header("Coalition centre"))
		sb.WriteString("\n")
		sb.WriteString(cli.RenderSpectrum(int(snap.SocialLean+0.5), "Progressive", "Conservative"))
		sb.WriteString("\n")
		sb.WriteString(cli.RenderSpectrum(int(snap.EconomicLean+0.5), "Left", "Right"))
	}

	if a.isCompactLayout() {
		return components.ContentCard("Political compass", plot, cw) + "\n" +
			components.ContentCard("Your position", sb.String(), cw)
	}
	halves := components.LayoutRow(cw, 2)
	return components.CardRow([]string{
		components.ContentCard("Political compass", plot, halves[0]),
		components.ContentCard("Your position", sb.String(), halves[1]),
	})
}
