package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/parlsim/internal/tui/theme"
)

// Status is the game state summarised in the bottom bar.
type Status struct {
	Day            int
	TaxRate        float64
	CoalitionShare int
	Governing      bool
	Message        string
	Error          bool
}

// RenderStatusBar renders the key hints on the left, the last message in
// the middle and the game state on the right.
func RenderStatusBar(width int, s Status) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	msgStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	if s.Error {
		msgStyle = msgStyle.Foreground(t.Red)
	}

	left := base.Render(" [?]help  [n]ext day  [q]uit")

	role := "opposition"
	roleColor := t.Opposition()
	if s.Governing {
		role = "governing"
		roleColor = t.Coalition()
	}
	right := base.Render(fmt.Sprintf("Day %d │ Tax %.1f%% │ Coalition %d%% │ ", s.Day, s.TaxRate, s.CoalitionShare)) +
		lipgloss.NewStyle().Foreground(roleColor).Background(t.Surface).Bold(true).Render(role) +
		base.Render(" ")

	middle := ""
	if s.Message != "" {
		middle = msgStyle.Render("  " + s.Message)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if padding < 0 {
		middle = ""
		padding = max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	}

	return left + middle + base.Render(strings.Repeat(" ", padding)) + right
}
