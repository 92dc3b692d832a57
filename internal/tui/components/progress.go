package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/parlsim/internal/tui/theme"
)

// ColorForScore maps a 0-1 stability score to red through green, using the
// same bands as the security tiers.
func ColorForScore(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 0.8:
		return t.Green
	case pct >= 0.6:
		return t.Cyan
	case pct >= 0.4:
		return t.Yellow
	case pct >= 0.2:
		return t.Orange
	default:
		return t.Red
	}
}

// ScoreBar renders "label [bar] 80%" with a bar coloured by ColorForScore.
func ScoreBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active
	pct = max(0, min(1, pct))
	color := ColorForScore(pct)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		space + bar.ViewAs(pct) + space +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// AllocationBar draws a 0-100 allocation across width cells. The cell of
// the base allocation is marked when the bar does not cover it.
func AllocationBar(value, base, width int, selected bool) string {
	t := theme.Active
	if width < 1 {
		return ""
	}
	value = max(0, min(100, value))
	filled := value * width / 100
	baseCell := min(width-1, base*width/100)

	fillColor := t.Accent
	switch {
	case value > base:
		fillColor = t.Green
	case value < base:
		fillColor = t.Orange
	}
	if selected {
		fillColor = t.AccentBright
	}
	filledStyle := lipgloss.NewStyle().Foreground(fillColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	baseStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	for i := filled; i < width; i++ {
		if i == baseCell {
			b.WriteString(baseStyle.Render("│"))
		} else {
			b.WriteString(emptyStyle.Render("░"))
		}
	}
	return b.String()
}
