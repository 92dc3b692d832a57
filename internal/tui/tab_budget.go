package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/parlsim/internal/budget"
	"github.com/theirongolddev/parlsim/internal/cli"
	"github.com/theirongolddev/parlsim/internal/engine"
	"github.com/theirongolddev/parlsim/internal/tui/components"
	"github.com/theirongolddev/parlsim/internal/tui/theme"
)

func (a App) budgetStatus() string {
	s := a.session
	switch {
	case s.BudgetDone() && s.Deficit() > 0:
		return fmt.Sprintf("Passed with a %d%% deficit", s.Deficit())
	case s.BudgetDone():
		return "Passed"
	case s.MeetingOpen():
		return "Meeting in session"
	case s.Day() < engine.BudgetDay:
		return fmt.Sprintf("Meeting on day %d", engine.BudgetDay)
	default:
		return "Awaiting the coalition"
	}
}

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	s := a.session
	ledger := s.Ledger()
	total := s.BudgetTotal()

	totalColor := t.Green
	if total != budget.BaselineTotal {
		totalColor = t.Orange
		if s.Rule() == budget.Balanced {
			totalColor = t.Red
		}
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Total", Value: cli.FormatShare(total), Note: fmt.Sprintf("baseline %d%%", budget.BaselineTotal), Color: totalColor},
		{Label: "Fiscal rule", Value: s.Rule().String()},
		{Label: "Tax rate", Value: cli.FormatRate(s.CurrentTaxRate())},
		{Label: "Status", Value: a.budgetStatus()},
	}, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	nameW := 18
	barW := max(10, innerW-nameW-16)

	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Highlight).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	upStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	downStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	descStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Italic(true)

	open := s.MeetingOpen()
	var lb strings.Builder
	for i, subj := range ledger {
		if i > 0 {
			lb.WriteString("\n")
		}
		selected := open && i == a.budgetCursor
		cursor := "  "
		style := nameStyle
		if selected {
			cursor = "▸ "
			style = selStyle
		}
		lb.WriteString(style.Render(fmt.Sprintf("%s%-*s", cursor, nameW-2, subj.Name)))
		lb.WriteString(mutedStyle.Render(" "))
		lb.WriteString(components.AllocationBar(subj.Allocation, subj.Base, barW, selected))
		lb.WriteString(nameStyle.Render(fmt.Sprintf(" %4s", cli.FormatShare(subj.Allocation))))

		diff := subj.Allocation - subj.Base
		switch {
		case diff > 0:
			lb.WriteString(upStyle.Render(fmt.Sprintf(" %5s", cli.FormatSigned(diff))))
		case diff < 0:
			lb.WriteString(downStyle.Render(fmt.Sprintf(" %5s", cli.FormatSigned(diff))))
		default:
			lb.WriteString(mutedStyle.Render(fmt.Sprintf(" %5s", "")))
		}
	}
	if open && a.budgetCursor < len(ledger) {
		lb.WriteString("\n\n")
		lb.WriteString(descStyle.Render(truncStr(ledger[a.budgetCursor].Description, innerW)))
		lb.WriteString("\n")
		lb.WriteString(mutedStyle.Render("j/k select  +/- adjust  r reset  f finalize"))
	}
	b.WriteString(components.ContentCard("Allocations", lb.String(), cw))

	if len(a.autoDeltas) > 0 {
		b.WriteString("\n")
		var db strings.Builder
		for i, d := range a.autoDeltas {
			if i > 0 {
				db.WriteString("\n")
			}
			db.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, d.Subject)))
			db.WriteString(mutedStyle.Render(fmt.Sprintf(" %3d%% → %3d%%  (%s)", d.Before, d.After, cli.FormatSigned(d.Change()))))
		}
		b.WriteString(components.ContentCard("Coalition policy", db.String(), cw))
	}
	return b.String()
}
