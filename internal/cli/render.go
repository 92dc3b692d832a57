package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	coalitionStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	oppositionStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	playerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOrange)

	markerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output. A row holding
// the single cell "---" draws a separator.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// LeftCols is the number of leading text columns aligned left; the
	// rest are right-aligned. Zero means one.
	LeftCols int
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == "---"
}

// columnWidths sizes every column to its widest visible cell.
func columnWidths(t Table) []int {
	n := len(t.Headers)
	if n == 0 && len(t.Rows) > 0 {
		n = len(t.Rows[0])
	}
	widths := make([]int, n)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i := 0; i < n && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	return widths
}

// writeRule draws a horizontal border such as "├───┼───┤".
func writeRule(b *strings.Builder, widths []int, left, mid, right string) {
	segs := make([]string, len(widths))
	for i, w := range widths {
		segs[i] = strings.Repeat("─", w+2)
	}
	b.WriteString(dimStyle.Render(left + strings.Join(segs, mid) + right))
	b.WriteString("\n")
}

// writeCells draws one row of cells; columns from rightFrom on are
// right-aligned.
func writeCells(b *strings.Builder, widths []int, cells []string, style lipgloss.Style, rightFrom int) {
	sep := dimStyle.Render("│")
	b.WriteString(sep)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(style.Render(" " + padCell(cell, w, i >= rightFrom) + " "))
		b.WriteString(sep)
	}
	b.WriteString("\n")
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	widths := columnWidths(t)
	leftCols := t.LeftCols
	if leftCols <= 0 {
		leftCols = 1
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	writeRule(&b, widths, "╭", "┬", "╮")
	if len(t.Headers) > 0 {
		writeCells(&b, widths, t.Headers, headerStyle, len(widths))
		writeRule(&b, widths, "├", "┼", "┤")
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			writeRule(&b, widths, "├", "┼", "┤")
			continue
		}
		writeCells(&b, widths, row, valueStyle, leftCols)
	}
	writeRule(&b, widths, "╰", "┴", "╯")

	return b.String()
}

// padCell pads a possibly styled cell to w visible columns.
func padCell(cell string, w int, right bool) string {
	gap := strings.Repeat(" ", max(0, w-lipgloss.Width(cell)))
	if right {
		return gap + cell
	}
	return cell + gap
}

// RenderShareBar renders a vote-share bar against a total.
func RenderShareBar(current, total int, width int) string {
	if total <= 0 {
		return ""
	}

	pct := float64(current) / float64(total)
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", mutedStyle.Render(bar), FormatShare(current))
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// RenderSpectrum draws a 0-10 axis value as "Left |---*-------| Right".
func RenderSpectrum(value int, low, high string) string {
	value = max(0, min(ideology.Max, value))
	var b strings.Builder
	for i := 0; i <= ideology.Max; i++ {
		if i == value {
			b.WriteString(markerStyle.Render("*"))
		} else {
			b.WriteString(dimStyle.Render("-"))
		}
	}
	return fmt.Sprintf("%-12s |%s| %s", low, b.String(), high)
}

// PartyName styles a party name by its role in the chamber.
func PartyName(p model.Party) string {
	switch {
	case p.Player:
		return playerStyle.Render(p.Name)
	case p.InCoalition:
		return coalitionStyle.Render(p.Name)
	default:
		return oppositionStyle.Render(p.Name)
	}
}

// Role is "Coalition" or "Opposition".
func Role(p model.Party) string {
	if p.InCoalition {
		return "Coalition"
	}
	return "Opposition"
}

// Muted renders secondary text.
func Muted(s string) string { return mutedStyle.Render(s) }

// Header renders a section heading.
func Header(s string) string { return headerStyle.Render(s) }
