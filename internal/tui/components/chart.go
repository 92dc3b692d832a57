package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/parlsim/internal/tui/theme"
)

// Segment is one coloured run of a stacked strip.
type Segment struct {
	Value int
	Color lipgloss.Color
}

// StackedStrip draws segments side by side across width cells in
// proportion to their values. Rounding leftovers go to the last segment.
func StackedStrip(segments []Segment, width int) string {
	t := theme.Active
	total := 0
	for _, s := range segments {
		total += s.Value
	}
	if total <= 0 || width <= 0 {
		return ""
	}

	var b strings.Builder
	used := 0
	for i, s := range segments {
		cells := s.Value * width / total
		if i == len(segments)-1 {
			cells = width - used
		}
		used += cells
		style := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface)
		b.WriteString(style.Render(strings.Repeat("█", cells)))
	}
	return b.String()
}

// ColumnChart renders one column per value on a 10-step scale with a
// labelled y-axis. colors may be nil, in which case every column uses the
// accent colour.
func ColumnChart(values []float64, labels []string, colors []lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active
	height = max(3, height)

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	ceiling := math.Max(10, math.Ceil(peak/10)*10)

	const axisW = 4
	n := len(values)
	colW := max(1, min(6, (width-axisW-1-(n-1))/n))

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)
	partial := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		top := ceiling * float64(row) / float64(height)
		bottom := ceiling * float64(row-1) / float64(height)

		label := ""
		if row == height || row == (height+1)/2 {
			label = fmt.Sprintf("%.0f", top)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", axisW-1, label)))

		for i, v := range values {
			if i > 0 {
				b.WriteString(blank.Render(" "))
			}
			color := t.Accent
			if i < len(colors) && colors[i] != "" {
				color = colors[i]
			}
			style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
			switch {
			case v >= top:
				b.WriteString(style.Render(strings.Repeat("█", colW)))
			case v > bottom:
				idx := int((v - bottom) / (top - bottom) * float64(len(partial)))
				idx = max(1, min(len(partial)-1, idx))
				b.WriteString(style.Render(strings.Repeat(string(partial[idx]), colW)))
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", colW)))
			}
		}
		b.WriteString("\n")
	}

	axisLen := n*colW + n - 1
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", axisW-1, "0", strings.Repeat("─", axisLen))))

	if len(labels) == n {
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", axisW)))
		for i, l := range labels {
			if i > 0 {
				b.WriteString(blank.Render(" "))
			}
			r := []rune(l)
			if len(r) > colW {
				r = r[:colW]
			}
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", colW, string(r))))
		}
	}
	return b.String()
}
