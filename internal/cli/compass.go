package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/model"
)

const compassCells = ideology.Max*2 + 1

// CompassMarker is the symbol for the i-th party: 1-9, then a-z.
func CompassMarker(i int) rune {
	if i < 9 {
		return rune('1' + i)
	}
	if i < 9+26 {
		return rune('a' + i - 9)
	}
	return '#'
}

// RenderCompass plots parties on a 21x21 grid with progressive at the top
// and economic left on the left. Parties sharing a cell show as '*' and
// the legend names the parties behind it.
func RenderCompass(parties []model.Party) string {
	grid := make([][]rune, compassCells)
	mid := compassCells / 2
	for r := range grid {
		grid[r] = make([]rune, compassCells)
		for c := range grid[r] {
			switch {
			case r == mid && c == mid:
				grid[r][c] = '+'
			case r == mid:
				grid[r][c] = '-'
			case c == mid:
				grid[r][c] = '|'
			default:
				grid[r][c] = ' '
			}
		}
	}

	cells := make([][2]int, len(parties))
	occupants := make(map[[2]int][]int)
	for i, p := range parties {
		r := max(0, min(compassCells-1, p.Social*2))
		c := max(0, min(compassCells-1, p.Economic*2))
		cells[i] = [2]int{r, c}
		occupants[cells[i]] = append(occupants[cells[i]], i)
		if len(occupants[cells[i]]) > 1 {
			grid[r][c] = '*'
			continue
		}
		grid[r][c] = CompassMarker(i)
	}

	var b strings.Builder
	b.WriteString(mutedStyle.Render("          Progressive"))
	b.WriteString("\n")
	for r, row := range grid {
		label := "   "
		if r == mid {
			label = "  L"
		}
		b.WriteString(mutedStyle.Render(label))
		b.WriteString(" ")
		for _, ch := range row {
			cell := string(ch)
			if ch != ' ' && ch != '-' && ch != '|' && ch != '+' {
				cell = markerStyle.Render(cell)
			} else {
				cell = dimStyle.Render(cell)
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}
		if r == mid {
			b.WriteString(mutedStyle.Render("R"))
		}
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("          Conservative"))
	b.WriteString("\n\n")

	for i, p := range parties {
		fmt.Fprintf(&b, "  %c  %s %s", CompassMarker(i), PartyName(p),
			mutedStyle.Render(fmt.Sprintf("(%s, %s)", Role(p), ideology.QuadrantOf(p.Social, p.Economic).Title())))
		if others := sharedWith(parties, occupants[cells[i]], i); others != "" {
			b.WriteString(" ")
			b.WriteString(markerStyle.Render("*"))
			b.WriteString(mutedStyle.Render(" with " + others))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// sharedWith names the other parties plotted on the same cell as self.
func sharedWith(parties []model.Party, occupants []int, self int) string {
	var names []string
	for _, j := range occupants {
		if j != self {
			names = append(names, parties[j].Name)
		}
	}
	return strings.Join(names, ", ")
}
