package tui

import (
	"testing"

	"github.com/theirongolddev/parlsim/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(components.Tabs)
	for active := 0; active < n; active++ {
		a := App{activeTab: active}
		pos := 0

		for i := 0; i < n; i++ {
			w := tabWidthForTest(i)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < n-1 {
				if got := a.tabAtX(pos); got != -1 {
					t.Fatalf("active=%d separator x=%d -> tab=%d, want -1", active, pos, got)
				}
				pos++
			}
		}
		if got := a.tabAtX(pos + 1); got != -1 {
			t.Fatalf("active=%d past last tab -> %d, want -1", active, got)
		}
	}
}

// Every tab carries its shortcut inside the name, so width does not depend
// on which tab is active.
func tabWidthForTest(tabIdx int) int {
	nameWidths := []int{
		len("Parliament"),
		len("Coalition"),
		len("Budget"),
		len("Compass"),
		len("Cabinet"),
		len("Vote"),
	}
	return nameWidths[tabIdx] + 2
}
