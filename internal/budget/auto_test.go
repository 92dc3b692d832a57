package budget

import (
	"errors"
	"testing"
)

func allocations(l *Ledger) map[string]int {
	out := make(map[string]int)
	for _, s := range l.Subjects() {
		out[s.Name] = s.Allocation
	}
	return out
}

func TestAutoAllocateLeftProgressive(t *testing.T) {
	l := NewLedger()
	deltas := l.AutoAllocate(true, false)

	got := allocations(l)
	want := map[string]int{
		Healthcare: 33, Education: 28, Defense: 15, Infrastructure: 12,
		SocialWelfare: 15, Environment: 13, Research: 7, LawEnforcement: 3,
		ForeignAid: 1, CultureAndArts: 1,
	}
	for name, w := range want {
		if got[name] != w {
			t.Fatalf("%s = %d, want %d", name, got[name], w)
		}
	}
	if len(deltas) != 7 {
		t.Fatalf("deltas = %d, want 7", len(deltas))
	}
	if l.Total() != 128 {
		t.Fatalf("Total = %d, want 128", l.Total())
	}
}

func TestAutoAllocateStartsFromCurrentSpending(t *testing.T) {
	l := NewLedger()
	if err := l.Increase(0, Deficit); err != nil {
		t.Fatalf("Increase: %v", err)
	}
	deltas := l.AutoAllocate(true, false)

	if deltas[0].Subject != Healthcare || deltas[0].Before != 30 || deltas[0].After != 35 {
		t.Fatalf("first delta = %+v, want Healthcare 30 -> 35", deltas[0])
	}
	if got := allocations(l)[Healthcare]; got != 38 {
		t.Fatalf("Healthcare = %d, want 38", got)
	}
	if l.Total() != 133 {
		t.Fatalf("Total = %d, want 133", l.Total())
	}
}

func TestAutoAllocateRightConservativeClamps(t *testing.T) {
	l := NewLedger()
	deltas := l.AutoAllocate(false, true)

	got := allocations(l)
	if got[ForeignAid] != 0 {
		t.Fatalf("Foreign Aid = %d, want clamped to 0", got[ForeignAid])
	}
	if got[Research] != 0 || got[SocialWelfare] != 5 || got[Environment] != 3 {
		t.Fatalf("right-wing cuts = %v", got)
	}
	if got[Defense] != 18 || got[CultureAndArts] != 3 {
		t.Fatalf("Defense = %d Culture = %d, want 18 and 3", got[Defense], got[CultureAndArts])
	}
	for _, d := range deltas {
		if d.Subject == ForeignAid && (d.Nudge != -5 || d.Change() != -1) {
			t.Fatalf("Foreign Aid delta = %+v, want nudge -5 applied as -1", d)
		}
	}
}

func TestFind(t *testing.T) {
	l := NewLedger()
	cases := []struct {
		in   string
		want int
	}{
		{"Healthcare", 0},
		{"  defense ", 2},
		{"soc", 4},
		{"enviroment", 5},
		{"culture & art", 9},
	}
	for _, c := range cases {
		got, err := l.Find(c.in)
		if err != nil || got != c.want {
			t.Fatalf("Find(%q) = %d, %v; want %d", c.in, got, err, c.want)
		}
	}
	for _, bad := range []string{"", "space program", "e"} {
		if _, err := l.Find(bad); !errors.Is(err, ErrUnknownSubject) {
			t.Fatalf("Find(%q) = %v, want ErrUnknownSubject", bad, err)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"+": Up, "UP": Up, "-": Down, "decrease": Down} {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Fatalf("ParseDirection(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatal("ParseDirection(sideways) succeeded")
	}
}
