package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/theirongolddev/parlsim/internal/budget"
	"github.com/theirongolddev/parlsim/internal/config"
	"github.com/theirongolddev/parlsim/internal/engine"
	"github.com/theirongolddev/parlsim/internal/entropy"
	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/landscape"
	"github.com/theirongolddev/parlsim/internal/model"
)

func testPlayer() landscape.PlayerSpec {
	return landscape.PlayerSpec{
		Name:     "Civic Renewal",
		Scale:    model.ScaleBig,
		Stance:   model.StanceOpposition,
		Social:   ideology.Progressive,
		Economic: ideology.Left,
	}
}

// findSession returns the first seeded session whose player governs (or not).
func findSession(t *testing.T, governing bool) *engine.Session {
	t.Helper()
	for seed := int64(1); seed < 500; seed++ {
		s := engine.New(engine.Config{Seed: seed})
		if _, err := s.GenerateLandscape(testPlayer()); err != nil {
			t.Fatalf("GenerateLandscape: %v", err)
		}
		if s.PlayerInCoalition() == governing {
			return s
		}
	}
	t.Fatalf("no seed gives governing=%v", governing)
	return nil
}

func scriptedGame(s *engine.Session, input string) (*game, *bytes.Buffer) {
	var out bytes.Buffer
	return &game{in: bufio.NewScanner(strings.NewReader(input)), out: &out, s: s}, &out
}

func TestParseAdjustment(t *testing.T) {
	s := findSession(t, false)
	tests := []struct {
		in      string
		idx     int
		dir     budget.Direction
		wantErr error
	}{
		{in: "Healthcare+", idx: 0, dir: budget.Up},
		{in: "healthcare -", idx: 0, dir: budget.Down},
		{in: "Law Enforcement+", idx: 7, dir: budget.Up},
		{in: "3 +", idx: 2, dir: budget.Up},
		{in: "Helthcare up", idx: 0, dir: budget.Up},
		{in: "11+", wantErr: budget.ErrInvalidIndex},
		{in: "Zzzzzzzzzz-", wantErr: budget.ErrUnknownSubject},
	}
	for _, tt := range tests {
		idx, dir, err := parseAdjustment(s, tt.in)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("parseAdjustment(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAdjustment(%q): %v", tt.in, err)
			continue
		}
		if idx != tt.idx || dir != tt.dir {
			t.Errorf("parseAdjustment(%q) = %d %s, want %d %s", tt.in, idx, dir, tt.idx, tt.dir)
		}
	}

	if _, _, err := parseAdjustment(s, "Healthcare"); err == nil {
		t.Error("parseAdjustment without a direction should fail")
	}
}

func TestSplitSteps(t *testing.T) {
	got := splitSteps(" Healthcare+, ,Defense- ,")
	if len(got) != 2 || got[0] != "Healthcare+" || got[1] != "Defense-" {
		t.Fatalf("splitSteps = %q", got)
	}
	if got := splitSteps(""); len(got) != 0 {
		t.Fatalf("splitSteps(\"\") = %q, want none", got)
	}
}

func TestFoundPromptsForMissingAnswers(t *testing.T) {
	s := engine.New(engine.Config{Seed: 1})
	g, out := scriptedGame(s, "x\nGreen Dawn\nhuge\nbig\n\nliberal\nright\n")

	spec, err := g.found(playerFlags{}, config.DefaultConfig(), entropy.New(1))
	if err != nil {
		t.Fatalf("found: %v", err)
	}
	want := landscape.PlayerSpec{
		Name:     "Green Dawn",
		Scale:    model.ScaleBig,
		Stance:   model.StanceOpposition,
		Social:   ideology.Progressive,
		Economic: ideology.Right,
	}
	if spec != want {
		t.Fatalf("spec = %+v, want %+v", spec, want)
	}
	if !strings.Contains(out.String(), `"huge" is not small or big`) {
		t.Errorf("bad scale was not reported:\n%s", out.String())
	}
}

func TestFoundSkipsFlaggedAnswers(t *testing.T) {
	s := engine.New(engine.Config{Seed: 1})
	g, out := scriptedGame(s, "")

	f := playerFlags{name: "Green Dawn", scale: "small", stance: "coalition", social: "conservative", economic: "left"}
	spec, err := g.found(f, config.DefaultConfig(), entropy.New(1))
	if err != nil {
		t.Fatalf("found: %v", err)
	}
	if spec.Stance != model.StanceCoalition || spec.Social != ideology.Conservative {
		t.Fatalf("spec = %+v", spec)
	}
	if strings.Contains(out.String(), ">") {
		t.Errorf("prompted despite flags:\n%s", out.String())
	}
}

func TestFoundEndOfInputQuits(t *testing.T) {
	g, _ := scriptedGame(engine.New(engine.Config{Seed: 1}), "")
	if _, err := g.found(playerFlags{}, config.DefaultConfig(), entropy.New(1)); !errors.Is(err, errQuit) {
		t.Fatalf("found = %v, want errQuit", err)
	}
}

func TestOppositionGameAllocatesBudget(t *testing.T) {
	s := findSession(t, false)
	g, out := scriptedGame(s, "p\nc\nbogus\nn\nb\n")

	if err := g.run(); !errors.Is(err, errQuit) {
		t.Fatalf("run = %v, want errQuit at end of input", err)
	}
	if !s.BudgetDone() {
		t.Fatal("budget not settled after the budget day")
	}
	text := out.String()
	for _, want := range []string{"Parliament", "sits in opposition", `unknown command "bogus"`, "without you"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGoverningGameNegotiatesBudget(t *testing.T) {
	s := findSession(t, true)
	g, out := scriptedGame(s, "n\nHealthcare +\nnonsense\ndone\nq\n")

	if err := g.run(); !errors.Is(err, errQuit) {
		t.Fatalf("run = %v, want errQuit", err)
	}
	if !s.BudgetDone() {
		t.Fatal("budget not finalized")
	}
	if got := s.Ledger()[0].Allocation; got != 30 {
		t.Errorf("Healthcare = %d, want 30", got)
	}
	text := out.String()
	for _, want := range []string{"convenes the budget meeting", "passed", "SESSION ADJOURNED"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
