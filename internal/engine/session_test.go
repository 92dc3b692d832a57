package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/parlsim/internal/budget"
	"github.com/theirongolddev/parlsim/internal/coalition"
	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/landscape"
	"github.com/theirongolddev/parlsim/internal/model"
	"github.com/theirongolddev/parlsim/internal/tax"
)

func spec(scale model.Scale) landscape.PlayerSpec {
	return landscape.PlayerSpec{
		Name:     "Citizens First",
		Scale:    scale,
		Stance:   model.StanceOpposition,
		Social:   ideology.Progressive,
		Economic: ideology.Left,
	}
}

func newSession(t *testing.T, seed int64, scale model.Scale) *Session {
	t.Helper()
	s := New(Config{Seed: seed, Generator: landscape.DefaultOptions()})
	if _, err := s.GenerateLandscape(spec(scale)); err != nil {
		t.Fatalf("seed %d: GenerateLandscape: %v", seed, err)
	}
	return s
}

// findSession returns the first seeded session whose player membership
// matches governing.
func findSession(t *testing.T, scale model.Scale, governing bool) *Session {
	t.Helper()
	for seed := int64(0); seed < 1000; seed++ {
		s := newSession(t, seed, scale)
		if s.PlayerInCoalition() == governing {
			return s
		}
	}
	t.Fatalf("no seed with PlayerInCoalition = %v", governing)
	return nil
}

func TestGenerateLandscapeInvariants(t *testing.T) {
	for seed := int64(0); seed < 300; seed++ {
		for _, scale := range []model.Scale{model.ScaleSmall, model.ScaleBig} {
			s := newSession(t, seed, scale)
			total, players := 0, 0
			for _, p := range s.Parties() {
				total += p.VoteShare
				if p.VoteShare < 1 {
					t.Fatalf("seed %d: %s has share %d", seed, p.Name, p.VoteShare)
				}
				if p.Player {
					players++
				}
			}
			if total != 100 {
				t.Fatalf("seed %d: shares sum to %d, want 100", seed, total)
			}
			if players != 1 {
				t.Fatalf("seed %d: %d player parties, want 1", seed, players)
			}
			if s.Day() != 1 {
				t.Fatalf("Day = %d, want 1", s.Day())
			}
			if r := s.CurrentTaxRate(); r < tax.MinRate || r > tax.MaxRate {
				t.Fatalf("seed %d: tax rate %.2f out of range", seed, r)
			}
			if s.Repaired() >= 0 && !s.Parties()[s.Repaired()].InCoalition {
				t.Fatalf("seed %d: repaired party not in coalition", seed)
			}
		}
	}
}

func TestGenerateOnce(t *testing.T) {
	s := newSession(t, 1, model.ScaleBig)
	if _, err := s.GenerateLandscape(spec(model.ScaleBig)); !errors.Is(err, ErrAlreadyGenerated) {
		t.Fatalf("second GenerateLandscape = %v, want ErrAlreadyGenerated", err)
	}
}

func TestGenerateRejectsBadName(t *testing.T) {
	s := New(Config{Seed: 1})
	bad := spec(model.ScaleSmall)
	bad.Name = "x"
	if _, err := s.GenerateLandscape(bad); !errors.Is(err, landscape.ErrInvalidName) {
		t.Fatalf("GenerateLandscape = %v, want ErrInvalidName", err)
	}
	if s.Generated() {
		t.Fatal("session generated despite invalid spec")
	}
}

func TestNotGenerated(t *testing.T) {
	s := New(Config{Seed: 1})
	if err := s.AdjustBudget(0, budget.Up); !errors.Is(err, ErrNotGenerated) {
		t.Fatalf("AdjustBudget = %v, want ErrNotGenerated", err)
	}
	if _, _, err := s.AdvanceDay(); !errors.Is(err, ErrNotGenerated) {
		t.Fatalf("AdvanceDay = %v, want ErrNotGenerated", err)
	}
	if s.CurrentTaxRate() != InitialTaxRate {
		t.Fatalf("CurrentTaxRate = %.1f, want %.1f", s.CurrentTaxRate(), InitialTaxRate)
	}
	if r := s.CoalitionSecurity(); r.Score != 0 {
		t.Fatalf("CoalitionSecurity = %.1f, want 0 without a coalition", r.Score)
	}
}

func TestRepairOnlyAfterRescale(t *testing.T) {
	parties := func(shares ...int) []model.Party {
		return []model.Party{
			{ID: 0, Name: "Alpha", VoteShare: shares[0], InCoalition: true},
			{ID: 1, Name: "Beta", Social: 1, Economic: 1, VoteShare: shares[1]},
			{ID: 2, Name: "Gamma", Social: 10, Economic: 10, VoteShare: shares[2]},
		}
	}
	s := New(Config{Seed: 1})

	exact := parties(40, 35, 25)
	if got := s.settleShares(exact); got != -1 {
		t.Fatalf("settleShares on a total of 100 = %d, want -1", got)
	}
	if exact[1].InCoalition || exact[0].VoteShare != 40 {
		t.Fatalf("parties changed without a rescale: %+v", exact)
	}

	short := parties(40, 35, 20)
	if got := s.settleShares(short); got != 1 {
		t.Fatalf("settleShares after rescale = %d, want 1", got)
	}
	if short[0].VoteShare != 43 || short[1].VoteShare != 36 || short[2].VoteShare != 21 {
		t.Fatalf("shares = %d/%d/%d, want 43/36/21", short[0].VoteShare, short[1].VoteShare, short[2].VoteShare)
	}
	if !short[1].InCoalition || short[2].InCoalition {
		t.Fatal("repair picked the wrong party")
	}
}

func TestRuleFollowsCoalitionLean(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		s := newSession(t, seed, model.ScaleBig)
		lean, ok := coalition.EconomicLean(s.Parties())
		want := budget.Balanced
		if ok && lean <= 4.0 {
			want = budget.Deficit
		}
		if got := s.Rule(); got != want {
			t.Fatalf("seed %d: Rule = %s, want %s (lean %.2f)", seed, got, want, lean)
		}
	}
}

func TestGoverningPlayerNegotiatesBudget(t *testing.T) {
	s := findSession(t, model.ScaleBig, true)

	ev, _, err := s.AdvanceDay()
	if err != nil || ev != BudgetMeeting {
		t.Fatalf("AdvanceDay = %s, %v; want budget meeting", ev, err)
	}
	if _, _, err := s.AdvanceDay(); !errors.Is(err, ErrBudgetOpen) {
		t.Fatalf("AdvanceDay during meeting = %v, want ErrBudgetOpen", err)
	}

	if err := s.AdjustBudget(0, budget.Up); err != nil {
		t.Fatalf("AdjustBudget: %v", err)
	}
	if s.Rule() == budget.Balanced && s.BudgetTotal() != 100 {
		t.Fatalf("balanced total = %d, want 100", s.BudgetTotal())
	}
	if _, err := s.FinalizeBudget(); err != nil {
		t.Fatalf("FinalizeBudget: %v", err)
	}
	if err := s.AdjustBudget(0, budget.Up); !errors.Is(err, ErrBudgetClosed) {
		t.Fatalf("AdjustBudget after finalize = %v, want ErrBudgetClosed", err)
	}

	ev, _, err = s.AdvanceDay()
	if err != nil || ev != NewDay || s.Day() != 3 {
		t.Fatalf("AdvanceDay = %s, %v (day %d); want new day 3", ev, err, s.Day())
	}
}

func TestOppositionPlayerGetsAutomaticBudget(t *testing.T) {
	s := findSession(t, model.ScaleSmall, false)

	if err := s.AdjustBudget(0, budget.Up); !errors.Is(err, ErrNoMeeting) {
		t.Fatalf("AdjustBudget on day 1 = %v, want ErrNoMeeting", err)
	}
	if _, err := s.FinalizeBudget(); !errors.Is(err, ErrNoMeeting) {
		t.Fatalf("FinalizeBudget on day 1 = %v, want ErrNoMeeting", err)
	}
	s.ResetBudget()
	if s.BudgetDone() {
		t.Fatal("budget closed before the allocation day")
	}

	ev, deltas, err := s.AdvanceDay()
	if err != nil || ev != BudgetAllocated {
		t.Fatalf("AdvanceDay = %s, %v; want budget allocated", ev, err)
	}
	if len(deltas) == 0 {
		t.Fatal("no allocation deltas")
	}
	if !s.BudgetDone() {
		t.Fatal("BudgetDone = false after automatic allocation")
	}
	first := s.Ledger()

	// A repeat allocation nudges the ledger as it stands.
	again, err := s.AutomaticAllocate()
	if err != nil || len(again) == 0 {
		t.Fatalf("repeat AutomaticAllocate = %d deltas, %v", len(again), err)
	}
	seen := make(map[int]bool)
	for _, d := range again {
		if seen[d.Index] {
			continue
		}
		seen[d.Index] = true
		if d.Before != first[d.Index].Allocation {
			t.Fatalf("%s repeat nudge starts at %d, want %d", d.Subject, d.Before, first[d.Index].Allocation)
		}
	}

	if want := max(0, s.BudgetTotal()-100); s.Deficit() != want {
		t.Fatalf("Deficit = %d, want %d", s.Deficit(), want)
	}
}

func TestGoverningPlayerWaitsForMeeting(t *testing.T) {
	s := findSession(t, model.ScaleBig, true)
	if s.MeetingOpen() {
		t.Fatal("meeting open on day 1")
	}
	if err := s.AdjustBudget(0, budget.Up); !errors.Is(err, ErrNoMeeting) {
		t.Fatalf("AdjustBudget on day 1 = %v, want ErrNoMeeting", err)
	}
	if _, err := s.FinalizeBudget(); !errors.Is(err, ErrNoMeeting) {
		t.Fatalf("FinalizeBudget on day 1 = %v, want ErrNoMeeting", err)
	}
	if _, _, err := s.AdvanceDay(); err != nil || !s.MeetingOpen() {
		t.Fatalf("AdvanceDay = %v, meeting open %v", err, s.MeetingOpen())
	}
	if err := s.AdjustBudget(0, budget.Up); err != nil {
		t.Fatalf("AdjustBudget in meeting: %v", err)
	}
}

func TestResetBudgetRecomputesTax(t *testing.T) {
	s := findSession(t, model.ScaleBig, true)
	_, _, _ = s.AdvanceDay()
	s.ResetBudget()
	s.ResetBudget()
	if s.BudgetTotal() != 100 {
		t.Fatalf("BudgetTotal after reset = %d, want 100", s.BudgetTotal())
	}
	want := 100 * 0.25 * tax.LeanFactor(s.Rule())
	if r := s.CurrentTaxRate(); r < want*0.95-1e-9 || r > want*1.05+1e-9 {
		t.Fatalf("CurrentTaxRate = %.2f, want within 5%% of %.2f", r, want)
	}
}

func TestCabinetIsStable(t *testing.T) {
	s := newSession(t, 9, model.ScaleBig)
	a, err := s.Cabinet()
	if err != nil {
		t.Fatalf("Cabinet: %v", err)
	}
	b, _ := s.Cabinet()
	if a.President.Leader.FullName() != b.President.Leader.FullName() {
		t.Fatal("Cabinet re-formed on second call")
	}
}

func TestSummary(t *testing.T) {
	s := newSession(t, 4, model.ScaleBig)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := s.Summary(now)
	if g.PartyName != "Citizens First" || g.Seed != 4 || !g.PlayedAt.Equal(now) {
		t.Fatalf("summary = %+v", g)
	}
	if g.PartyCount != len(s.Parties()) || len(g.Parties) != g.PartyCount {
		t.Fatalf("PartyCount = %d, parties = %d", g.PartyCount, len(g.Parties))
	}
	if g.CoalitionShare != s.Coalition().TotalShare {
		t.Fatalf("CoalitionShare = %d, want %d", g.CoalitionShare, s.Coalition().TotalShare)
	}
}

func TestHoldVote(t *testing.T) {
	s := newSession(t, 2, model.ScaleBig)
	r, err := s.HoldVote(ideology.ConservativeRight)
	if err != nil {
		t.Fatalf("HoldVote: %v", err)
	}
	tally := 0
	for _, n := range r.First.Tally {
		tally += n
	}
	if tally != 100 {
		t.Fatalf("first round tally = %d, want 100", tally)
	}
}
