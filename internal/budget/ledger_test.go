package budget

import (
	"errors"
	"testing"

	"github.com/theirongolddev/parlsim/internal/entropy"
)

func TestCatalogBaseline(t *testing.T) {
	l := NewLedger()
	if l.Len() != 10 {
		t.Fatalf("Len = %d, want 10", l.Len())
	}
	if got := l.Total(); got != BaselineTotal {
		t.Fatalf("Total = %d, want %d", got, BaselineTotal)
	}
	s, err := l.Subject(0)
	if err != nil || s.Name != Healthcare || s.Allocation != 25 {
		t.Fatalf("Subject(0) = %+v, %v; want Healthcare at 25", s, err)
	}
}

func TestRuleFor(t *testing.T) {
	cases := []struct {
		lean float64
		ok   bool
		want Rule
	}{
		{2.0, true, Deficit},
		{4.0, true, Deficit},
		{4.01, true, Balanced},
		{9.0, true, Balanced},
		{0, false, Balanced},
	}
	for _, c := range cases {
		if got := RuleFor(c.lean, c.ok); got != c.want {
			t.Fatalf("RuleFor(%.2f, %v) = %s, want %s", c.lean, c.ok, got, c.want)
		}
	}
}

func TestIncreaseHealthcareThenFinalize(t *testing.T) {
	l := NewLedger()
	if err := l.Increase(0, Balanced); err != nil {
		t.Fatalf("Increase: %v", err)
	}
	subjects := l.Subjects()
	if subjects[0].Allocation != 30 {
		t.Fatalf("Healthcare = %d, want 30", subjects[0].Allocation)
	}
	// first other subject with at least 5 is Education
	if subjects[1].Allocation != 15 {
		t.Fatalf("Education = %d, want 15", subjects[1].Allocation)
	}
	deficit, err := l.Finalize(Balanced)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if deficit != 0 || l.Total() != 100 {
		t.Fatalf("deficit = %d total = %d, want 0 and 100", deficit, l.Total())
	}
}

func TestBalancedInvariantAcrossRandomOperations(t *testing.T) {
	rng := entropy.New(42)
	l := NewLedger()
	for op := 0; op < 5000; op++ {
		i := rng.IntN(l.Len())
		dir := Up
		if rng.IntN(2) == 0 {
			dir = Down
		}
		before := l.Subjects()
		err := l.Adjust(i, dir, Balanced)
		if err != nil {
			if !errors.Is(err, ErrLimitReached) && !errors.Is(err, ErrNoOffsetAvailable) {
				t.Fatalf("op %d: unexpected error %v", op, err)
			}
			after := l.Subjects()
			for k := range before {
				if before[k].Allocation != after[k].Allocation {
					t.Fatalf("op %d: failed adjustment modified subject %d", op, k)
				}
			}
		}
		if got := l.Total(); got != BaselineTotal {
			t.Fatalf("op %d: Total = %d, want %d", op, got, BaselineTotal)
		}
		for _, s := range l.Subjects() {
			if s.Allocation < 0 || s.Allocation > MaxAllocation {
				t.Fatalf("op %d: %s = %d out of range", op, s.Name, s.Allocation)
			}
		}
	}
}

func TestDeficitNeverNeedsOffset(t *testing.T) {
	rng := entropy.New(7)
	l := NewLedger()
	for op := 0; op < 2000; op++ {
		i := rng.IntN(l.Len())
		dir := Up
		if rng.IntN(3) == 0 {
			dir = Down
		}
		err := l.Adjust(i, dir, Deficit)
		if errors.Is(err, ErrNoOffsetAvailable) {
			t.Fatalf("op %d: deficit rule asked for an offset", op)
		}
		if err != nil && !errors.Is(err, ErrLimitReached) {
			t.Fatalf("op %d: unexpected error %v", op, err)
		}
	}
	deficit, err := l.Finalize(Deficit)
	if err != nil {
		t.Fatalf("Finalize(Deficit): %v", err)
	}
	if want := max(0, l.Total()-100); deficit != want {
		t.Fatalf("deficit = %d, want %d", deficit, want)
	}
}

func TestLimits(t *testing.T) {
	l := NewLedger()
	// Foreign Aid starts at 1; the first decrease takes it to 0.
	if err := l.Decrease(8, Deficit); err != nil {
		t.Fatalf("Decrease: %v", err)
	}
	if err := l.Decrease(8, Deficit); !errors.Is(err, ErrLimitReached) {
		t.Fatalf("Decrease at 0 = %v, want ErrLimitReached", err)
	}
	for i := 0; i < 20; i++ {
		_ = l.Increase(0, Deficit)
	}
	s, _ := l.Subject(0)
	if s.Allocation != 100 {
		t.Fatalf("Healthcare = %d, want capped at 100", s.Allocation)
	}
	if err := l.Increase(0, Deficit); !errors.Is(err, ErrLimitReached) {
		t.Fatalf("Increase at 100 = %v, want ErrLimitReached", err)
	}
}

func TestInvalidIndex(t *testing.T) {
	l := NewLedger()
	for _, i := range []int{-1, 10} {
		if err := l.Increase(i, Balanced); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("Increase(%d) = %v, want ErrInvalidIndex", i, err)
		}
		if err := l.Decrease(i, Deficit); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("Decrease(%d) = %v, want ErrInvalidIndex", i, err)
		}
	}
}

func TestNoOffsetRollsBack(t *testing.T) {
	l := NewLedger()
	for i := range l.subjects {
		l.subjects[i].Allocation = 0
	}
	l.subjects[0].Allocation = 3
	if err := l.Increase(0, Balanced); !errors.Is(err, ErrNoOffsetAvailable) {
		t.Fatalf("Increase without donors = %v, want ErrNoOffsetAvailable", err)
	}
	if l.subjects[0].Allocation != 3 {
		t.Fatalf("Healthcare = %d after rollback, want 3", l.subjects[0].Allocation)
	}

	for i := range l.subjects {
		l.subjects[i].Allocation = MaxAllocation
	}
	if err := l.Decrease(0, Balanced); !errors.Is(err, ErrNoOffsetAvailable) {
		t.Fatalf("Decrease without room elsewhere = %v, want ErrNoOffsetAvailable", err)
	}
	if l.subjects[0].Allocation != MaxAllocation {
		t.Fatalf("Healthcare = %d after rollback, want %d", l.subjects[0].Allocation, MaxAllocation)
	}
}

func TestFinalizeUnbalanced(t *testing.T) {
	l := NewLedger()
	if err := l.Increase(0, Deficit); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Finalize(Balanced); !errors.Is(err, ErrUnbalancedBudget) {
		t.Fatalf("Finalize = %v, want ErrUnbalancedBudget", err)
	}
	deficit, err := l.Finalize(Deficit)
	if err != nil || deficit != 5 {
		t.Fatalf("Finalize(Deficit) = %d, %v; want 5, nil", deficit, err)
	}
	l.Reset()
	if l.Total() != 100 {
		t.Fatalf("Total after Reset = %d, want 100", l.Total())
	}
}
