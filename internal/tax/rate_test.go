package tax

import (
	"math"
	"testing"

	"github.com/theirongolddev/parlsim/internal/budget"
	"github.com/theirongolddev/parlsim/internal/entropy"
)

func TestRateBounds(t *testing.T) {
	rng := entropy.New(3)
	for _, total := range []int{0, 1, 40, 100, 128, 250, 1000} {
		for _, rule := range []budget.Rule{budget.Balanced, budget.Deficit} {
			for i := 0; i < 200; i++ {
				r := Rate(total, rule, rng)
				if r < MinRate || r > MaxRate {
					t.Fatalf("Rate(%d, %s) = %.2f, want within [%.0f, %.0f]", total, rule, r, MinRate, MaxRate)
				}
			}
		}
	}
}

func TestCompute(t *testing.T) {
	cases := []struct {
		total  int
		rule   budget.Rule
		factor float64
		want   float64
	}{
		{100, budget.Balanced, 1.0, 20},
		{100, budget.Deficit, 1.0, 25},
		{128, budget.Deficit, 1.05, 33.6},
		{20, budget.Balanced, 1.0, MinRate},
		{400, budget.Deficit, 1.0, MaxRate},
	}
	for _, c := range cases {
		got := Compute(c.total, c.rule, c.factor)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("Compute(%d, %s, %.2f) = %.4f, want %.4f", c.total, c.rule, c.factor, got, c.want)
		}
	}
}

func TestPerturbationRange(t *testing.T) {
	rng := entropy.New(11)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		f := Perturbation(rng)
		if f < 0.95-1e-9 || f > 1.05+1e-9 {
			t.Fatalf("Perturbation = %.4f, want within [0.95, 1.05]", f)
		}
		seen[int(math.Round(f*100))] = true
	}
	if len(seen) != 11 {
		t.Fatalf("saw %d distinct factors, want 11", len(seen))
	}
}
