package budget

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/parlsim/internal/model"
)

var (
	// ErrLimitReached rejects a step past 0 or MaxAllocation.
	ErrLimitReached = errors.New("subject already at its limit")
	// ErrNoOffsetAvailable rejects a balanced step no other subject can absorb.
	ErrNoOffsetAvailable = errors.New("no other subject can offset the change")
	// ErrUnbalancedBudget rejects finalizing a balanced budget off 100.
	ErrUnbalancedBudget = errors.New("budget does not total 100")
	// ErrInvalidIndex reports a subject index outside the catalog.
	ErrInvalidIndex = errors.New("index out of range")
	// ErrUnknownSubject reports a name Find cannot resolve.
	ErrUnknownSubject = errors.New("unknown budget subject")
)

// Ledger is the mutable budget for one session. Every mutation is atomic:
// it either applies completely or leaves the ledger unchanged.
type Ledger struct {
	subjects []model.BudgetSubject
}

// NewLedger returns a ledger at the base allocations.
func NewLedger() *Ledger {
	return &Ledger{subjects: Catalog()}
}

// Subjects returns a copy of the current subjects.
func (l *Ledger) Subjects() []model.BudgetSubject {
	out := make([]model.BudgetSubject, len(l.subjects))
	copy(out, l.subjects)
	return out
}

// Subject returns one subject by index.
func (l *Ledger) Subject(i int) (model.BudgetSubject, error) {
	if i < 0 || i >= len(l.subjects) {
		return model.BudgetSubject{}, fmt.Errorf("subject %d: %w", i, ErrInvalidIndex)
	}
	return l.subjects[i], nil
}

// Len is the number of subjects in the catalog.
func (l *Ledger) Len() int { return len(l.subjects) }

// Total is the unclamped sum of all allocations.
func (l *Ledger) Total() int {
	total := 0
	for _, s := range l.subjects {
		total += s.Allocation
	}
	return total
}

// Reset restores every base allocation.
func (l *Ledger) Reset() {
	for i := range l.subjects {
		l.subjects[i].Allocation = l.subjects[i].Base
	}
}

// Adjust moves subject i one step in dir.
func (l *Ledger) Adjust(i int, dir Direction, rule Rule) error {
	if dir == Down {
		return l.Decrease(i, rule)
	}
	return l.Increase(i, rule)
}

// Increase raises subject i by Step, or by what remains below
// MaxAllocation. Under the balanced rule the first other subject that
// can give up the same amount is lowered to match.
func (l *Ledger) Increase(i int, rule Rule) error {
	if i < 0 || i >= len(l.subjects) {
		return fmt.Errorf("subject %d: %w", i, ErrInvalidIndex)
	}
	s := &l.subjects[i]
	if s.Allocation >= MaxAllocation {
		return fmt.Errorf("increasing %s: %w", s.Name, ErrLimitReached)
	}
	amount := min(Step, MaxAllocation-s.Allocation)

	if rule == Balanced {
		j := l.offsetFor(i, func(o model.BudgetSubject) bool { return o.Allocation >= amount })
		if j < 0 {
			return fmt.Errorf("increasing %s: %w", s.Name, ErrNoOffsetAvailable)
		}
		l.subjects[j].Allocation -= amount
	}
	s.Allocation += amount
	return nil
}

// Decrease lowers subject i by Step, or down to zero. Under the balanced
// rule the first other subject with room for the same amount is raised to
// match.
func (l *Ledger) Decrease(i int, rule Rule) error {
	if i < 0 || i >= len(l.subjects) {
		return fmt.Errorf("subject %d: %w", i, ErrInvalidIndex)
	}
	s := &l.subjects[i]
	if s.Allocation <= 0 {
		return fmt.Errorf("decreasing %s: %w", s.Name, ErrLimitReached)
	}
	amount := min(Step, s.Allocation)

	if rule == Balanced {
		j := l.offsetFor(i, func(o model.BudgetSubject) bool { return o.Allocation+amount <= MaxAllocation })
		if j < 0 {
			return fmt.Errorf("decreasing %s: %w", s.Name, ErrNoOffsetAvailable)
		}
		l.subjects[j].Allocation += amount
	}
	s.Allocation -= amount
	return nil
}

// offsetFor returns the first subject other than skip accepted by ok, or -1.
func (l *Ledger) offsetFor(skip int, ok func(model.BudgetSubject) bool) int {
	for j, o := range l.subjects {
		if j != skip && ok(o) {
			return j
		}
	}
	return -1
}

// Finalize closes negotiation. Under the balanced rule the total must be
// exactly 100. Under the deficit rule it always succeeds and reports the
// excess over 100.
func (l *Ledger) Finalize(rule Rule) (deficit int, err error) {
	total := l.Total()
	if rule == Balanced {
		if total != BaselineTotal {
			return 0, fmt.Errorf("total is %d: %w", total, ErrUnbalancedBudget)
		}
		return 0, nil
	}
	return max(0, total-BaselineTotal), nil
}
