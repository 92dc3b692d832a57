package engine

import (
	"fmt"

	"github.com/theirongolddev/parlsim/internal/budget"
	"github.com/theirongolddev/parlsim/internal/model"
	"github.com/theirongolddev/parlsim/internal/tax"
)

// Ledger returns a copy of the budget subjects.
func (s *Session) Ledger() []model.BudgetSubject { return s.ledger.Subjects() }

// BudgetTotal is the unclamped sum of all allocations.
func (s *Session) BudgetTotal() int { return s.ledger.Total() }

// FindSubject resolves a subject name to its index.
func (s *Session) FindSubject(name string) (int, error) { return s.ledger.Find(name) }

// BudgetDone reports whether the budget was finalized or allocated
// automatically.
func (s *Session) BudgetDone() bool { return s.budgetDone }

// Deficit is the excess over 100 recorded when the budget closed.
func (s *Session) Deficit() int { return s.deficit }

// CurrentTaxRate is the rate derived from the latest ledger state.
func (s *Session) CurrentTaxRate() float64 { return s.taxRate }

// AdjustBudget moves one subject a single step under the coalition's
// fiscal rule. It fails with ErrNoMeeting outside the budget meeting.
func (s *Session) AdjustBudget(subject int, dir budget.Direction) error {
	if err := s.budgetOpen(); err != nil {
		return err
	}
	if err := s.ledger.Adjust(subject, dir, s.Rule()); err != nil {
		return err
	}
	s.recomputeTax()
	s.log.Debug("budget adjusted", "subject", subject, "direction", dir.String(),
		"total", s.ledger.Total(), "tax_rate", s.taxRate)
	return nil
}

// FinalizeBudget closes the negotiation. Under the balanced rule it fails
// with budget.ErrUnbalancedBudget until the total is exactly 100. Calling
// it again after success returns the recorded deficit.
func (s *Session) FinalizeBudget() (int, error) {
	if !s.generated {
		return 0, ErrNotGenerated
	}
	if s.budgetDone {
		return s.deficit, nil
	}
	if !s.meetingOpen() {
		return 0, ErrNoMeeting
	}
	deficit, err := s.ledger.Finalize(s.Rule())
	if err != nil {
		return 0, err
	}
	s.budgetDone = true
	s.deficit = deficit
	s.log.Debug("budget finalized", "total", s.ledger.Total(), "deficit", deficit)
	return deficit, nil
}

// ResetBudget restores the base allocations while the meeting is open.
// It is a no-op at any other time.
func (s *Session) ResetBudget() {
	if !s.meetingOpen() {
		return
	}
	s.ledger.Reset()
	s.recomputeTax()
}

// AutomaticAllocate lets the coalition set the budget from its ideology.
// The nudges apply to the ledger as it stands, so repeated calls stack.
func (s *Session) AutomaticAllocate() ([]budget.Delta, error) {
	if !s.generated {
		return nil, ErrNotGenerated
	}
	deltas := s.ledger.AutoAllocate(s.EconomicallyLeft(), s.SociallyConservative())
	s.budgetDone = true
	s.deficit = max(0, s.ledger.Total()-budget.BaselineTotal)
	s.recomputeTax()
	s.log.Debug("budget allocated automatically", "nudges", len(deltas),
		"total", s.ledger.Total(), "tax_rate", s.taxRate)
	return deltas, nil
}

func (s *Session) budgetOpen() error {
	if !s.generated {
		return ErrNotGenerated
	}
	if s.budgetDone {
		return fmt.Errorf("adjusting budget: %w", ErrBudgetClosed)
	}
	if !s.meetingOpen() {
		return fmt.Errorf("adjusting budget: %w", ErrNoMeeting)
	}
	return nil
}

func (s *Session) recomputeTax() {
	s.taxRate = tax.Rate(s.ledger.Total(), s.Rule(), s.rng)
}
