package engine

import "github.com/theirongolddev/parlsim/internal/budget"

// BudgetDay is the day the yearly budget is settled.
const BudgetDay = 2

// Event is what happened when a new day began.
type Event int

const (
	// NewDay is an ordinary day.
	NewDay Event = iota
	// BudgetMeeting opens manual negotiation for a governing player.
	BudgetMeeting
	// BudgetAllocated means the coalition set the budget without the player.
	BudgetAllocated
)

func (e Event) String() string {
	switch e {
	case BudgetMeeting:
		return "budget meeting"
	case BudgetAllocated:
		return "budget allocated"
	default:
		return "new day"
	}
}

// Day is the current day, starting at 1 once the landscape exists.
func (s *Session) Day() int { return s.day }

// AdvanceDay moves to the next day. From BudgetDay on an unsettled budget
// is either opened for negotiation, when the player governs, or allocated
// automatically. The day cannot advance while a negotiation is open.
func (s *Session) AdvanceDay() (Event, []budget.Delta, error) {
	if !s.generated {
		return NewDay, nil, ErrNotGenerated
	}
	if s.meetingOpen() {
		return BudgetMeeting, nil, ErrBudgetOpen
	}

	s.day++
	s.log.Debug("day advanced", "day", s.day)
	if s.day < BudgetDay || s.budgetDone {
		return NewDay, nil, nil
	}
	if s.PlayerInCoalition() {
		return BudgetMeeting, nil, nil
	}
	deltas, err := s.AutomaticAllocate()
	if err != nil {
		return NewDay, nil, err
	}
	return BudgetAllocated, deltas, nil
}

// MeetingOpen reports whether the player must finish the budget before the
// day can advance.
func (s *Session) MeetingOpen() bool { return s.meetingOpen() }

func (s *Session) meetingOpen() bool {
	return s.day >= BudgetDay && !s.budgetDone && s.PlayerInCoalition()
}
