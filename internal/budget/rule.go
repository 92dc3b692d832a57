package budget

import (
	"fmt"
	"strings"
)

// Rule is the fiscal rule a coalition negotiates the budget under.
type Rule int

const (
	// Balanced requires every change to be offset so the total stays at 100.
	Balanced Rule = iota
	// Deficit lets the total exceed 100; the excess is the deficit.
	Deficit
)

// DeficitLeanMax is the highest economic lean that still permits a deficit.
const DeficitLeanMax = 4.0

// RuleFor picks the rule from the coalition's weighted economic lean.
// Without a coalition (ok == false) the budget must balance.
func RuleFor(economicLean float64, ok bool) Rule {
	if ok && economicLean <= DeficitLeanMax {
		return Deficit
	}
	return Balanced
}

func (r Rule) String() string {
	if r == Deficit {
		return "deficit-permitting"
	}
	return "balanced-budget"
}

// Direction is the sign of a single budget adjustment.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "decrease"
	}
	return "increase"
}

// ParseDirection accepts "+", "up", "inc", "increase" and their negatives.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "up", "inc", "increase":
		return Up, nil
	case "-", "down", "dec", "decrease":
		return Down, nil
	}
	return Up, fmt.Errorf("unknown direction %q (want + or -)", s)
}
