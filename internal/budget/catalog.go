// Package budget holds the yearly spending ledger and the fiscal rules a
// coalition negotiates it under.
package budget

import "github.com/theirongolddev/parlsim/internal/model"

// Subject names, in catalog order.
const (
	Healthcare     = "Healthcare"
	Education      = "Education"
	Defense        = "Defense"
	Infrastructure = "Infrastructure"
	SocialWelfare  = "Social Welfare"
	Environment    = "Environment"
	Research       = "Research & Development"
	LawEnforcement = "Law Enforcement"
	ForeignAid     = "Foreign Aid"
	CultureAndArts = "Culture & Arts"
)

const (
	// BaselineTotal is the total of the base allocations and the target of
	// a balanced budget.
	BaselineTotal = 100
	// MaxAllocation bounds each subject independently.
	MaxAllocation = 100
	// Step is the size of one manual adjustment.
	Step = 5
)

// Catalog returns the fixed set of spending subjects at their base
// allocations. The bases sum to BaselineTotal.
func Catalog() []model.BudgetSubject {
	subjects := []model.BudgetSubject{
		{Name: Healthcare, Description: "Public healthcare services and medical infrastructure", Base: 25},
		{Name: Education, Description: "Schools, universities, and educational programs", Base: 20},
		{Name: Defense, Description: "Military spending and national security", Base: 15},
		{Name: Infrastructure, Description: "Roads, bridges, public transportation", Base: 12},
		{Name: SocialWelfare, Description: "Unemployment benefits, housing assistance", Base: 10},
		{Name: Environment, Description: "Environmental protection and climate initiatives", Base: 8},
		{Name: Research, Description: "Scientific research and innovation funding", Base: 5},
		{Name: LawEnforcement, Description: "Police, courts, and justice system", Base: 3},
		{Name: ForeignAid, Description: "International development and humanitarian aid", Base: 1},
		{Name: CultureAndArts, Description: "Museums, theaters, and cultural programs", Base: 1},
	}
	for i := range subjects {
		subjects[i].Allocation = subjects[i].Base
	}
	return subjects
}
