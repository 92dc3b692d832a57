package model

// BudgetSubject is one line of the yearly budget. Allocation is an
// independent 0-100 percentage, not a share of a common pool.
type BudgetSubject struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Allocation  int    `json:"allocation" yaml:"allocation"`
	Base        int    `json:"base" yaml:"base"`
}
