package model

import "time"

// GameSummary is the outcome of one finished game as written to the
// journal.
type GameSummary struct {
	ID             string
	PlayedAt       time.Time
	Seed           int64
	PartyName      string
	Scale          Scale
	Stance         Stance
	PartyCount     int
	PlayerShare    int
	InCoalition    bool
	CoalitionShare int
	CoalitionSize  int
	Security       float64
	SecurityTier   string
	Rule           string
	BudgetTotal    int
	Deficit        int
	BudgetDone     bool
	TaxRate        float64
	Days           int
	Parties        []Party
}
