package model

// HistoryStats aggregates every journaled game.
type HistoryStats struct {
	Games          int
	Governing      int // games where the player's party was in the coalition
	Finalized      int // games whose budget was closed
	AvgSecurity    float64
	AvgTaxRate     float64
	AvgCoalition   float64
	TotalDeficit   int
	BestSecurity   float64
	WorstSecurity  float64
	DeficitBudgets int
}

// GoverningRate is the fraction of games the player spent in government.
func (h HistoryStats) GoverningRate() float64 {
	if h.Games == 0 {
		return 0
	}
	return float64(h.Governing) / float64(h.Games)
}
