package store

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/parlsim/internal/model"
)

var (
	ErrNotFound    = errors.New("no such game")
	ErrAmbiguousID = errors.New("game id prefix matches more than one game")
)

// Stats aggregates the whole journal.
func (j *Journal) Stats() (model.HistoryStats, error) {
	var row struct {
		Games          int     `db:"games"`
		Governing      int     `db:"governing"`
		Finalized      int     `db:"finalized"`
		AvgSecurity    float64 `db:"avg_security"`
		AvgTaxRate     float64 `db:"avg_tax"`
		AvgCoalition   float64 `db:"avg_coalition"`
		TotalDeficit   int     `db:"total_deficit"`
		BestSecurity   float64 `db:"best_security"`
		WorstSecurity  float64 `db:"worst_security"`
		DeficitBudgets int     `db:"deficit_budgets"`
	}
	err := j.db.Get(&row, `SELECT
		COUNT(*)                                   AS games,
		COALESCE(SUM(in_coalition), 0)             AS governing,
		COALESCE(SUM(budget_done), 0)              AS finalized,
		COALESCE(AVG(security), 0.0)               AS avg_security,
		COALESCE(AVG(tax_rate), 0.0)               AS avg_tax,
		COALESCE(AVG(coalition_share), 0.0)        AS avg_coalition,
		COALESCE(SUM(deficit), 0)                  AS total_deficit,
		COALESCE(MAX(security), 0.0)               AS best_security,
		COALESCE(MIN(security), 0.0)               AS worst_security,
		COALESCE(SUM(deficit > 0), 0)              AS deficit_budgets
		FROM games`)
	if err != nil {
		return model.HistoryStats{}, fmt.Errorf("aggregating journal: %w", err)
	}
	return model.HistoryStats{
		Games:          row.Games,
		Governing:      row.Governing,
		Finalized:      row.Finalized,
		AvgSecurity:    row.AvgSecurity,
		AvgTaxRate:     row.AvgTaxRate,
		AvgCoalition:   row.AvgCoalition,
		TotalDeficit:   row.TotalDeficit,
		BestSecurity:   row.BestSecurity,
		WorstSecurity:  row.WorstSecurity,
		DeficitBudgets: row.DeficitBudgets,
	}, nil
}
