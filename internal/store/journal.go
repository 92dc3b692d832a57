// Package store keeps an append-only SQLite journal of finished games.
// Journal entries are never loaded back into a running session.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/theirongolddev/parlsim/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Journal records game outcomes.
type Journal struct {
	db *sqlx.DB
}

// DefaultPath returns the XDG-compliant journal location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "parlsim", "journal.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "parlsim", "journal.db")
}

// Open opens or creates the journal database at the given path.
func Open(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

type gameRow struct {
	ID             string  `db:"game_id"`
	PlayedAt       string  `db:"played_at"`
	Seed           int64   `db:"seed"`
	PartyName      string  `db:"party_name"`
	Scale          string  `db:"scale"`
	Stance         string  `db:"stance"`
	PartyCount     int     `db:"party_count"`
	PlayerShare    int     `db:"player_share"`
	InCoalition    bool    `db:"in_coalition"`
	CoalitionShare int     `db:"coalition_share"`
	CoalitionSize  int     `db:"coalition_size"`
	Security       float64 `db:"security"`
	SecurityTier   string  `db:"security_tier"`
	Rule           string  `db:"fiscal_rule"`
	BudgetTotal    int     `db:"budget_total"`
	Deficit        int     `db:"deficit"`
	BudgetDone     bool    `db:"budget_done"`
	TaxRate        float64 `db:"tax_rate"`
	Days           int     `db:"days"`
}

type partyRow struct {
	GameID        string `db:"game_id"`
	PartyID       int    `db:"party_id"`
	Name          string `db:"name"`
	SocialLabel   string `db:"social_label"`
	EconomicLabel string `db:"economic_label"`
	Social        int    `db:"social"`
	Economic      int    `db:"economic"`
	VoteShare     int    `db:"vote_share"`
	InCoalition   bool   `db:"in_coalition"`
	Player        bool   `db:"player"`
}

// SaveGame appends a finished game and its parties. A missing ID is filled
// with a new UUID, which is returned.
func (j *Journal) SaveGame(g model.GameSummary) (string, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.PlayedAt.IsZero() {
		g.PlayedAt = time.Now()
	}

	tx, err := j.db.Beginx()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	row := gameRow{
		ID:             g.ID,
		PlayedAt:       g.PlayedAt.UTC().Format(time.RFC3339),
		Seed:           g.Seed,
		PartyName:      g.PartyName,
		Scale:          string(g.Scale),
		Stance:         string(g.Stance),
		PartyCount:     g.PartyCount,
		PlayerShare:    g.PlayerShare,
		InCoalition:    g.InCoalition,
		CoalitionShare: g.CoalitionShare,
		CoalitionSize:  g.CoalitionSize,
		Security:       g.Security,
		SecurityTier:   g.SecurityTier,
		Rule:           g.Rule,
		BudgetTotal:    g.BudgetTotal,
		Deficit:        g.Deficit,
		BudgetDone:     g.BudgetDone,
		TaxRate:        g.TaxRate,
		Days:           g.Days,
	}
	_, err = tx.NamedExec(`INSERT INTO games
		(game_id, played_at, seed, party_name, scale, stance, party_count, player_share,
		 in_coalition, coalition_share, coalition_size, security, security_tier,
		 fiscal_rule, budget_total, deficit, budget_done, tax_rate, days)
		VALUES (:game_id, :played_at, :seed, :party_name, :scale, :stance, :party_count, :player_share,
		 :in_coalition, :coalition_share, :coalition_size, :security, :security_tier,
		 :fiscal_rule, :budget_total, :deficit, :budget_done, :tax_rate, :days)`, row)
	if err != nil {
		return "", fmt.Errorf("insert game: %w", err)
	}

	for _, p := range g.Parties {
		_, err = tx.NamedExec(`INSERT INTO game_parties
			(game_id, party_id, name, social_label, economic_label, social, economic,
			 vote_share, in_coalition, player)
			VALUES (:game_id, :party_id, :name, :social_label, :economic_label, :social, :economic,
			 :vote_share, :in_coalition, :player)`, partyRow{
			GameID:        g.ID,
			PartyID:       p.ID,
			Name:          p.Name,
			SocialLabel:   p.SocialLabel,
			EconomicLabel: p.EconomicLabel,
			Social:        p.Social,
			Economic:      p.Economic,
			VoteShare:     p.VoteShare,
			InCoalition:   p.InCoalition,
			Player:        p.Player,
		})
		if err != nil {
			return "", fmt.Errorf("insert party %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return g.ID, nil
}

// RecentGames returns up to limit games, newest first, without parties.
func (j *Journal) RecentGames(limit int) ([]model.GameSummary, error) {
	var rows []gameRow
	err := j.db.Select(&rows, `SELECT * FROM games ORDER BY played_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}

	games := make([]model.GameSummary, 0, len(rows))
	for _, r := range rows {
		games = append(games, r.summary())
	}
	return games, nil
}

// Game returns one game with its parties, largest first. A short unique
// prefix of the ID is accepted.
func (j *Journal) Game(id string) (model.GameSummary, error) {
	var rows []gameRow
	if err := j.db.Select(&rows, `SELECT * FROM games WHERE game_id LIKE ? || '%' LIMIT 2`, id); err != nil {
		return model.GameSummary{}, fmt.Errorf("loading game %s: %w", id, err)
	}
	switch len(rows) {
	case 0:
		return model.GameSummary{}, fmt.Errorf("game %s: %w", id, ErrNotFound)
	case 2:
		return model.GameSummary{}, fmt.Errorf("game %s: %w", id, ErrAmbiguousID)
	}

	g := rows[0].summary()
	var parties []partyRow
	err := j.db.Select(&parties, `SELECT * FROM game_parties WHERE game_id = ? ORDER BY vote_share DESC, party_id`, g.ID)
	if err != nil {
		return model.GameSummary{}, fmt.Errorf("loading parties for %s: %w", g.ID, err)
	}
	for _, p := range parties {
		g.Parties = append(g.Parties, model.Party{
			ID:            p.PartyID,
			Name:          p.Name,
			SocialLabel:   p.SocialLabel,
			EconomicLabel: p.EconomicLabel,
			Social:        p.Social,
			Economic:      p.Economic,
			VoteShare:     p.VoteShare,
			InCoalition:   p.InCoalition,
			Player:        p.Player,
		})
	}
	return g, nil
}

// Count returns the number of journaled games.
func (j *Journal) Count() (int, error) {
	var count int
	err := j.db.Get(&count, "SELECT COUNT(*) FROM games")
	return count, err
}

func (r gameRow) summary() model.GameSummary {
	playedAt, _ := time.Parse(time.RFC3339, r.PlayedAt)
	return model.GameSummary{
		ID:             r.ID,
		PlayedAt:       playedAt,
		Seed:           r.Seed,
		PartyName:      r.PartyName,
		Scale:          model.Scale(r.Scale),
		Stance:         model.Stance(r.Stance),
		PartyCount:     r.PartyCount,
		PlayerShare:    r.PlayerShare,
		InCoalition:    r.InCoalition,
		CoalitionShare: r.CoalitionShare,
		CoalitionSize:  r.CoalitionSize,
		Security:       r.Security,
		SecurityTier:   r.SecurityTier,
		Rule:           r.Rule,
		BudgetTotal:    r.BudgetTotal,
		Deficit:        r.Deficit,
		BudgetDone:     r.BudgetDone,
		TaxRate:        r.TaxRate,
		Days:           r.Days,
	}
}
