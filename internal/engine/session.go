// Package engine owns a single game session: the generated landscape, the
// coalition, the budget ledger and the tax rate derived from it. Every
// method runs to completion synchronously and a Session must not be shared
// between goroutines.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/theirongolddev/parlsim/internal/assembly"
	"github.com/theirongolddev/parlsim/internal/budget"
	"github.com/theirongolddev/parlsim/internal/cabinet"
	"github.com/theirongolddev/parlsim/internal/coalition"
	"github.com/theirongolddev/parlsim/internal/entropy"
	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/landscape"
	"github.com/theirongolddev/parlsim/internal/model"
	"github.com/theirongolddev/parlsim/internal/security"
)

var (
	ErrAlreadyGenerated = errors.New("landscape already generated")
	ErrNotGenerated     = errors.New("landscape not generated yet")
	ErrBudgetClosed     = errors.New("budget already finalized")
	ErrBudgetOpen       = errors.New("budget meeting still in session")
	ErrNoMeeting        = errors.New("no budget meeting in session")
)

// InitialTaxRate is reported before the first budget exists.
const InitialTaxRate = 25.0

// ConservativeLeanMin is the lowest weighted social lean that makes a
// coalition conservative for automatic allocation.
const ConservativeLeanMin = 6.0

// Config configures a new Session.
type Config struct {
	// Rand is the session's random source. When nil one is seeded from Seed.
	Rand      *rand.Rand
	Seed      int64
	Generator landscape.Options
	Logger    *slog.Logger
}

// Session is one game from party founding to the end of play.
type Session struct {
	rng  *rand.Rand
	seed int64
	opts landscape.Options
	log  *slog.Logger

	player    landscape.PlayerSpec
	parties   []model.Party
	search    coalition.Result
	repaired  int
	generated bool

	ledger     *budget.Ledger
	taxRate    float64
	budgetDone bool
	deficit    int

	day     int
	cabinet *cabinet.Cabinet
}

// New creates an empty session. Call GenerateLandscape before anything
// else.
func New(cfg Config) *Session {
	rng := cfg.Rand
	if rng == nil {
		rng = entropy.New(cfg.Seed)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{
		rng:      rng,
		seed:     cfg.Seed,
		opts:     cfg.Generator,
		log:      log,
		repaired: -1,
		ledger:   budget.NewLedger(),
		taxRate:  InitialTaxRate,
	}
}

// GenerateLandscape creates the legislature around the player's party,
// forms the coalition on raw vote shares, then normalizes shares to 100.
// It can only run once.
func (s *Session) GenerateLandscape(spec landscape.PlayerSpec) ([]model.Party, error) {
	if s.generated {
		return nil, ErrAlreadyGenerated
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	parties, err := landscape.Generate(s.rng, spec, s.opts)
	if err != nil {
		return nil, fmt.Errorf("generating landscape: %w", err)
	}

	s.search = coalition.Form(parties)
	s.log.Debug("coalition search",
		"parties", len(parties),
		"seed_party", s.search.Seed,
		"threshold", s.search.Threshold,
		"total", s.search.Total,
		"attempts", s.search.Attempts)

	s.repaired = s.settleShares(parties)

	s.player = spec
	s.parties = parties
	s.generated = true
	s.day = 1
	s.recomputeTax()
	return s.Parties(), nil
}

// settleShares rescales vote shares to 100. Only a rescale triggers the
// one-shot coalition repair; it returns the repaired party or -1.
func (s *Session) settleShares(parties []model.Party) int {
	if !landscape.Normalize(parties) {
		return -1
	}
	s.log.Debug("vote shares normalized", "total", landscape.TotalShares)

	r := coalition.Repair(parties)
	if r >= 0 {
		s.log.Debug("coalition repaired", "added", parties[r].Name,
			"total", coalition.Total(parties))
	}
	return r
}

// Generated reports whether the landscape exists.
func (s *Session) Generated() bool { return s.generated }

// Seed is the seed the session was created with.
func (s *Session) Seed() int64 { return s.seed }

// Player returns the validated player spec.
func (s *Session) Player() landscape.PlayerSpec { return s.player }

// Parties returns a copy of the landscape, largest party first.
func (s *Session) Parties() []model.Party {
	out := make([]model.Party, len(s.parties))
	copy(out, s.parties)
	return out
}

// PlayerParty returns the player's party.
func (s *Session) PlayerParty() (model.Party, bool) {
	for _, p := range s.parties {
		if p.Player {
			return p, true
		}
	}
	return model.Party{}, false
}

// PlayerInCoalition reports whether the player's party governs.
func (s *Session) PlayerInCoalition() bool {
	p, ok := s.PlayerParty()
	return ok && p.InCoalition
}

// Search returns the winning coalition search attempt.
func (s *Session) Search() coalition.Result { return s.search }

// Repaired returns the index of the party added by the repair pass, or -1.
func (s *Session) Repaired() int { return s.repaired }

// Coalition returns the current coalition view.
func (s *Session) Coalition() coalition.Snapshot {
	return coalition.TakeSnapshot(s.parties)
}

// CoalitionSecurity scores the stability of the current coalition.
func (s *Session) CoalitionSecurity() security.Report {
	return security.Score(coalition.Members(s.parties))
}

// Rule is the fiscal rule implied by the coalition's economic lean.
func (s *Session) Rule() budget.Rule {
	return budget.RuleFor(coalition.EconomicLean(s.parties))
}

// EconomicallyLeft reports whether the coalition permits deficits.
func (s *Session) EconomicallyLeft() bool {
	return s.Rule() == budget.Deficit
}

// SociallyConservative reports whether the coalition's weighted social
// lean is at least ConservativeLeanMin.
func (s *Session) SociallyConservative() bool {
	lean, ok := coalition.SocialLean(s.parties)
	return ok && lean >= ConservativeLeanMin
}

// Cabinet forms the government on first use and returns it afterwards.
func (s *Session) Cabinet() (cabinet.Cabinet, error) {
	if !s.generated {
		return cabinet.Cabinet{}, ErrNotGenerated
	}
	if s.cabinet == nil {
		c, err := cabinet.Form(s.parties, s.rng)
		if err != nil {
			return cabinet.Cabinet{}, fmt.Errorf("forming cabinet: %w", err)
		}
		s.cabinet = &c
	}
	return *s.cabinet, nil
}

// Seats returns the chamber layout.
func (s *Session) Seats() []assembly.Bench {
	return assembly.Seats(s.parties)
}

// HoldVote puts a motion to the chamber. choice is the player's vote and
// may be empty.
func (s *Session) HoldVote(choice ideology.Quadrant) (assembly.Result, error) {
	if !s.generated {
		return assembly.Result{}, ErrNotGenerated
	}
	r := assembly.Vote(s.parties, choice)
	s.log.Debug("vote held", "winner", r.Winner, "runoff", r.Runoff != nil)
	return r, nil
}

// Summary captures the session's outcome for the journal.
func (s *Session) Summary(now time.Time) model.GameSummary {
	snap := s.Coalition()
	g := model.GameSummary{
		PlayedAt:       now,
		Seed:           s.seed,
		PartyName:      s.player.Name,
		Scale:          s.player.Scale,
		Stance:         s.player.Stance,
		PartyCount:     len(s.parties),
		InCoalition:    s.PlayerInCoalition(),
		CoalitionShare: snap.TotalShare,
		CoalitionSize:  len(snap.Members),
		Security:       snap.Security.Score,
		SecurityTier:   snap.Security.Tier.String(),
		Rule:           s.Rule().String(),
		BudgetTotal:    s.ledger.Total(),
		Deficit:        s.deficit,
		BudgetDone:     s.budgetDone,
		TaxRate:        s.taxRate,
		Days:           s.day,
		Parties:        s.Parties(),
	}
	if p, ok := s.PlayerParty(); ok {
		g.PlayerShare = p.VoteShare
	}
	return g
}
