package assembly

import (
	"sort"

	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/model"
)

// MajorityFraction of the weighted vote carries a motion outright.
const MajorityFraction = 0.5

// Ballot is one party's vote in a round.
type Ballot struct {
	PartyID int
	Name    string
	Weight  int
	Choice  ideology.Quadrant
}

// Round is the ballots and weighted tallies of one round of voting.
type Round struct {
	Ballots []Ballot
	Tally   map[ideology.Quadrant]int
	Options []ideology.Quadrant
}

// Leader returns the option with the most weight and its share of the
// total. Ties go to the earlier option.
func (r Round) Leader() (ideology.Quadrant, float64) {
	var best ideology.Quadrant
	total, bestVotes := 0, -1
	for _, q := range r.Options {
		total += r.Tally[q]
		if r.Tally[q] > bestVotes {
			best, bestVotes = q, r.Tally[q]
		}
	}
	if total == 0 {
		return best, 0
	}
	return best, float64(bestVotes) / float64(total)
}

// Result is the outcome of a motion. Runoff is nil when the first round
// produced a majority.
type Result struct {
	First  Round
	Runoff *Round
	Winner ideology.Quadrant
}

// Vote puts the four compass options to the chamber. Every party votes for
// the option nearest its position, except the player's party when choice
// is non-empty. Without a majority the two strongest options go to a
// runoff in which the player's party votes for choice if it is one of
// them.
func Vote(parties []model.Party, choice ideology.Quadrant) Result {
	first := castRound(parties, ideology.Quadrants, choice)
	winner, share := first.Leader()
	if share >= MajorityFraction {
		return Result{First: first, Winner: winner}
	}

	runoff := castRound(parties, topTwo(first), choice)
	winner, _ = runoff.Leader()
	return Result{First: first, Runoff: &runoff, Winner: winner}
}

func castRound(parties []model.Party, options []ideology.Quadrant, choice ideology.Quadrant) Round {
	r := Round{Tally: make(map[ideology.Quadrant]int, len(options)), Options: options}
	for _, p := range parties {
		pick := ideology.Nearest(p.Social, p.Economic, options)
		if p.Player && contains(options, choice) {
			pick = choice
		}
		r.Ballots = append(r.Ballots, Ballot{PartyID: p.ID, Name: p.Name, Weight: p.VoteShare, Choice: pick})
		r.Tally[pick] += p.VoteShare
	}
	return r
}

func topTwo(r Round) []ideology.Quadrant {
	ranked := make([]ideology.Quadrant, len(r.Options))
	copy(ranked, r.Options)
	sort.SliceStable(ranked, func(i, j int) bool {
		return r.Tally[ranked[i]] > r.Tally[ranked[j]]
	})
	return ranked[:2]
}

func contains(options []ideology.Quadrant, q ideology.Quadrant) bool {
	for _, o := range options {
		if o == q {
			return true
		}
	}
	return false
}
