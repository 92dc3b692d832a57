package landscape

import "github.com/theirongolddev/parlsim/internal/model"

// TotalShares is the sum every landscape is rescaled to.
const TotalShares = 100

// Normalize rescales vote shares proportionally so they sum to exactly 100.
// Each share is floored (never below 1) and the rounding difference is
// settled on the single largest party. It reports whether anything changed.
func Normalize(parties []model.Party) bool {
	if len(parties) == 0 {
		return false
	}
	total := 0
	for _, p := range parties {
		total += p.VoteShare
	}
	if total == TotalShares {
		return false
	}
	if total <= 0 {
		return false
	}

	sum := 0
	for i := range parties {
		share := parties[i].VoteShare * TotalShares / total
		if share < 1 {
			share = 1
		}
		parties[i].VoteShare = share
		sum += share
	}

	largest := 0
	for i := range parties {
		if parties[i].VoteShare > parties[largest].VoteShare {
			largest = i
		}
	}
	parties[largest].VoteShare += TotalShares - sum
	return true
}
