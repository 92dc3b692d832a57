// Package coalition assembles the governing coalition from a party landscape.
package coalition

import "github.com/theirongolddev/parlsim/internal/model"

const (
	// MajorityShare is the combined vote share that forms a government.
	MajorityShare = 50
	// MaxThreshold is the strictest cohesion threshold the search tries.
	MaxThreshold = 8
	// RepairMinSimilarity is the lowest similarity the repair pass accepts.
	RepairMinSimilarity = 4

	axisTolerance      = 4
	incompatibleSpread = 6
)

// Similarity scores how closely two parties align. Each axis contributes
// 4 minus the distance on that axis, so the result can be negative. Parties
// more than 6 apart on both axes are incompatible and score 0.
func Similarity(a, b model.Party) int {
	sd := abs(a.Social - b.Social)
	ed := abs(a.Economic - b.Economic)
	if sd > incompatibleSpread && ed > incompatibleSpread {
		return 0
	}
	return (axisTolerance - sd) + (axisTolerance - ed)
}

// affinity is a party's best similarity to any member, floored at 0.
func affinity(parties []model.Party, members []bool, candidate int) int {
	best := 0
	for j, in := range members {
		if !in {
			continue
		}
		if sim := Similarity(parties[candidate], parties[j]); sim > best {
			best = sim
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
