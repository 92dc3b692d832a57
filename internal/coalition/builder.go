package coalition

import "github.com/theirongolddev/parlsim/internal/model"

// Result is the outcome of a coalition search.
type Result struct {
	Members   []bool // indexed like the input parties
	Total     int    // combined vote share of Members
	Seed      int    // party the winning attempt started from, -1 if none
	Threshold int    // cohesion threshold of the winning attempt
	Attempts  int    // (seed, threshold) pairs tried
}

// Majority reports whether the coalition reaches MajorityShare.
func (r Result) Majority() bool {
	return r.Total >= MajorityShare
}

// Search looks for the majority coalition with the best cohesion without
// enumerating every subset. Each party is tried as a seed; for each seed
// the cohesion threshold is relaxed from MaxThreshold down to 0 and the
// coalition is grown greedily. The attempt with the highest combined share
// wins. Threshold relaxation for a seed stops at its first majority.
// parties are not modified.
func Search(parties []model.Party) Result {
	best := Result{Members: make([]bool, len(parties)), Seed: -1}

	for seed := range parties {
		for threshold := MaxThreshold; threshold >= 0; threshold-- {
			members, total := grow(parties, seed, threshold)
			best.Attempts++

			if total > best.Total {
				best.Total = total
				best.Seed = seed
				best.Threshold = threshold
				copy(best.Members, members)
			}
			if total >= MajorityShare {
				break
			}
		}
	}
	return best
}

// grow runs one greedy growth from seed at the given threshold.
func grow(parties []model.Party, seed, threshold int) ([]bool, int) {
	members := make([]bool, len(parties))
	members[seed] = true
	total := parties[seed].VoteShare
	size := 1
	maxSize := (len(parties) + 1) / 2

	for total < MajorityShare && size < maxSize {
		next, sim := bestCandidate(parties, members)
		if next < 0 || sim < threshold {
			break
		}
		members[next] = true
		total += parties[next].VoteShare
		size++
	}
	return members, total
}

// bestCandidate returns the non-member with the highest affinity to the
// coalition. Ties go to the larger vote share, then to the lower index.
func bestCandidate(parties []model.Party, members []bool) (int, int) {
	bestIdx, bestSim := -1, -1
	for i, in := range members {
		if in {
			continue
		}
		sim := affinity(parties, members, i)
		if sim > bestSim || (sim == bestSim && parties[i].VoteShare > parties[bestIdx].VoteShare) {
			bestIdx, bestSim = i, sim
		}
	}
	return bestIdx, bestSim
}

// Form runs Search and commits the winning membership onto parties.
func Form(parties []model.Party) Result {
	r := Search(parties)
	Apply(parties, r.Members)
	return r
}

// Apply sets InCoalition on every party from members.
func Apply(parties []model.Party, members []bool) {
	for i := range parties {
		parties[i].InCoalition = i < len(members) && members[i]
	}
}

// Repair runs after vote shares are normalized. If the committed coalition
// has fallen below a majority it adds at most one opposition party: the one
// with the strictly highest affinity to the coalition, provided that
// affinity is at least RepairMinSimilarity. It returns the added party's
// index, or -1.
func Repair(parties []model.Party) int {
	if Total(parties) >= MajorityShare {
		return -1
	}

	members := make([]bool, len(parties))
	for i, p := range parties {
		members[i] = p.InCoalition
	}

	bestIdx, bestSim := -1, -1
	for i, in := range members {
		if in {
			continue
		}
		sim := affinity(parties, members, i)
		if sim > bestSim && sim >= RepairMinSimilarity {
			bestIdx, bestSim = i, sim
		}
	}
	if bestIdx >= 0 {
		parties[bestIdx].InCoalition = true
	}
	return bestIdx
}
