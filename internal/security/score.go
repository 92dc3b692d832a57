// Package security scores coalition stability from the ideological
// distances between its members.
package security

import "github.com/theirongolddev/parlsim/internal/model"

const (
	// MaxScore is the score of a fully unconflicted coalition.
	MaxScore = 100.0
	// PointsPerDifference is deducted per point of average pair difference.
	PointsPerDifference = 5.0
)

// Pair is the ideological distance between two coalition members.
type Pair struct {
	A, B         string
	AID, BID     int
	SocialDiff   int
	EconomicDiff int
}

// Difference is the combined distance on both axes (0-20).
func (p Pair) Difference() int {
	return p.SocialDiff + p.EconomicDiff
}

// Report is a security score with the breakdown used to compute it.
type Report struct {
	Members           int
	Score             float64
	AverageDifference float64
	Pairs             []Pair
	Tier              Tier
}

// Score computes coalition stability in [0, 100]. An empty coalition scores
// 0 and a single-party coalition 100. Otherwise the score is 100 minus 5
// points per point of average pairwise difference.
func Score(members []model.Party) Report {
	r := Report{Members: len(members)}
	switch len(members) {
	case 0:
		r.Score = 0
		r.Tier = TierFor(r.Score)
		return r
	case 1:
		r.Score = MaxScore
		r.Tier = TierFor(r.Score)
		return r
	}

	total := 0
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			a, b := members[i], members[j]
			p := Pair{
				A: a.Name, B: b.Name,
				AID: a.ID, BID: b.ID,
				SocialDiff:   abs(a.Social - b.Social),
				EconomicDiff: abs(a.Economic - b.Economic),
			}
			total += p.Difference()
			r.Pairs = append(r.Pairs, p)
		}
	}

	r.AverageDifference = float64(total) / float64(len(r.Pairs))
	r.Score = clamp(MaxScore-r.AverageDifference*PointsPerDifference, 0, MaxScore)
	r.Tier = TierFor(r.Score)
	return r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
