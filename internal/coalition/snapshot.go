package coalition

import (
	"github.com/theirongolddev/parlsim/internal/model"
	"github.com/theirongolddev/parlsim/internal/security"
)

// Snapshot is the derived view of the current coalition. It is computed on
// demand and must not be kept across membership changes.
type Snapshot struct {
	Members      []model.Party
	TotalShare   int
	EconomicLean float64
	SocialLean   float64
	HasMembers   bool
	Security     security.Report
}

// Members returns copies of the coalition parties in landscape order.
func Members(parties []model.Party) []model.Party {
	var members []model.Party
	for _, p := range parties {
		if p.InCoalition {
			members = append(members, p)
		}
	}
	return members
}

// Total returns the coalition's combined vote share.
func Total(parties []model.Party) int {
	total := 0
	for _, p := range parties {
		if p.InCoalition {
			total += p.VoteShare
		}
	}
	return total
}

// EconomicLean is the vote-share-weighted mean economic value of the
// coalition. ok is false when the coalition is empty.
func EconomicLean(parties []model.Party) (lean float64, ok bool) {
	return weightedLean(parties, func(p model.Party) int { return p.Economic })
}

// SocialLean is the vote-share-weighted mean social value of the coalition.
func SocialLean(parties []model.Party) (lean float64, ok bool) {
	return weightedLean(parties, func(p model.Party) int { return p.Social })
}

func weightedLean(parties []model.Party, value func(model.Party) int) (float64, bool) {
	weighted, total := 0, 0
	for _, p := range parties {
		if p.InCoalition {
			weighted += value(p) * p.VoteShare
			total += p.VoteShare
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(weighted) / float64(total), true
}

// TakeSnapshot computes the coalition view for the current membership.
func TakeSnapshot(parties []model.Party) Snapshot {
	members := Members(parties)
	econ, ok := EconomicLean(parties)
	social, _ := SocialLean(parties)
	return Snapshot{
		Members:      members,
		TotalShare:   Total(parties),
		EconomicLean: econ,
		SocialLean:   social,
		HasMembers:   ok,
		Security:     security.Score(members),
	}
}
