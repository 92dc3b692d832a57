package budget

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Delta records one policy nudge applied by AutoAllocate.
type Delta struct {
	Index   int
	Subject string
	Nudge   int // requested change
	Before  int
	After   int // Before+Nudge clamped to [0, MaxAllocation]
}

// Change is the change actually applied after clamping.
func (d Delta) Change() int { return d.After - d.Before }

type nudge struct {
	subject string
	points  int
}

var (
	leftNudges = []nudge{
		{Healthcare, 5}, {Education, 5}, {SocialWelfare, 5}, {Environment, 5},
	}
	rightNudges = []nudge{
		{SocialWelfare, -5}, {Environment, -5}, {Research, -5}, {ForeignAid, -5},
	}
	conservativeNudges = []nudge{
		{Defense, 3}, {CultureAndArts, 2},
	}
	progressiveNudges = []nudge{
		{Healthcare, 3}, {Education, 3}, {Research, 2},
	}
)

// AutoAllocate applies the coalition's policy preferences to the current
// allocations: one set of nudges for its economic side and one for its
// social side. Each nudge is clamped on its own subject and is never
// offset elsewhere. The applied deltas are returned in order.
func (l *Ledger) AutoAllocate(economicLeft, socialConservative bool) []Delta {
	economic, social := rightNudges, progressiveNudges
	if economicLeft {
		economic = leftNudges
	}
	if socialConservative {
		social = conservativeNudges
	}

	var deltas []Delta
	for _, group := range [][]nudge{economic, social} {
		for i := range l.subjects {
			for _, n := range group {
				if n.subject != l.subjects[i].Name {
					continue
				}
				before := l.subjects[i].Allocation
				after := min(MaxAllocation, max(0, before+n.points))
				l.subjects[i].Allocation = after
				deltas = append(deltas, Delta{
					Index:   i,
					Subject: n.subject,
					Nudge:   n.points,
					Before:  before,
					After:   after,
				})
			}
		}
	}
	return deltas
}

// maxFuzzyDistance is the largest edit distance Find accepts.
const maxFuzzyDistance = 3

// Find resolves a subject by name: an exact case-insensitive match first,
// then a unique prefix, then the closest name within a small edit distance.
func (l *Ledger) Find(name string) (int, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return -1, fmt.Errorf("empty subject name: %w", ErrUnknownSubject)
	}

	prefix := -1
	for i, s := range l.subjects {
		got := strings.ToLower(s.Name)
		if got == want {
			return i, nil
		}
		if strings.HasPrefix(got, want) {
			if prefix >= 0 {
				prefix = -2
			} else if prefix == -1 {
				prefix = i
			}
		}
	}
	if prefix >= 0 {
		return prefix, nil
	}

	best, bestDist := -1, maxFuzzyDistance+1
	for i, s := range l.subjects {
		d := levenshtein.ComputeDistance(want, strings.ToLower(s.Name))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return -1, fmt.Errorf("%q: %w", name, ErrUnknownSubject)
	}
	return best, nil
}
