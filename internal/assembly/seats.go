// Package assembly seats the legislature and runs its votes.
package assembly

import (
	"sort"

	"github.com/theirongolddev/parlsim/internal/model"
)

// TotalSeats is the size of the chamber.
const TotalSeats = 100

// Bench is one party's block of seats.
type Bench struct {
	PartyID     int
	Name        string
	Seats       int
	Economic    int
	InCoalition bool
	Player      bool
}

// Seats gives each party one seat per point of vote share. Any difference
// from TotalSeats is absorbed by the largest party. Benches are ordered
// left to right by economic position, ties by vote share.
func Seats(parties []model.Party) []Bench {
	if len(parties) == 0 {
		return nil
	}

	benches := make([]Bench, len(parties))
	total, largest := 0, 0
	for i, p := range parties {
		benches[i] = Bench{
			PartyID:     p.ID,
			Name:        p.Name,
			Seats:       p.VoteShare,
			Economic:    p.Economic,
			InCoalition: p.InCoalition,
			Player:      p.Player,
		}
		total += p.VoteShare
		if p.VoteShare > parties[largest].VoteShare {
			largest = i
		}
	}
	benches[largest].Seats += TotalSeats - total

	sort.SliceStable(benches, func(i, j int) bool {
		if benches[i].Economic != benches[j].Economic {
			return benches[i].Economic < benches[j].Economic
		}
		return benches[i].Seats > benches[j].Seats
	})
	return benches
}
