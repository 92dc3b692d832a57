package assembly

import (
	"testing"

	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/model"
)

func TestSeatsFillChamber(t *testing.T) {
	parties := []model.Party{
		{ID: 0, Name: "Big", Economic: 8, VoteShare: 40},
		{ID: 1, Name: "Mid", Economic: 2, VoteShare: 30},
		{ID: 2, Name: "Small", Economic: 5, VoteShare: 27},
	}
	benches := Seats(parties)
	total := 0
	for _, b := range benches {
		total += b.Seats
	}
	if total != TotalSeats {
		t.Fatalf("seats = %d, want %d", total, TotalSeats)
	}
	if benches[0].Name != "Mid" || benches[2].Name != "Big" {
		t.Fatalf("order = %s, %s, %s; want left to right", benches[0].Name, benches[1].Name, benches[2].Name)
	}
	if benches[2].Seats != 43 {
		t.Fatalf("largest party seats = %d, want 43", benches[2].Seats)
	}
}

func TestSeatsEmpty(t *testing.T) {
	if got := Seats(nil); got != nil {
		t.Fatalf("Seats(nil) = %v, want nil", got)
	}
}

func TestVoteOutrightMajority(t *testing.T) {
	parties := []model.Party{
		{ID: 0, Social: 1, Economic: 1, VoteShare: 55},
		{ID: 1, Social: 9, Economic: 9, VoteShare: 45},
	}
	r := Vote(parties, "")
	if r.Runoff != nil {
		t.Fatal("unexpected runoff")
	}
	if r.Winner != ideology.ProgressiveLeft {
		t.Fatalf("winner = %s, want progressive-left", r.Winner)
	}
	if r.First.Tally[ideology.ConservativeRight] != 45 {
		t.Fatalf("conservative-right tally = %d, want 45", r.First.Tally[ideology.ConservativeRight])
	}
}

func TestVoteRunoff(t *testing.T) {
	parties := []model.Party{
		{ID: 0, Social: 1, Economic: 1, VoteShare: 35},
		{ID: 1, Social: 9, Economic: 9, VoteShare: 30},
		{ID: 2, Social: 2, Economic: 8, VoteShare: 20},
		{ID: 3, Social: 8, Economic: 2, VoteShare: 15},
	}
	r := Vote(parties, "")
	if r.Runoff == nil {
		t.Fatal("expected a runoff without a first-round majority")
	}
	if len(r.Runoff.Options) != 2 || r.Runoff.Options[0] != ideology.ProgressiveLeft || r.Runoff.Options[1] != ideology.ConservativeRight {
		t.Fatalf("runoff options = %v, want [progressive-left conservative-right]", r.Runoff.Options)
	}
	// (2,8) and (8,2) are equidistant from both finalists and fall to the earlier one.
	if r.Winner != ideology.ProgressiveLeft {
		t.Fatalf("winner = %s, want progressive-left", r.Winner)
	}
	if got := r.Runoff.Tally[ideology.ProgressiveLeft]; got != 70 {
		t.Fatalf("runoff progressive-left = %d, want 70", got)
	}
}

func TestVotePlayerChoice(t *testing.T) {
	parties := []model.Party{
		{ID: 0, Social: 1, Economic: 1, VoteShare: 45},
		{ID: 1, Social: 9, Economic: 9, VoteShare: 45, Player: true},
		{ID: 2, Social: 9, Economic: 1, VoteShare: 10},
	}
	r := Vote(parties, ideology.ProgressiveLeft)
	if r.Runoff != nil || r.Winner != ideology.ProgressiveLeft {
		t.Fatalf("winner = %s (runoff %v), want progressive-left outright", r.Winner, r.Runoff != nil)
	}
	for _, b := range r.First.Ballots {
		if b.PartyID == 1 && b.Choice != ideology.ProgressiveLeft {
			t.Fatalf("player ballot = %s, want the explicit choice", b.Choice)
		}
	}
}
