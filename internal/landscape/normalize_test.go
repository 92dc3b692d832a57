package landscape

import (
	"testing"

	"github.com/theirongolddev/parlsim/internal/entropy"
	"github.com/theirongolddev/parlsim/internal/model"
)

func sum(parties []model.Party) int {
	total := 0
	for _, p := range parties {
		total += p.VoteShare
	}
	return total
}

func TestNormalizeAlwaysSumsTo100(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		parties, err := Generate(entropy.New(seed), testPlayer(model.ScaleSmall), DefaultOptions())
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		Normalize(parties)
		if got := sum(parties); got != 100 {
			t.Fatalf("seed %d: shares sum to %d, want 100", seed, got)
		}
		for _, p := range parties {
			if p.VoteShare < 1 {
				t.Fatalf("seed %d: %s has share %d, want >= 1", seed, p.Name, p.VoteShare)
			}
		}
	}
}

func TestNormalizeRemainderGoesToLargest(t *testing.T) {
	parties := []model.Party{{VoteShare: 40}, {VoteShare: 30}, {VoteShare: 30}, {VoteShare: 20}}
	// total 120: floors are 33, 25, 25, 16 = 99
	if !Normalize(parties) {
		t.Fatal("Normalize reported no change")
	}
	want := []int{34, 25, 25, 16}
	for i, w := range want {
		if parties[i].VoteShare != w {
			t.Fatalf("party %d share = %d, want %d", i, parties[i].VoteShare, w)
		}
	}
}

func TestNormalizeFloorsAtOne(t *testing.T) {
	parties := []model.Party{{VoteShare: 75}, {VoteShare: 40}, {VoteShare: 40}, {VoteShare: 1}}
	Normalize(parties)
	if parties[3].VoteShare != 1 {
		t.Fatalf("smallest share = %d, want 1", parties[3].VoteShare)
	}
	if got := sum(parties); got != 100 {
		t.Fatalf("sum = %d, want 100", got)
	}
}

func TestNormalizeNoopAt100(t *testing.T) {
	parties := []model.Party{{VoteShare: 60}, {VoteShare: 40}}
	if Normalize(parties) {
		t.Fatal("Normalize changed a landscape already at 100")
	}
	if Normalize(nil) {
		t.Fatal("Normalize(nil) reported a change")
	}
}
