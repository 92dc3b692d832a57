package coalition

import (
	"testing"

	"github.com/theirongolddev/parlsim/internal/model"
)

func party(id, social, economic, share int) model.Party {
	return model.Party{ID: id, Social: social, Economic: economic, VoteShare: share}
}

func TestSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b model.Party
		want int
	}{
		{"identical", party(0, 5, 5, 0), party(1, 5, 5, 0), 8},
		{"close", party(0, 2, 3, 0), party(1, 4, 5, 0), 4},
		{"opposite corners", party(0, 0, 0, 0), party(1, 10, 10, 0), 0},
		{"one axis far", party(0, 0, 0, 0), party(1, 7, 0, 0), 1},
		{"negative", party(0, 0, 0, 0), party(1, 6, 6, 0), -4},
	}
	for _, c := range cases {
		if got := Similarity(c.a, c.b); got != c.want {
			t.Fatalf("%s: Similarity = %d, want %d", c.name, got, c.want)
		}
		if got := Similarity(c.b, c.a); got != c.want {
			t.Fatalf("%s: Similarity not symmetric: %d", c.name, got)
		}
	}
}

func TestSearchEmpty(t *testing.T) {
	r := Search(nil)
	if r.Total != 0 || r.Seed != -1 || len(r.Members) != 0 {
		t.Fatalf("Search(nil) = %+v, want empty result", r)
	}
	if r.Majority() {
		t.Fatal("empty result must not be a majority")
	}
}

func TestSearchDominantParty(t *testing.T) {
	parties := []model.Party{
		party(0, 0, 0, 60),
		party(1, 10, 10, 20),
		party(2, 5, 5, 20),
	}
	r := Search(parties)
	if !r.Majority() {
		t.Fatalf("Total = %d, want >= %d", r.Total, MajorityShare)
	}
	for _, p := range parties {
		if p.InCoalition {
			t.Fatal("Search must not modify parties")
		}
	}
}

func TestGrowOppositeCornerJoinsOnlyAtZero(t *testing.T) {
	parties := []model.Party{
		party(0, 0, 0, 45),
		party(1, 10, 10, 30), // similarity 0 to both others
		party(2, 3, 3, 10),   // similarity 2 to the first
	}
	// cap is (3+1)/2 = 2
	for threshold := MaxThreshold; threshold >= 0; threshold-- {
		members, total := grow(parties, 0, threshold)
		if members[1] {
			t.Fatalf("threshold %d: opposite corner joined ahead of the aligned party", threshold)
		}
		wantAligned, wantTotal := threshold <= 2, 45
		if wantAligned {
			wantTotal = 55
		}
		if members[2] != wantAligned || total != wantTotal {
			t.Fatalf("threshold %d: aligned member %v total %d, want %v %d",
				threshold, members[2], total, wantAligned, wantTotal)
		}
	}

	for threshold := 1; threshold <= MaxThreshold; threshold++ {
		if members, total := grow(parties, 1, threshold); members[0] || total != 30 {
			t.Fatalf("threshold %d: opposite corner grew to %d", threshold, total)
		}
	}

	r := Search(parties)
	if r.Total != 75 || r.Seed != 1 || r.Threshold != 0 {
		t.Fatalf("Search = total %d seed %d threshold %d, want 75 1 0", r.Total, r.Seed, r.Threshold)
	}
	if !r.Members[0] || !r.Members[1] || r.Members[2] {
		t.Fatalf("Members = %v, want the two corners", r.Members)
	}
}

func TestSearchRespectsSizeCap(t *testing.T) {
	for n := 1; n <= 9; n++ {
		parties := make([]model.Party, n)
		for i := range parties {
			parties[i] = party(i, 5, 5, 10)
		}
		r := Search(parties)
		size := 0
		for _, in := range r.Members {
			if in {
				size++
			}
		}
		if want := (n + 1) / 2; size != want {
			t.Fatalf("n=%d: coalition size = %d, want %d", n, size, want)
		}
	}
}

func TestSearchKeepsHighestTotal(t *testing.T) {
	parties := []model.Party{
		party(0, 2, 2, 30),
		party(1, 9, 9, 28),
		party(2, 3, 2, 22),
		party(3, 8, 9, 12),
		party(4, 5, 5, 8),
	}
	r := Form(parties)
	// seed 0 reaches 52 at threshold 7; seed 4 later reaches 60 at threshold 3
	if r.Total != 60 {
		t.Fatalf("Total = %d, want 60", r.Total)
	}
	if r.Seed != 4 || r.Threshold != 3 {
		t.Fatalf("winning attempt = seed %d threshold %d, want seed 4 threshold 3", r.Seed, r.Threshold)
	}
	want := []bool{true, false, true, false, true}
	for i, p := range parties {
		if p.InCoalition != want[i] {
			t.Fatalf("party %d InCoalition = %v, want %v", i, p.InCoalition, want[i])
		}
	}
}

func TestBestCandidateTieBreaks(t *testing.T) {
	members := []bool{true, false, false}

	parties := []model.Party{party(0, 5, 5, 10), party(1, 5, 6, 10), party(2, 5, 4, 20)}
	if got, sim := bestCandidate(parties, members); got != 2 || sim != 7 {
		t.Fatalf("bestCandidate = %d (sim %d), want 2 (sim 7) by larger share", got, sim)
	}

	parties[2].VoteShare = 10
	if got, _ := bestCandidate(parties, members); got != 1 {
		t.Fatalf("bestCandidate = %d, want 1 by lower index", got)
	}
}

func TestAffinityFloorsAtZero(t *testing.T) {
	parties := []model.Party{party(0, 0, 0, 10), party(1, 6, 6, 10)}
	if got := affinity(parties, []bool{true, false}, 1); got != 0 {
		t.Fatalf("affinity = %d, want 0 for a negative similarity", got)
	}
}

func TestRepairAddsOneParty(t *testing.T) {
	parties := []model.Party{
		party(0, 5, 5, 45),
		party(1, 5, 5, 30),
		party(2, 5, 6, 25),
	}
	parties[0].InCoalition = true

	added := Repair(parties)
	if added != 1 {
		t.Fatalf("Repair added %d, want 1", added)
	}
	if !parties[1].InCoalition || parties[2].InCoalition {
		t.Fatal("Repair must add exactly the most similar party")
	}
	if again := Repair(parties); again != -1 {
		t.Fatalf("second Repair added %d, want -1 once the majority holds", again)
	}
}

func TestRepairRequiresMinimumSimilarity(t *testing.T) {
	parties := []model.Party{
		party(0, 1, 1, 40),
		party(1, 5, 5, 35),
		party(2, 9, 9, 25),
	}
	parties[0].InCoalition = true

	// best affinity is 0 (party 1 is 4 apart on both axes)
	if added := Repair(parties); added != -1 {
		t.Fatalf("Repair added %d, want -1 below similarity %d", added, RepairMinSimilarity)
	}
	if Total(parties) != 40 {
		t.Fatalf("Total = %d, want unchanged 40", Total(parties))
	}
}

func TestApplyClearsStaleMembership(t *testing.T) {
	parties := []model.Party{party(0, 0, 0, 10), party(1, 0, 0, 10)}
	parties[1].InCoalition = true
	Apply(parties, []bool{true, false})
	if !parties[0].InCoalition || parties[1].InCoalition {
		t.Fatal("Apply must overwrite every party's membership")
	}
}
