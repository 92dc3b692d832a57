package cabinet

import (
	"errors"
	"math/rand/v2"
	"sort"

	"github.com/theirongolddev/parlsim/internal/model"
)

// Departments are filled in this order.
var Departments = []string{
	"Health", "Education", "Defense", "Finance", "Infrastructure",
	"Environment", "Justice", "Foreign Affairs", "Interior", "Economy",
}

// ErrNoParties is returned when there is nobody to appoint.
var ErrNoParties = errors.New("no parties to appoint from")

// presidentFromLargest is the chance the largest coalition party supplies
// the president.
const presidentFromLargest = 0.7

// Post is an office held by a leader on behalf of a party.
type Post struct {
	Office  string
	PartyID int
	Party   string
	Leader  model.Leader
}

// Cabinet is the executive formed after the coalition.
type Cabinet struct {
	President Post
	Ministers []Post
}

// Form appoints a president and one minister per department. Ministries
// are apportioned to coalition parties by the floor of their share of the
// coalition total, with the remainder going round-robin to the largest
// parties, and then shuffled across departments. Without a coalition the
// largest party supplies the president and the whole chamber is eligible
// for ministries.
func Form(parties []model.Party, rng *rand.Rand) (Cabinet, error) {
	if len(parties) == 0 {
		return Cabinet{}, ErrNoParties
	}

	pool := make([]model.Party, 0, len(parties))
	for _, p := range parties {
		if p.InCoalition {
			pool = append(pool, p)
		}
	}
	coalition := len(pool) > 0
	if !coalition {
		pool = append(pool, parties...)
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].VoteShare > pool[j].VoteShare })

	president := pool[0]
	if coalition {
		president = pickPresident(pool, rng)
	}
	c := Cabinet{President: appoint("President", president, rng)}

	seats := apportion(pool, len(Departments))
	rng.Shuffle(len(seats), func(i, j int) { seats[i], seats[j] = seats[j], seats[i] })
	for i, dept := range Departments {
		c.Ministers = append(c.Ministers, appoint("Minister of "+dept, pool[seats[i]], rng))
	}
	return c, nil
}

// pickPresident expects pool sorted by share, largest first.
func pickPresident(pool []model.Party, rng *rand.Rand) model.Party {
	if len(pool) == 1 || rng.Float64() < presidentFromLargest {
		return pool[0]
	}
	return pool[1+rng.IntN(len(pool)-1)]
}

// apportion returns n pool indexes, one per post, in pool order.
func apportion(pool []model.Party, n int) []int {
	total := 0
	for _, p := range pool {
		total += p.VoteShare
	}

	counts := make([]int, len(pool))
	assigned := 0
	if total > 0 {
		for i, p := range pool {
			counts[i] = p.VoteShare * n / total
			assigned += counts[i]
		}
	}
	for i := 0; assigned < n; i++ {
		counts[i%len(pool)]++
		assigned++
	}

	seats := make([]int, 0, n)
	for i, c := range counts {
		for k := 0; k < c; k++ {
			seats = append(seats, i)
		}
	}
	return seats
}

func appoint(office string, p model.Party, rng *rand.Rand) Post {
	l := DrawLeader(rng)
	l.Title = office
	return Post{Office: office, PartyID: p.ID, Party: p.Name, Leader: l}
}

// Count returns the number of ministries held by each party ID.
func (c Cabinet) Count() map[int]int {
	out := make(map[int]int)
	for _, m := range c.Ministers {
		out[m.PartyID]++
	}
	return out
}
