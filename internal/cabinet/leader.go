// Package cabinet appoints the president and ministers of a coalition
// government.
package cabinet

import (
	"math/rand/v2"

	"github.com/theirongolddev/parlsim/internal/model"
)

var firstNames = []string{
	"Alexander", "Benjamin", "Charlotte", "David", "Emma", "Felix", "Grace", "Henry",
	"Isabella", "James", "Katherine", "Liam", "Maya", "Nathan", "Olivia", "Patrick",
	"Quinn", "Rachel", "Samuel", "Tessa", "Ulysses", "Victoria", "William", "Xavier",
	"Yara", "Zachary", "Amelia", "Benedict", "Cordelia", "Dominic", "Eleanor", "Frederick",
	"Genevieve", "Harrison", "Imogen", "Julian", "Katarina", "Leonardo", "Margot", "Nicholas",
	"Ophelia", "Percival", "Rosalind", "Sebastian", "Theodora", "Valentine", "Winifred", "Xander",
}

var lastNames = []string{
	"Anderson", "Brown", "Clark", "Davis", "Evans", "Foster", "Garcia", "Harris",
	"Jackson", "Johnson", "King", "Lee", "Miller", "Nelson", "O'Connor", "Parker",
	"Quinn", "Roberts", "Smith", "Taylor", "Underwood", "Vargas", "Williams", "Young",
	"Adams", "Baker", "Campbell", "Carter", "Edwards", "Green", "Hall", "Jones",
	"Martin", "Murphy", "Reed", "Rivera", "Thompson", "White", "Wilson", "Wright",
	"Alexander", "Bennett", "Cooper", "Fisher", "Gray", "Hughes", "Jenkins", "Kelly",
}

var titles = []string{
	"MP", "Minister", "Deputy Leader", "Shadow Minister", "Committee Chair", "Whip", "Speaker",
}

// DrawLeader generates a politician: age 35-64, 5-24 years of experience
// and 1-10 attributes.
func DrawLeader(rng *rand.Rand) model.Leader {
	return model.Leader{
		FirstName:    firstNames[rng.IntN(len(firstNames))],
		LastName:     lastNames[rng.IntN(len(lastNames))],
		Title:        titles[rng.IntN(len(titles))],
		Age:          35 + rng.IntN(30),
		Experience:   5 + rng.IntN(20),
		Charisma:     1 + rng.IntN(10),
		Intelligence: 1 + rng.IntN(10),
		Integrity:    1 + rng.IntN(10),
	}
}
