// Package landscape generates the procedural multi-party legislature a
// player's party is inserted into.
package landscape

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/theirongolddev/parlsim/internal/entropy"
	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/model"
)

var (
	// ErrInvalidName is returned for party names outside 2-50 characters.
	ErrInvalidName = errors.New("invalid party name")
	// ErrInvalidPlayer is returned for an unknown scale or ideology label.
	ErrInvalidPlayer = errors.New("invalid player party")
	// ErrNamePool is returned when the name pool cannot cover the party count.
	ErrNamePool = errors.New("party name pool too small")
)

const (
	minNameLen = 2
	maxNameLen = 50
)

// DefaultNames is the pool generated parties draw their names from.
var DefaultNames = []string{
	"National Unity Party", "Democratic Alliance", "Progressive Front", "Conservative Coalition",
	"Social Justice Party", "Free Market Party", "Green Future", "Traditional Values Party",
	"Workers' Union", "Liberty Party", "Reform Movement", "Stability Party",
}

// Options tunes landscape generation.
type Options struct {
	Names      []string
	MinParties int
	MaxParties int
}

// DefaultOptions returns 6-8 generated parties drawn from DefaultNames.
func DefaultOptions() Options {
	return Options{
		Names:      DefaultNames,
		MinParties: 6,
		MaxParties: 8,
	}
}

// PlayerSpec describes the party the player founds.
type PlayerSpec struct {
	Name     string
	Scale    model.Scale
	Stance   model.Stance
	Social   ideology.Label
	Economic ideology.Label
}

// Validate trims the name and checks every field.
func (p *PlayerSpec) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	n := utf8.RuneCountInString(p.Name)
	if n < minNameLen {
		return fmt.Errorf("%w: must be at least %d characters", ErrInvalidName, minNameLen)
	}
	if n > maxNameLen {
		return fmt.Errorf("%w: must be at most %d characters", ErrInvalidName, maxNameLen)
	}
	if p.Scale != model.ScaleSmall && p.Scale != model.ScaleBig {
		return fmt.Errorf("%w: scale %q", ErrInvalidPlayer, p.Scale)
	}
	if p.Stance == "" {
		p.Stance = model.StanceOpposition
	}
	if p.Social != ideology.Progressive && p.Social != ideology.Conservative {
		return fmt.Errorf("%w: social label %q", ErrInvalidPlayer, p.Social)
	}
	if p.Economic != ideology.Left && p.Economic != ideology.Right {
		return fmt.Errorf("%w: economic label %q", ErrInvalidPlayer, p.Economic)
	}
	return nil
}

// GeneratedShare draws a generated party's raw vote share: N(15, 8) in [1, 40].
func GeneratedShare(rng *rand.Rand) int {
	return entropy.ClampedNormal(rng, 15, 8, 1, 40)
}

// PlayerShare draws the player's raw vote share for the declared scale:
// small N(4.5, 1.5) in [1, 10], big N(35, 8) in [10, 75].
func PlayerShare(rng *rand.Rand, s model.Scale) int {
	if s == model.ScaleSmall {
		return entropy.ClampedNormal(rng, 4.5, 1.5, 1, 10)
	}
	return entropy.ClampedNormal(rng, 35, 8, 10, 75)
}

// Generate produces the generated parties plus the player's party, sorted
// by raw vote share (highest first) with IDs matching slice positions.
// Shares are not yet normalized and no coalition is assigned.
func Generate(rng *rand.Rand, player PlayerSpec, opts Options) ([]model.Party, error) {
	if err := player.Validate(); err != nil {
		return nil, err
	}
	if opts.MinParties <= 0 || opts.MaxParties < opts.MinParties {
		opts.MinParties, opts.MaxParties = DefaultOptions().MinParties, DefaultOptions().MaxParties
	}
	if len(opts.Names) == 0 {
		opts.Names = DefaultNames
	}

	count := opts.MinParties + rng.IntN(opts.MaxParties-opts.MinParties+1)
	names := drawNames(rng, opts.Names, player.Name, count)
	if len(names) < count {
		return nil, fmt.Errorf("%w: need %d names, have %d", ErrNamePool, count, len(names))
	}

	parties := make([]model.Party, 0, count+1)
	for i := 0; i < count; i++ {
		social := ideology.RandomLabel(rng, ideology.Social)
		economic := ideology.RandomLabel(rng, ideology.Economic)
		parties = append(parties, model.Party{
			Name:          names[i],
			SocialLabel:   string(social),
			EconomicLabel: string(economic),
			Social:        ideology.Draw(rng, social),
			Economic:      ideology.Draw(rng, economic),
			VoteShare:     GeneratedShare(rng),
		})
	}

	parties = append(parties, model.Party{
		Name:          player.Name,
		SocialLabel:   string(player.Social),
		EconomicLabel: string(player.Economic),
		Social:        ideology.Draw(rng, player.Social),
		Economic:      ideology.Draw(rng, player.Economic),
		VoteShare:     PlayerShare(rng, player.Scale),
		Player:        true,
	})

	sort.SliceStable(parties, func(i, j int) bool {
		return parties[i].VoteShare > parties[j].VoteShare
	})
	for i := range parties {
		parties[i].ID = i
	}
	return parties, nil
}

// drawNames picks distinct names, skipping any that collide with the player's.
func drawNames(rng *rand.Rand, pool []string, playerName string, count int) []string {
	candidates := make([]string, 0, len(pool))
	seen := make(map[string]struct{}, len(pool))
	for _, n := range pool {
		key := strings.ToLower(n)
		if strings.EqualFold(n, playerName) {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, n)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates
}
