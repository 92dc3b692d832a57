package cmd

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/parlsim/internal/config"
	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/landscape"
	"github.com/theirongolddev/parlsim/internal/model"
)

// defaultPartyName is used by the scripted commands when --name is omitted.
const defaultPartyName = "Independent Alliance"

// playerFlags are the party-founding answers accepted on the command line.
type playerFlags struct {
	name     string
	scale    string
	stance   string
	social   string
	economic string
}

func (f *playerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Party name (2-50 characters)")
	cmd.Flags().StringVar(&f.scale, "scale", "", "Party size: small or big (default from config)")
	cmd.Flags().StringVar(&f.stance, "stance", "", "Starting stance: opposition or coalition (default from config)")
	cmd.Flags().StringVar(&f.social, "social", "", "Social ideology: progressive or conservative (default random)")
	cmd.Flags().StringVar(&f.economic, "economic", "", "Economic ideology: left or right (default random)")
}

// given reports whether any founding answer was supplied.
func (f playerFlags) given() bool {
	return f.name != "" || f.scale != "" || f.stance != "" || f.social != "" || f.economic != ""
}

// spec resolves the flags into a player spec. Missing ideology labels are
// drawn from rng so a seeded game stays replayable.
func (f playerFlags) spec(cfg config.Config, rng *rand.Rand) (landscape.PlayerSpec, error) {
	scale, stance := cfg.General.Defaults()
	if f.scale != "" {
		s, ok := model.ParseScale(f.scale)
		if !ok {
			return landscape.PlayerSpec{}, fmt.Errorf("%w: scale %q (want small or big)", landscape.ErrInvalidPlayer, f.scale)
		}
		scale = s
	}
	if f.stance != "" {
		s, ok := model.ParseStance(f.stance)
		if !ok {
			return landscape.PlayerSpec{}, fmt.Errorf("%w: stance %q (want opposition or coalition)", landscape.ErrInvalidPlayer, f.stance)
		}
		stance = s
	}

	social, err := labelOrRandom(ideology.Social, f.social, rng)
	if err != nil {
		return landscape.PlayerSpec{}, err
	}
	economic, err := labelOrRandom(ideology.Economic, f.economic, rng)
	if err != nil {
		return landscape.PlayerSpec{}, err
	}

	name := strings.TrimSpace(f.name)
	if name == "" {
		name = defaultPartyName
	}
	spec := landscape.PlayerSpec{
		Name:     name,
		Scale:    scale,
		Stance:   stance,
		Social:   social,
		Economic: economic,
	}
	if err := spec.Validate(); err != nil {
		return landscape.PlayerSpec{}, err
	}
	return spec, nil
}

func labelOrRandom(axis ideology.Axis, s string, rng *rand.Rand) (ideology.Label, error) {
	if s == "" {
		return ideology.RandomLabel(rng, axis), nil
	}
	return ideology.ParseLabel(axis, s)
}
