package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/parlsim/internal/landscape"
	"github.com/theirongolddev/parlsim/internal/model"
)

// ErrInvalidConfig is returned when a config value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// maxGeneratedParties bounds the configured party count.
const maxGeneratedParties = 20

// Options converts the generator section into landscape options. Blank
// and duplicate names are dropped; an empty pool means the built-in names.
func (g GeneratorConfig) Options() (landscape.Options, error) {
	opts := landscape.DefaultOptions()
	if g.MinParties != 0 || g.MaxParties != 0 {
		opts.MinParties, opts.MaxParties = g.MinParties, g.MaxParties
	}
	if opts.MinParties < 1 || opts.MaxParties < opts.MinParties || opts.MaxParties > maxGeneratedParties {
		return opts, fmt.Errorf("%w: party count %d-%d (want 1 <= min <= max <= %d)",
			ErrInvalidConfig, opts.MinParties, opts.MaxParties, maxGeneratedParties)
	}

	if len(g.PartyNames) > 0 {
		seen := make(map[string]bool, len(g.PartyNames))
		var names []string
		for _, n := range g.PartyNames {
			n = strings.TrimSpace(n)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			names = append(names, n)
		}
		if len(names) < opts.MaxParties {
			return opts, fmt.Errorf("%w: %d party names cannot cover %d parties",
				ErrInvalidConfig, len(names), opts.MaxParties)
		}
		opts.Names = names
	}
	return opts, nil
}

// Defaults returns the configured scale and stance, falling back to small
// opposition for unrecognized values.
func (g GeneralConfig) Defaults() (model.Scale, model.Stance) {
	scale, ok := model.ParseScale(g.DefaultScale)
	if !ok {
		scale = model.ScaleSmall
	}
	stance, ok := model.ParseStance(g.DefaultStance)
	if !ok {
		stance = model.StanceOpposition
	}
	return scale, stance
}
