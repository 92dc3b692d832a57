package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/landscape"
	"github.com/theirongolddev/parlsim/internal/model"
)

// newGameValues is bound to the new-game form fields.
type newGameValues struct {
	name     string
	scale    string
	stance   string
	social   string
	economic string
}

func defaultNewGameValues(scale model.Scale, stance model.Stance) *newGameValues {
	return &newGameValues{
		scale:    string(scale),
		stance:   string(stance),
		social:   string(ideology.Progressive),
		economic: string(ideology.Left),
	}
}

// spec converts the form answers into a player spec. Validation happens in
// landscape.PlayerSpec.Validate.
func (v *newGameValues) spec() landscape.PlayerSpec {
	return landscape.PlayerSpec{
		Name:     v.name,
		Scale:    model.Scale(v.scale),
		Stance:   model.Stance(v.stance),
		Social:   ideology.Label(v.social),
		Economic: ideology.Label(v.economic),
	}
}

func validatePartyName(s string) error {
	p := landscape.PlayerSpec{
		Name:     s,
		Scale:    model.ScaleSmall,
		Social:   ideology.Progressive,
		Economic: ideology.Left,
	}
	return p.Validate()
}

func newGameForm(v *newGameValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Found your party").
				Description("Party name, 2 to 50 characters.").
				Placeholder("Civic Renewal").
				Value(&v.name).
				Validate(validatePartyName),

			huh.NewSelect[string]().
				Title("Party size").
				Options(
					huh.NewOption("Small party (around 5% of the vote)", string(model.ScaleSmall)),
					huh.NewOption("Big party (around 35% of the vote)", string(model.ScaleBig)),
				).
				Value(&v.scale),

			huh.NewSelect[string]().
				Title("Starting stance").
				Options(
					huh.NewOption("Opposition", string(model.StanceOpposition)),
					huh.NewOption("Coalition", string(model.StanceCoalition)),
				).
				Value(&v.stance),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Social ideology").
				Options(
					huh.NewOption("Progressive", string(ideology.Progressive)),
					huh.NewOption("Conservative", string(ideology.Conservative)),
				).
				Value(&v.social),

			huh.NewSelect[string]().
				Title("Economic ideology").
				Options(
					huh.NewOption("Left", string(ideology.Left)),
					huh.NewOption("Right", string(ideology.Right)),
				).
				Value(&v.economic),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(true)
}
