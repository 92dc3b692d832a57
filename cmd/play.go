package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/parlsim/internal/budget"
	"github.com/theirongolddev/parlsim/internal/cli"
	"github.com/theirongolddev/parlsim/internal/config"
	"github.com/theirongolddev/parlsim/internal/engine"
	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/landscape"
	"github.com/theirongolddev/parlsim/internal/model"
)

var playFlags playerFlags

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive game in the terminal",
	RunE:  runPlay,
}

func init() {
	playFlags.register(playCmd)
	playFlags.register(rootCmd)
	rootCmd.AddCommand(playCmd)
}

// errQuit ends the game loop at the player's request or at end of input.
var errQuit = errors.New("quit")

var errColor = color.New(color.FgRed)

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	s, rng, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}

	g := &game{
		in:  bufio.NewScanner(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
		s:   s,
	}

	spec, err := g.found(playFlags, cfg, rng)
	if errors.Is(err, errQuit) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := s.GenerateLandscape(spec); err != nil {
		return err
	}

	err = g.run()
	recordGame(cfg, s)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// game is the line-based console front end over one session.
type game struct {
	in  *bufio.Scanner
	out io.Writer
	s   *engine.Session
}

func (g *game) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

func (g *game) fail(err error) {
	_, _ = errColor.Fprintf(g.out, "  %v\n", err)
}

// prompt reads one trimmed line. End of input counts as quitting.
func (g *game) prompt(label string) (string, error) {
	g.printf("  %s > ", label)
	if !g.in.Scan() {
		g.printf("\n")
		if err := g.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", errQuit
	}
	return strings.TrimSpace(g.in.Text()), nil
}

// ask prompts until accept returns nil.
func (g *game) ask(label string, accept func(string) error) error {
	for {
		line, err := g.prompt(label)
		if err != nil {
			return err
		}
		if err := accept(line); err != nil {
			g.fail(err)
			continue
		}
		return nil
	}
}

// found asks for every founding answer not given as a flag.
func (g *game) found(f playerFlags, cfg config.Config, rng *rand.Rand) (landscape.PlayerSpec, error) {
	g.printf("\n%s\n\n", cli.RenderTitle("PARLSIM  found your party"))

	if f.name == "" {
		err := g.ask("Party name", func(s string) error {
			if err := validateName(s); err != nil {
				return err
			}
			f.name = s
			return nil
		})
		if err != nil {
			return landscape.PlayerSpec{}, err
		}
	}
	if f.scale == "" {
		err := g.ask("Party size (small/big)", func(s string) error {
			if _, ok := model.ParseScale(s); !ok {
				return fmt.Errorf("%q is not small or big", s)
			}
			f.scale = s
			return nil
		})
		if err != nil {
			return landscape.PlayerSpec{}, err
		}
	}
	if f.stance == "" {
		_, def := cfg.General.Defaults()
		err := g.ask(fmt.Sprintf("Stance (opposition/coalition, enter for %s)", def), func(s string) error {
			if s == "" {
				f.stance = string(def)
				return nil
			}
			if _, ok := model.ParseStance(s); !ok {
				return fmt.Errorf("%q is not opposition or coalition", s)
			}
			f.stance = s
			return nil
		})
		if err != nil {
			return landscape.PlayerSpec{}, err
		}
	}
	for _, field := range []struct {
		axis  ideology.Axis
		value *string
	}{
		{ideology.Social, &f.social},
		{ideology.Economic, &f.economic},
	} {
		if *field.value != "" {
			continue
		}
		low, high := ideology.Labels(field.axis)
		label := fmt.Sprintf("%s ideology (%s/%s)", strings.ToUpper(field.axis.String()[:1])+field.axis.String()[1:], low, high)
		err := g.ask(label, func(s string) error {
			if _, err := ideology.ParseLabel(field.axis, s); err != nil {
				return err
			}
			*field.value = s
			return nil
		})
		if err != nil {
			return landscape.PlayerSpec{}, err
		}
	}
	return f.spec(cfg, rng)
}

func validateName(s string) error {
	p := landscape.PlayerSpec{Name: s, Scale: model.ScaleSmall, Social: ideology.Progressive, Economic: ideology.Left}
	return p.Validate()
}

const playHelp = `  n  next day             p  parties
  c  coalition            b  budget
  m  political compass    g  government
  v  vote [option]        q  quit
`

const budgetHelp = `  <subject> +|-   raise or lower a subject by 5 points (name or number)
  show            show the budget
  reset           restore the base allocations
  done            finalize the budget
`

func (g *game) run() error {
	s := g.s
	player, _ := s.PlayerParty()

	g.printf("\n")
	printParties(g.out, s)
	printCoalition(g.out, s)
	if player.InCoalition {
		g.printf("  %s governs. The budget meeting is on day %d.\n\n", player.Name, engine.BudgetDay)
	} else {
		g.printf("  %s sits in opposition.\n\n", player.Name)
	}
	g.printf("%s\n", playHelp)

	for {
		if s.MeetingOpen() {
			if err := g.negotiate(); err != nil {
				return err
			}
			continue
		}

		line, err := g.prompt(fmt.Sprintf("Day %d", s.Day()))
		if err != nil {
			return err
		}
		cmd, arg, _ := strings.Cut(line, " ")
		switch strings.ToLower(cmd) {
		case "":
		case "n", "next":
			g.nextDay()
		case "p", "parties":
			printParties(g.out, s)
		case "c", "coalition":
			printCoalition(g.out, s)
		case "b", "budget":
			printBudget(g.out, s)
		case "m", "map", "compass":
			printCompass(g.out, s)
		case "g", "government", "cabinet":
			c, err := s.Cabinet()
			if err != nil {
				g.fail(err)
				continue
			}
			printCabinet(g.out, c)
		case "v", "vote":
			g.vote(arg)
		case "q", "quit", "exit":
			g.finish()
			return errQuit
		case "h", "help", "?":
			g.printf("%s\n", playHelp)
		default:
			g.fail(fmt.Errorf("unknown command %q (h for help)", cmd))
		}
	}
}

func (g *game) nextDay() {
	event, deltas, err := g.s.AdvanceDay()
	if err != nil {
		g.fail(err)
		return
	}
	switch event {
	case engine.BudgetMeeting:
		g.printf("\n  Day %d: the coalition convenes the budget meeting.\n\n", g.s.Day())
	case engine.BudgetAllocated:
		g.printf("\n  Day %d: the coalition negotiated the budget without you.\n\n", g.s.Day())
		printDeltas(g.out, deltas)
		printBudget(g.out, g.s)
	default:
		g.printf("  Day %d begins.\n", g.s.Day())
	}
}

func (g *game) negotiate() error {
	s := g.s
	printBudget(g.out, s)
	g.printf("%s\n", budgetHelp)

	for {
		line, err := g.prompt("Budget")
		if err != nil {
			return err
		}
		switch strings.ToLower(line) {
		case "":
			continue
		case "done", "finalize", "f":
			deficit, err := s.FinalizeBudget()
			if errors.Is(err, budget.ErrUnbalancedBudget) {
				g.fail(fmt.Errorf("the %s rule needs a total of exactly %d%% (now %d%%)",
					s.Rule(), budget.BaselineTotal, s.BudgetTotal()))
				continue
			}
			if err != nil {
				return err
			}
			if deficit > 0 {
				g.printf("  Budget passed with a %d%% deficit. Tax rate %s.\n\n", deficit, cli.FormatRate(s.CurrentTaxRate()))
			} else {
				g.printf("  Balanced budget passed. Tax rate %s.\n\n", cli.FormatRate(s.CurrentTaxRate()))
			}
			return nil
		case "reset", "r":
			s.ResetBudget()
			printBudget(g.out, s)
		case "show", "s":
			printBudget(g.out, s)
		case "help", "h", "?":
			g.printf("%s\n", budgetHelp)
		case "quit", "q":
			g.finish()
			return errQuit
		default:
			idx, dir, err := parseAdjustment(s, line)
			if err != nil {
				g.fail(err)
				continue
			}
			if err := s.AdjustBudget(idx, dir); err != nil {
				g.fail(describeAdjustError(s, idx, dir, err))
				continue
			}
			subj := s.Ledger()[idx]
			g.printf("  %s %s  total %s  tax %s\n", subj.Name, cli.FormatShare(subj.Allocation),
				cli.FormatShare(s.BudgetTotal()), cli.FormatRate(s.CurrentTaxRate()))
		}
	}
}

func (g *game) vote(arg string) {
	var choice ideology.Quadrant
	if arg = strings.TrimSpace(arg); arg != "" {
		q, err := ideology.ParseQuadrant(arg)
		if err != nil {
			g.fail(err)
			return
		}
		choice = q
	}
	r, err := g.s.HoldVote(choice)
	if err != nil {
		g.fail(err)
		return
	}
	printVote(g.out, r)
}

func (g *game) finish() {
	s := g.s
	r := s.CoalitionSecurity()
	g.printf("\n%s\n", cli.RenderTitle("SESSION ADJOURNED"))
	g.printf("  Days in office:     %d\n", s.Day())
	g.printf("  Coalition security: %s (%s)\n", cli.FormatScore(r.Score), r.Tier)
	switch {
	case !s.BudgetDone():
		g.printf("  Budget:             not settled\n")
	case s.Deficit() > 0:
		g.printf("  Budget:             %d%% deficit\n", s.Deficit())
	default:
		g.printf("  Budget:             balanced\n")
	}
	g.printf("  Tax rate:           %s\n\n", cli.FormatRate(s.CurrentTaxRate()))
}

// parseAdjustment reads "<subject>+", "<subject> -" or "<subject> up".
// The subject is a catalog number or a (possibly misspelt) name.
func parseAdjustment(s *engine.Session, text string) (int, budget.Direction, error) {
	text = strings.TrimSpace(text)
	var subject, dir string
	if n := len(text); n > 1 && (text[n-1] == '+' || text[n-1] == '-') {
		subject, dir = strings.TrimSpace(text[:n-1]), text[n-1:]
	} else if i := strings.LastIndexByte(text, ' '); i > 0 {
		subject, dir = strings.TrimSpace(text[:i]), text[i+1:]
	} else {
		return 0, 0, fmt.Errorf("%q: want <subject> + or <subject> -", text)
	}

	d, err := budget.ParseDirection(dir)
	if err != nil {
		return 0, 0, err
	}
	if n, err := strconv.Atoi(subject); err == nil {
		if n < 1 || n > len(s.Ledger()) {
			return 0, 0, fmt.Errorf("%w: subject %d", budget.ErrInvalidIndex, n)
		}
		return n - 1, d, nil
	}
	idx, err := s.FindSubject(subject)
	if err != nil {
		return 0, 0, err
	}
	return idx, d, nil
}

func describeAdjustError(s *engine.Session, idx int, dir budget.Direction, err error) error {
	name := s.Ledger()[idx].Name
	switch {
	case errors.Is(err, budget.ErrLimitReached):
		return fmt.Errorf("%s cannot %s any further", name, dir)
	case errors.Is(err, budget.ErrNoOffsetAvailable):
		return fmt.Errorf("no subject can offset a %s to %s under the balanced rule", dir, name)
	default:
		return err
	}
}
