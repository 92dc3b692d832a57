// Package tui provides the interactive Bubble Tea dashboard for parlsim.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/parlsim/internal/assembly"
	"github.com/theirongolddev/parlsim/internal/budget"
	"github.com/theirongolddev/parlsim/internal/config"
	"github.com/theirongolddev/parlsim/internal/engine"
	"github.com/theirongolddev/parlsim/internal/ideology"
	"github.com/theirongolddev/parlsim/internal/landscape"
	"github.com/theirongolddev/parlsim/internal/tui/components"
	"github.com/theirongolddev/parlsim/internal/tui/theme"
)

const (
	tabParliament = iota
	tabCoalition
	tabBudget
	tabCompass
	tabCabinet
	tabVote
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 160
	minContentHeight = 5
)

// Options configures a new App.
type Options struct {
	Config config.Config
	Seed   int64
	Rand   *rand.Rand
	Logger *slog.Logger
	// Player skips the new-game form when set.
	Player *landscape.PlayerSpec
}

// App is the root Bubble Tea model.
type App struct {
	session *engine.Session

	// New-game form, nil once the landscape exists.
	form *huh.Form
	vals *newGameValues

	width     int
	height    int
	activeTab int
	showHelp  bool

	budgetCursor int
	autoDeltas   []budget.Delta
	lastVote     *assembly.Result

	message string
	msgErr  bool
}

// NewApp creates the dashboard. Without a preset player it starts on the
// new-game form.
func NewApp(opts Options) (App, error) {
	gen, err := opts.Config.Generator.Options()
	if err != nil {
		return App{}, fmt.Errorf("loading generator config: %w", err)
	}

	a := App{
		session: engine.New(engine.Config{
			Rand:      opts.Rand,
			Seed:      opts.Seed,
			Generator: gen,
			Logger:    opts.Logger,
		}),
	}

	if opts.Player != nil {
		if _, err := a.session.GenerateLandscape(*opts.Player); err != nil {
			return App{}, fmt.Errorf("generating landscape: %w", err)
		}
		a.setMessage(fmt.Sprintf("Welcome to parliament, %s", opts.Player.Name))
		return a, nil
	}

	scale, stance := opts.Config.General.Defaults()
	a.vals = defaultNewGameValues(scale, stance)
	a.form = newGameForm(a.vals)
	return a, nil
}

// Session exposes the game for journaling after the program exits.
func (a App) Session() *engine.Session { return a.session }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.form != nil {
		return a.form.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, 72)).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		return a.updateKeys(msg)
	}

	// Cursor blinks and other form traffic.
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		spec := a.vals.spec()
		if _, err := a.session.GenerateLandscape(spec); err != nil {
			a.setError(err)
			a.vals = defaultNewGameValues(spec.Scale, spec.Stance)
			a.form = newGameForm(a.vals)
			return a, a.form.Init()
		}
		a.form = nil
		a.vals = nil
		a.setMessage(fmt.Sprintf("Welcome to parliament, %s", spec.Name))
		return a, nil
	case huh.StateAborted:
		return a, tea.Quit
	}
	return a, cmd
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabBudget {
			a.moveCursor(-1)
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabBudget {
			a.moveCursor(1)
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "n":
		a.advanceDay()
		return a, nil
	}

	switch a.activeTab {
	case tabBudget:
		if a.updateBudgetKeys(key) {
			return a, nil
		}
	case tabVote:
		if a.updateVoteKeys(key) {
			return a, nil
		}
	}

	if len(key) == 1 {
		if tab := components.TabIdxByKey(rune(key[0])); tab >= 0 {
			a.activeTab = tab
		}
	}
	return a, nil
}

func (a *App) advanceDay() {
	event, deltas, err := a.session.AdvanceDay()
	if errors.Is(err, engine.ErrBudgetOpen) {
		a.activeTab = tabBudget
		a.setErrorText("The budget meeting is still in session: finalize it with f")
		return
	}
	if err != nil {
		a.setError(err)
		return
	}

	switch event {
	case engine.BudgetMeeting:
		a.activeTab = tabBudget
		a.setMessage(fmt.Sprintf("Day %d: the coalition convenes the budget meeting", a.session.Day()))
	case engine.BudgetAllocated:
		a.autoDeltas = deltas
		a.setMessage(fmt.Sprintf("Day %d: the coalition passed its budget, tax rate %.1f%%",
			a.session.Day(), a.session.CurrentTaxRate()))
	default:
		a.setMessage(fmt.Sprintf("Day %d begins", a.session.Day()))
	}
}

func (a *App) updateBudgetKeys(key string) bool {
	switch key {
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "+", "=":
		a.adjust(budget.Up)
	case "-", "_":
		a.adjust(budget.Down)
	case "r":
		if !a.session.MeetingOpen() {
			a.setErrorText("There is no open budget to reset")
			return true
		}
		a.session.ResetBudget()
		a.setMessage("Budget reset to base allocations")
	case "f":
		a.finalize()
	default:
		return false
	}
	return true
}

func (a *App) moveCursor(delta int) {
	n := len(a.session.Ledger())
	a.budgetCursor = max(0, min(n-1, a.budgetCursor+delta))
}

func (a *App) adjust(dir budget.Direction) {
	if !a.session.MeetingOpen() {
		switch {
		case a.session.BudgetDone():
			a.setErrorText("The budget is closed for this year")
		case !a.session.PlayerInCoalition():
			a.setErrorText("Only coalition parties negotiate the budget")
		default:
			a.setErrorText(fmt.Sprintf("The budget meeting opens on day %d", engine.BudgetDay))
		}
		return
	}

	subject := a.session.Ledger()[a.budgetCursor]
	err := a.session.AdjustBudget(a.budgetCursor, dir)
	switch {
	case errors.Is(err, budget.ErrLimitReached):
		a.setErrorText(fmt.Sprintf("%s cannot move further %s", subject.Name, dir))
	case errors.Is(err, budget.ErrNoOffsetAvailable):
		a.setErrorText(fmt.Sprintf("No subject can offset a change to %s", subject.Name))
	case err != nil:
		a.setError(err)
	default:
		a.setMessage(fmt.Sprintf("%s now %d%%, tax rate %.1f%%",
			subject.Name, a.session.Ledger()[a.budgetCursor].Allocation, a.session.CurrentTaxRate()))
	}
}

func (a *App) finalize() {
	if !a.session.MeetingOpen() {
		a.setErrorText("There is no open budget to finalize")
		return
	}
	deficit, err := a.session.FinalizeBudget()
	switch {
	case errors.Is(err, budget.ErrUnbalancedBudget):
		a.setErrorText(fmt.Sprintf("The budget must total exactly %d%% (now %d%%)",
			budget.BaselineTotal, a.session.BudgetTotal()))
	case err != nil:
		a.setError(err)
	case deficit > 0:
		a.setMessage(fmt.Sprintf("Budget passed with a %d%% deficit", deficit))
	default:
		a.setMessage("Balanced budget passed")
	}
}

func (a *App) updateVoteKeys(key string) bool {
	var choice ideology.Quadrant
	switch key {
	case "1", "2", "3", "4":
		choice = ideology.Quadrants[key[0]-'1']
	case "0", "enter":
	default:
		return false
	}

	r, err := a.session.HoldVote(choice)
	if err != nil {
		a.setError(err)
		return true
	}
	a.lastVote = &r
	a.setMessage(fmt.Sprintf("The chamber chose %s", r.Winner.Title()))
	return true
}

func (a *App) setMessage(s string) {
	a.message = s
	a.msgErr = false
}

func (a *App) setErrorText(s string) {
	a.message = s
	a.msgErr = true
}

func (a *App) setError(err error) {
	a.setErrorText(err.Error())
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(5, a.height)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  parlsim needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ parlsim: a new party enters parliament"))
	b.WriteString("\n\n")
	if a.msgErr && a.message != "" {
		b.WriteString(errStyle.Render(a.message))
		b.WriteString("\n\n")
	}
	b.WriteString(a.form.View())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"p c b o i v", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"n", "Next day"},
		}},
		{"Budget meeting", []struct{ key, desc string }{
			{"j k", "Select subject"},
			{"+ -", "Raise / Lower by 5 points"},
			{"r", "Reset to base"},
			{"f", "Finalize"},
		}},
		{"Vote", []struct{ key, desc string }{
			{"1-4", "Vote for an option"},
			{"0 Enter", "Vote with your bloc"},
		}},
		{"", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		if s.title != "" {
			b.WriteString(sectionStyle.Render(s.title))
			b.WriteString("\n")
		}
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, components.Status{
		Day:            a.session.Day(),
		TaxRate:        a.session.CurrentTaxRate(),
		CoalitionShare: a.session.Coalition().TotalShare,
		Governing:      a.session.PlayerInCoalition(),
		Message:        a.message,
		Error:          a.msgErr,
	})

	contentH := max(minContentHeight, h-lipgloss.Height(header)-lipgloss.Height(statusBar))

	var content string
	switch a.activeTab {
	case tabParliament:
		content = a.renderParliamentTab(cw)
	case tabCoalition:
		content = a.renderCoalitionTab(cw)
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabCompass:
		content = a.renderCompassTab(cw)
	case tabCabinet:
		content = a.renderCabinetTab(cw)
	case tabVote:
		content = a.renderVoteTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads every line to width w so gaps between cards
// keep the background colour.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// tabAtX returns the tab under column x, or -1. Hitboxes follow the width
// rules of RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}
