package game

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/carloslator/EnglishVerbs/internal/router"
	"github.com/carloslator/EnglishVerbs/internal/screen"
	"github.com/carloslator/EnglishVerbs/internal/screens/result"
	"github.com/carloslator/EnglishVerbs/internal/session"
	"github.com/carloslator/EnglishVerbs/internal/ui/layout"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// GameScreen runs one quiz session: it prepares the questions off the
// UI goroutine, then drives the controller from key presses.
type GameScreen struct {
	env      *screen.Env
	category vocab.Category
	keys     Keys

	loading     bool
	frame       int
	cursor      int
	confirmQuit bool
}

var (
	_ screen.Screen          = (*GameScreen)(nil)
	_ screen.KeyHintProvider = (*GameScreen)(nil)
	_ screen.EscHandler      = (*GameScreen)(nil)
)

// New creates a game screen for category.
func New(env *screen.Env, category vocab.Category) *GameScreen {
	return &GameScreen{
		env:      env,
		category: category,
		keys:     DefaultKeys(),
		loading:  true,
	}
}

func (g *GameScreen) Init() tea.Cmd {
	return tea.Batch(g.prepare(), spinnerTick())
}

func (g *GameScreen) Title() string {
	return g.category.DisplayName()
}

// HandlesEsc keeps the app from popping the screen mid-session.
func (g *GameScreen) HandlesEsc() bool {
	return true
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	switch {
	case g.loading:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	case g.confirmQuit:
		return hints(g.keys.Confirm, g.keys.Cancel)
	}

	v := g.view()
	if v.Question == nil {
		return nil
	}
	if v.Checked {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	out := hints(g.keys.Up, g.keys.Pick, g.keys.Check)
	if _, ok := v.Question.Prompt(); ok {
		out = append(out, hints(g.keys.Speak)...)
	}
	return append(out, hints(g.keys.Quit)...)
}

func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case preparedMsg:
		return g.handlePrepared(msg)

	case spinnerTickMsg:
		if !g.loading {
			return g, nil
		}
		g.frame++
		return g, spinnerTick()

	case tea.KeyPressMsg:
		return g.handleKey(msg)
	}
	return g, nil
}

// prepare builds the session in the background.
func (g *GameScreen) prepare() tea.Cmd {
	ctrl, category := g.env.Controller, g.category
	return func() tea.Msg {
		return preparedMsg{Prepared: ctrl.Prepare(context.Background(), category)}
	}
}

func (g *GameScreen) handlePrepared(msg preparedMsg) (screen.Screen, tea.Cmd) {
	user, ok := g.env.Controller.Begin(msg.Prepared, *g.env.User)
	if !ok {
		// Superseded by a newer Prepare or cancelled.
		return g, nil
	}
	*g.env.User = user
	g.loading = false
	g.cursor = 0
	g.journalStart(msg.Prepared)

	if g.env.Controller.Phase() == session.PhaseFinished {
		return g.finish()
	}
	return g, nil
}

func (g *GameScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	ctrl := g.env.Controller

	if g.loading {
		if key.Matches(msg, g.keys.Quit) {
			ctrl.Abandon()
			return g, popScreen
		}
		return g, nil
	}

	if g.confirmQuit {
		switch {
		case key.Matches(msg, g.keys.Confirm):
			g.confirmQuit = false
			if sum, ok := ctrl.Abandon(); ok {
				g.journalEnd(sum)
			}
			return g, popScreen
		case key.Matches(msg, g.keys.Cancel):
			g.confirmQuit = false
		}
		return g, nil
	}

	if ctrl.Phase() != session.PhaseActive {
		return g, nil
	}
	v := g.view()
	q := v.Question

	switch {
	case key.Matches(msg, g.keys.Quit):
		g.confirmQuit = true

	case key.Matches(msg, g.keys.Up):
		if !v.Checked && g.cursor > 0 {
			g.cursor--
		}

	case key.Matches(msg, g.keys.Down):
		if !v.Checked && g.cursor < len(q.Options)-1 {
			g.cursor++
		}

	case key.Matches(msg, g.keys.Pick):
		g.choose(int(msg.String()[0] - '1'))

	case key.Matches(msg, g.keys.Choose):
		g.choose(g.cursor)

	case key.Matches(msg, g.keys.Check):
		if v.Checked {
			return g.advance()
		}
		if v.Selected == "" {
			g.choose(g.cursor)
		}
		user, _ := ctrl.CheckAnswer(*g.env.User)
		*g.env.User = user

	case key.Matches(msg, g.keys.Speak):
		if text, ok := q.Prompt(); ok {
			g.speak(text)
		}
	}
	return g, nil
}

// choose selects option i of the current question.
func (g *GameScreen) choose(i int) {
	q := g.view().Question
	if q == nil || i < 0 || i >= len(q.Options) {
		return
	}
	if !g.env.Controller.SelectOption(q.Options[i]) {
		return
	}
	g.cursor = i
	if q.SpeaksOnSelect() {
		g.speak(q.Options[i])
	}
}

func (g *GameScreen) advance() (screen.Screen, tea.Cmd) {
	*g.env.User = g.env.Controller.Advance(*g.env.User)
	g.cursor = 0
	if g.env.Controller.Phase() == session.PhaseFinished {
		return g.finish()
	}
	return g, nil
}

// finish journals the outcome and swaps in the result screen.
func (g *GameScreen) finish() (screen.Screen, tea.Cmd) {
	sum := g.env.Controller.Summary()
	g.journalEnd(sum)
	next := result.New(g.env, sum)
	return g, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (g *GameScreen) speak(text string) {
	if g.env.Speaker != nil {
		g.env.Speaker.Speak(text, vocab.FieldEnglish.Lang())
	}
}

func (g *GameScreen) view() session.View {
	return g.env.Controller.View(*g.env.User)
}

func popScreen() tea.Msg {
	return router.PopScreenMsg{}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
