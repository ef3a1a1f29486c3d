package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/carloslator/EnglishVerbs/internal/router"
	"github.com/carloslator/EnglishVerbs/internal/screen"
	"github.com/carloslator/EnglishVerbs/internal/screens/dashboard"
	"github.com/carloslator/EnglishVerbs/internal/session"
	"github.com/carloslator/EnglishVerbs/internal/ui/layout"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// Options configures Run.
type Options struct {
	Env screen.Env

	// Category, when set, starts a session in it right away.
	Category vocab.Category
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	env    *screen.Env
	start  vocab.Category
	width  int
	height int
}

// NewAppModel creates the model with the dashboard at the root. A zero
// User is replaced by a fresh learner.
func NewAppModel(opts Options) AppModel {
	env := opts.Env
	if env.User == nil {
		u := session.NewUserState(env.Controller.Config())
		env.User = &u
	}
	return AppModel{
		router: router.New(dashboard.New(&env)),
		env:    &env,
		start:  opts.Category,
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.start == "" {
		return nil
	}
	c := m.start
	return func() tea.Msg { return screen.PlayMsg{Category: c} }
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	active := m.router.Active()
	if active != nil {
		title = active.Title()
	}

	u := m.env.User
	header := layout.RenderHeader(title, layout.HeaderStats{
		XP:        u.XP,
		Level:     u.Level,
		Hearts:    u.Hearts,
		MaxHearts: m.env.Controller.Config().MaxHearts,
		Streak:    u.Streak,
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the program and blocks until the learner quits. It returns
// the learner's final state.
func Run(opts Options) (session.UserState, error) {
	m := NewAppModel(opts)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return *m.env.User, err
	}
	return *m.env.User, nil
}
