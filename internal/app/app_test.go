package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/carloslator/EnglishVerbs/internal/quiz"
	"github.com/carloslator/EnglishVerbs/internal/router"
	"github.com/carloslator/EnglishVerbs/internal/screen"
	"github.com/carloslator/EnglishVerbs/internal/screens/game"
	"github.com/carloslator/EnglishVerbs/internal/session"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

func testOptions() Options {
	b := quiz.NewBuilder(quiz.NewSeededSampler(1), quiz.DefaultConfig())
	return Options{Env: screen.Env{
		Controller: session.NewController(vocab.Default(), b, session.DefaultConfig()),
	}}
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func TestNewAppModel_FreshUser(t *testing.T) {
	m := NewAppModel(testOptions())
	if m.env.User == nil {
		t.Fatal("expected a user")
	}
	if m.env.User.Level != 1 || m.env.User.Hearts != 3 {
		t.Errorf("fresh user = %+v", *m.env.User)
	}
	if m.Init() != nil {
		t.Error("expected no start command without a category")
	}
}

func TestAppModel_StartCategory(t *testing.T) {
	opts := testOptions()
	opts.Category = vocab.CategoryShopping
	m := NewAppModel(opts)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected start command")
	}
	play, ok := cmd().(screen.PlayMsg)
	if !ok || play.Category != vocab.CategoryShopping {
		t.Fatalf("expected PlayMsg, got %#v", cmd())
	}

	m, cmd = update(t, m, play)
	if cmd == nil {
		t.Fatal("expected push command")
	}
	m, _ = update(t, m, cmd())
	if _, ok := m.router.Active().(*game.GameScreen); !ok {
		t.Fatalf("active screen = %T", m.router.Active())
	}
}

// escScreen records whether it received Esc.
type escScreen struct {
	handles bool
	gotEsc  bool
}

func (s *escScreen) Init() tea.Cmd { return nil }
func (s *escScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "esc" {
		s.gotEsc = true
	}
	return s, nil
}
func (s *escScreen) View(int, int) string { return "" }
func (s *escScreen) Title() string        { return "esc" }
func (s *escScreen) HandlesEsc() bool     { return s.handles }

func TestAppModel_Esc(t *testing.T) {
	esc := tea.KeyPressMsg{Code: tea.KeyEscape}

	t.Run("root ignores", func(t *testing.T) {
		m := NewAppModel(testOptions())
		if _, cmd := update(t, m, esc); cmd != nil {
			t.Error("expected no command at the root")
		}
	})

	t.Run("pops plain screens", func(t *testing.T) {
		m := NewAppModel(testOptions())
		s := &escScreen{}
		m, _ = update(t, m, router.PushScreenMsg{Screen: s})

		_, cmd := update(t, m, esc)
		if cmd == nil {
			t.Fatal("expected pop command")
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("expected PopScreenMsg, got %T", cmd())
		}
		if s.gotEsc {
			t.Error("screen should not see Esc")
		}
	})

	t.Run("forwards to handlers", func(t *testing.T) {
		m := NewAppModel(testOptions())
		s := &escScreen{handles: true}
		m, _ = update(t, m, router.PushScreenMsg{Screen: s})

		update(t, m, esc)
		if !s.gotEsc {
			t.Error("screen did not receive Esc")
		}
		if m.router.Depth() != 2 {
			t.Errorf("depth = %d, want 2", m.router.Depth())
		}
	})
}

func TestAppModel_View(t *testing.T) {
	m := NewAppModel(testOptions())
	if !m.View().AltScreen {
		t.Error("expected alt screen")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 36})
	if m.width != 100 || m.height != 36 {
		t.Fatalf("size = %dx%d", m.width, m.height)
	}
	m.View()

	footer := m.footerHints(m.router.Active())
	if len(footer) != 3 || footer[0].Key != "↑↓" {
		t.Errorf("root footer = %v", footer)
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := NewAppModel(testOptions())
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}
