package game

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/carloslator/EnglishVerbs/internal/quiz"
	"github.com/carloslator/EnglishVerbs/internal/router"
	"github.com/carloslator/EnglishVerbs/internal/screen"
	"github.com/carloslator/EnglishVerbs/internal/screens/result"
	"github.com/carloslator/EnglishVerbs/internal/session"
	"github.com/carloslator/EnglishVerbs/internal/store"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

type spoken struct {
	text, lang string
}

// recordingSpeaker captures utterances synchronously.
type recordingSpeaker struct {
	got []spoken
}

func (r *recordingSpeaker) Speak(text, lang string) {
	r.got = append(r.got, spoken{text, lang})
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testEnv(t *testing.T) (*screen.Env, *recordingSpeaker, store.EventRepo) {
	t.Helper()

	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	b := quiz.NewBuilder(quiz.NewSeededSampler(3), quiz.DefaultConfig())
	ctrl := session.NewController(vocab.Default(), b, session.DefaultConfig())
	user := session.NewUserState(ctrl.Config())
	sp := &recordingSpeaker{}

	env := &screen.Env{
		Controller: ctrl,
		User:       &user,
		Speaker:    sp,
		Events:     st.EventRepo(),
	}
	return env, sp, st.EventRepo()
}

// startedGame returns a game screen with its session begun.
func startedGame(t *testing.T, env *screen.Env) *GameScreen {
	t.Helper()
	g := New(env, vocab.CategoryMovement)
	g.Update(g.prepare()())
	if g.loading {
		t.Fatal("session did not start")
	}
	return g
}

func currentQuestion(t *testing.T, g *GameScreen) *quiz.Question {
	t.Helper()
	q := g.view().Question
	if q == nil {
		t.Fatal("no current question")
	}
	return q
}

// wrongIndex returns the position of some wrong option.
func wrongIndex(q *quiz.Question) int {
	for i, o := range q.Options {
		if o != q.Answer {
			return i
		}
	}
	return -1
}

// answer picks option i, checks it and continues.
func answer(g *GameScreen, i int) tea.Cmd {
	g.Update(keyPress(rune('1' + i)))
	g.Update(specialKey(tea.KeyEnter))
	_, cmd := g.Update(specialKey(tea.KeyEnter))
	return cmd
}

func sessionEvents(t *testing.T, repo store.EventRepo) []store.SessionEvent {
	t.Helper()
	events, err := repo.QuerySessionEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query session events: %v", err)
	}
	return events
}

func TestGameScreen_Title(t *testing.T) {
	env, _, _ := testEnv(t)
	g := New(env, vocab.CategoryDailyLife)
	if g.Title() != "Daily Life" {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestGameScreen_LoadingView(t *testing.T) {
	env, _, _ := testEnv(t)
	env.AIModel = "gemini-flash"
	g := New(env, vocab.CategoryMovement)

	view := g.View(80, 24)
	if !strings.Contains(view, "Preparing your session") {
		t.Errorf("loading view missing text:\n%s", view)
	}
	if !strings.Contains(view, "gemini-flash") {
		t.Error("loading view should name the AI model")
	}
	if g.Init() == nil {
		t.Error("expected Init to prepare the session")
	}
}

func TestGameScreen_StartJournalsEvent(t *testing.T) {
	env, _, repo := testEnv(t)
	g := startedGame(t, env)

	events := sessionEvents(t, repo)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.Action != store.ActionStart || e.Category != "movement" || e.Questions != 10 {
		t.Errorf("unexpected start event: %+v", e.SessionEventData)
	}

	q := currentQuestion(t, g)
	if !strings.Contains(g.View(100, 30), q.Options[0]) {
		t.Error("question view should list the options")
	}
}

func TestGameScreen_PlayThrough(t *testing.T) {
	env, _, repo := testEnv(t)
	g := startedGame(t, env)

	var cmd tea.Cmd
	for env.Controller.Phase() == session.PhaseActive {
		cmd = answer(g, currentQuestion(t, g).AnswerIndex())
	}

	if cmd == nil {
		t.Fatal("expected navigation to the result screen")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*result.ResultScreen); !ok {
		t.Fatalf("expected result screen, got %T", msg.Screen)
	}

	if env.User.XP != 100 || env.User.Hearts != 3 || env.User.Level != 2 {
		t.Errorf("user after session = %+v", *env.User)
	}

	events := sessionEvents(t, repo)
	if len(events) != 2 {
		t.Fatalf("expected start and end events, got %d", len(events))
	}
	end := events[0]
	if end.Action != store.ActionEnd || end.Outcome != store.OutcomeCompleted || end.XPEarned != 100 || end.Correct != 10 {
		t.Errorf("unexpected end event: %+v", end.SessionEventData)
	}
}

func TestGameScreen_HeartsDepleted(t *testing.T) {
	env, _, repo := testEnv(t)
	g := startedGame(t, env)

	for range 3 {
		answer(g, wrongIndex(currentQuestion(t, g)))
	}

	if env.Controller.Phase() != session.PhaseFinished {
		t.Fatalf("phase = %v, want finished", env.Controller.Phase())
	}
	if env.User.XP != 0 || env.User.Hearts != 0 {
		t.Errorf("user after depletion = %+v", *env.User)
	}
	if end := sessionEvents(t, repo)[0]; end.Outcome != store.OutcomeDepleted {
		t.Errorf("outcome = %q", end.Outcome)
	}
}

func TestGameScreen_FeedbackShowsAnswer(t *testing.T) {
	env, _, _ := testEnv(t)
	g := startedGame(t, env)

	q := currentQuestion(t, g)
	g.Update(keyPress(rune('1' + wrongIndex(q))))
	g.Update(specialKey(tea.KeyEnter))

	view := g.View(100, 30)
	if !strings.Contains(view, "Not quite") || !strings.Contains(view, "Correct answer: "+q.Answer) {
		t.Errorf("feedback missing:\n%s", view)
	}
	if env.User.Hearts != 2 {
		t.Errorf("hearts = %d, want 2", env.User.Hearts)
	}
}

func TestGameScreen_EnterWithoutSelectionUsesCursor(t *testing.T) {
	env, _, _ := testEnv(t)
	g := startedGame(t, env)

	g.Update(specialKey(tea.KeyDown))
	if g.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", g.cursor)
	}
	g.Update(specialKey(tea.KeyEnter))

	v := g.view()
	if !v.Checked || v.Selected != v.Question.Options[1] {
		t.Errorf("expected option 2 checked, got %+v", v)
	}
}

func TestGameScreen_Speech(t *testing.T) {
	env, sp, _ := testEnv(t)
	g := startedGame(t, env)

	for env.Controller.Phase() == session.PhaseActive {
		q := currentQuestion(t, g)
		before := len(sp.got)

		g.Update(keyPress('s'))
		if text, ok := q.Prompt(); ok {
			if len(sp.got) != before+1 || sp.got[before].text != text {
				t.Fatalf("%s: expected prompt %q spoken, got %v", q.Type, text, sp.got[before:])
			}
			before++
		}

		answer(g, q.AnswerIndex())
		spokeOption := len(sp.got) > before
		if spokeOption != q.SpeaksOnSelect() {
			t.Fatalf("%s: option spoken = %v", q.Type, spokeOption)
		}
		if spokeOption && (sp.got[before].text != q.Answer || sp.got[before].lang != "en-US") {
			t.Errorf("spoke %+v, want %q in en-US", sp.got[before], q.Answer)
		}
	}
}

func TestGameScreen_QuitConfirm(t *testing.T) {
	env, _, repo := testEnv(t)
	g := startedGame(t, env)
	answer(g, currentQuestion(t, g).AnswerIndex())

	var scr screen.Screen = g
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	if !g.confirmQuit {
		t.Fatal("expected quit confirmation")
	}
	scr.Update(keyPress('n'))
	if g.confirmQuit {
		t.Fatal("expected confirmation dismissed")
	}

	scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}

	if env.Controller.Phase() != session.PhaseIdle {
		t.Errorf("phase = %v, want idle", env.Controller.Phase())
	}
	if env.User.XP != 0 {
		t.Errorf("abandoned session awarded %d XP", env.User.XP)
	}
	end := sessionEvents(t, repo)[0]
	if end.Outcome != store.OutcomeAbandoned || end.Correct != 1 {
		t.Errorf("unexpected end event: %+v", end.SessionEventData)
	}
}

func TestGameScreen_CancelWhileLoading(t *testing.T) {
	env, _, _ := testEnv(t)
	g := New(env, vocab.CategoryMovement)
	late := g.prepare()()

	_, cmd := g.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected pop command")
	}

	// The preparation finishing after cancel must not start a session.
	g.Update(late)
	if env.Controller.Phase() != session.PhaseIdle {
		t.Errorf("stale preparation started a session")
	}
}

func TestGameScreen_IgnoresSupersededPreparation(t *testing.T) {
	env, _, _ := testEnv(t)
	g := New(env, vocab.CategoryMovement)

	stale := g.prepare()()
	fresh := g.prepare()()

	g.Update(stale)
	if !g.loading {
		t.Fatal("stale preparation should be ignored")
	}
	g.Update(fresh)
	if g.loading {
		t.Fatal("fresh preparation should start the session")
	}
}

func TestGameScreen_EmptyCategory(t *testing.T) {
	env, _, _ := testEnv(t)
	b := quiz.NewBuilder(quiz.NewSeededSampler(1), quiz.DefaultConfig())
	env.Controller = session.NewController(vocab.NewCatalog(nil), b, session.DefaultConfig())

	g := New(env, vocab.CategoryShopping)
	_, cmd := g.Update(g.prepare()())
	if cmd == nil {
		t.Fatal("expected result screen for empty category")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
}

func TestGameScreen_KeyHints(t *testing.T) {
	env, _, _ := testEnv(t)
	g := New(env, vocab.CategoryMovement)
	if len(g.KeyHints()) != 1 {
		t.Errorf("loading hints = %v", g.KeyHints())
	}

	g.Update(g.prepare()())
	if len(g.KeyHints()) == 0 {
		t.Error("expected hints while answering")
	}
	if !g.HandlesEsc() {
		t.Error("game screen should handle Esc")
	}
}
