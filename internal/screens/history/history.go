package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/carloslator/EnglishVerbs/internal/router"
	"github.com/carloslator/EnglishVerbs/internal/screen"
	"github.com/carloslator/EnglishVerbs/internal/store"
	"github.com/carloslator/EnglishVerbs/internal/ui/components"
	"github.com/carloslator/EnglishVerbs/internal/ui/layout"
	"github.com/carloslator/EnglishVerbs/internal/ui/theme"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// MaxSessions is how many finished sessions the screen loads.
const MaxSessions = 50

type historyLoadedMsg struct {
	Sessions []store.SessionEvent
	Err      error
}

// HistoryScreen lists finished sessions from the event log, newest first.
type HistoryScreen struct {
	events   store.EventRepo
	sessions []store.SessionEvent
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen reading from events.
func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		events:   events,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		all, err := s.events.QuerySessionEvents(context.Background(), store.QueryOpts{})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		var ended []store.SessionEvent
		for _, e := range all {
			if e.Action == store.ActionEnd {
				ended = append(ended, e)
				if len(ended) == MaxSessions {
					break
				}
			}
		}
		return historyLoadedMsg{Sessions: ended}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter", "space":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var body string
	switch {
	case s.errMsg != "":
		body = center.Foreground(theme.Error).Render("Error: " + s.errMsg)
	case !s.loaded:
		body = center.Foreground(theme.TextDim).Render("Loading history...")
	case len(s.sessions) == 0:
		body = center.Foreground(theme.TextDim).Italic(true).Render("No sessions yet. Pick a category and play!")
	default:
		body = s.renderList(cw, height)
	}
	return components.CabinetFrame(body, width, height)
}

// renderList shows a window of sessions that keeps the cursor visible.
func (s *HistoryScreen) renderList(cw, height int) string {
	rows := max(3, height-6)
	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}

	var b strings.Builder
	for i := start; i < len(s.sessions) && i < start+rows; i++ {
		e := s.sessions[i]

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = style.Foreground(theme.ArcadeYellow).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %-20s  %d/%d  %s",
			prefix,
			e.Timestamp.Local().Format("Jan 02 15:04"),
			vocab.Category(e.Category).DisplayName(),
			e.Correct, e.Questions,
			outcomeLabel(e.Outcome))
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    +%d XP · %s left · %d AI questions · %d:%02d",
				e.XPEarned, plural(e.HeartsLeft, "heart"), e.AIQuestions,
				e.DurationSecs/60, e.DurationSecs%60)
			if e.EnrichFailures > 0 {
				detail += fmt.Sprintf(" · %d AI failures", e.EnrichFailures)
			}
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.TrimRight(b.String(), "\n"))
}

func outcomeLabel(o string) string {
	switch o {
	case store.OutcomeCompleted:
		return "complete"
	case store.OutcomeDepleted:
		return "out of hearts"
	case store.OutcomeAbandoned:
		return "ended early"
	default:
		return o
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
