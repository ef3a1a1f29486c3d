package result

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/carloslator/EnglishVerbs/internal/router"
	"github.com/carloslator/EnglishVerbs/internal/screen"
	"github.com/carloslator/EnglishVerbs/internal/session"
	"github.com/carloslator/EnglishVerbs/internal/ui/components"
	"github.com/carloslator/EnglishVerbs/internal/ui/layout"
	"github.com/carloslator/EnglishVerbs/internal/ui/theme"
)

// ResultScreen shows how a session went and offers another round.
type ResultScreen struct {
	env     *screen.Env
	summary session.Summary
	menu    components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a result screen for sum.
func New(env *screen.Env, sum session.Summary) *ResultScreen {
	r := &ResultScreen{env: env, summary: sum}

	again := components.MenuItem{Label: "PLAY AGAIN", Action: func() tea.Cmd {
		return r.leave(screen.PlayMsg{Category: sum.Category})
	}}
	home := components.MenuItem{Label: "DASHBOARD", Action: func() tea.Cmd {
		return r.leave(nil)
	}}
	r.menu = components.NewMenu([]components.MenuItem{again, home})
	return r
}

// leave releases the finished session and returns to the dashboard,
// optionally handing it msg.
func (r *ResultScreen) leave(msg tea.Msg) tea.Cmd {
	r.env.Controller.Abandon()
	return func() tea.Msg { return router.PopToRootMsg{Msg: msg} }
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Results"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Dashboard"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	sum := r.summary
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderHeadline(sum, cw))
	if sum.Outcome != session.OutcomeEmpty {
		sections = append(sections, r.renderStats(cw))
	}
	if done := r.completedVerbs(); done != "" {
		sections = append(sections, done)
	}
	sections = append(sections, components.ArcadeMenu(r.menu.Labels(), r.menu.Selected, cw, layout.IsCompactHeight(height+8)))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func renderHeadline(sum session.Summary, cw int) string {
	title, sub := "SESSION COMPLETE!", fmt.Sprintf("+%d XP", sum.XPAwarded)
	color := theme.ArcadeYellow

	switch sum.Outcome {
	case session.OutcomeDepleted:
		title, sub, color = "OUT OF HEARTS", "No XP this time. Try again!", theme.Error
	case session.OutcomeAbandoned:
		title, sub, color = "SESSION ENDED", "No XP this time.", theme.TextDim
	case session.OutcomeEmpty:
		title, sub, color = "NOTHING TO PRACTICE", "This category has no verbs yet.", theme.TextDim
	}

	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(title) + "\n" +
			theme.XP.Render(sub))
}

func (r *ResultScreen) renderStats(cw int) string {
	sum := r.summary
	maxHearts := r.env.Controller.Config().MaxHearts

	lines := []string{
		fmt.Sprintf("Correct   %d / %d", sum.Correct, sum.Questions),
		fmt.Sprintf("Accuracy  %.0f%%", sum.Accuracy()*100),
		"Hearts    " + layout.Hearts(sum.HeartsLeft, maxHearts),
		"Time      " + formatDuration(sum.Duration),
	}
	if sum.AIQuestions > 0 {
		lines = append(lines, fmt.Sprintf("AI bonus  %d", sum.AIQuestions))
	}

	body := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(lines, "\n"))
	return components.ArcadeCard(body, cw)
}

// completedVerbs lists verbs mastered for the first time.
func (r *ResultScreen) completedVerbs() string {
	if len(r.summary.NewlyCompleted) == 0 {
		return ""
	}
	var names []string
	for _, id := range r.summary.NewlyCompleted {
		if v, err := r.env.Controller.Catalog().Get(id); err == nil {
			names = append(names, v.English)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.Success).Render("★ Completed: " + strings.Join(names, ", "))
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
