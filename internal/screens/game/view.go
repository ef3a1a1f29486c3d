package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/carloslator/EnglishVerbs/internal/quiz"
	"github.com/carloslator/EnglishVerbs/internal/session"
	"github.com/carloslator/EnglishVerbs/internal/ui/components"
	"github.com/carloslator/EnglishVerbs/internal/ui/layout"
	"github.com/carloslator/EnglishVerbs/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (g *GameScreen) View(width, height int) string {
	switch {
	case g.loading:
		return g.renderLoading(width)
	case g.confirmQuit:
		return renderQuitConfirm(width)
	}

	v := g.view()
	if v.Question == nil {
		return ""
	}
	return g.renderQuestion(v, width)
}

func (g *GameScreen) renderLoading(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	frame := spinnerFrames[g.frame%len(spinnerFrames)]
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Render(
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(frame) + "  Preparing your session..."))
	if g.env.AIModel != "" {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(
			fmt.Sprintf("Asking %s for bonus questions", g.env.AIModel)))
	}
	return b.String()
}

func (g *GameScreen) renderQuestion(v session.View, width int) string {
	q := v.Question
	cw := components.ContentWidth(width)
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }

	var b strings.Builder

	// Status line: XP earned so far and hearts.
	left := theme.XP.Render(fmt.Sprintf("+%d XP", v.SessionXP))
	right := layout.Hearts(v.User.Hearts, g.env.Controller.Config().MaxHearts)
	pad := max(1, cw-lipgloss.Width(left)-lipgloss.Width(right))
	b.WriteString(center(left + strings.Repeat(" ", pad) + right))
	b.WriteString("\n")

	bar := components.ProgressBar{
		Percent: v.Progress(),
		Counter: fmt.Sprintf("%d/%d", v.Index+1, v.Total),
		Width:   cw,
	}
	b.WriteString(center(bar.View()))
	b.WriteString("\n\n")

	badge := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	if q.IsAI() {
		badge = badge.Foreground(theme.AIBadge)
	}
	b.WriteString(center(badge.Render(typeLabel(q.Type))))
	b.WriteString("\n")

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Text)
	if _, ok := q.Prompt(); ok {
		prompt += "\n" + theme.Hint.Render("press S to listen")
	}
	b.WriteString(center(components.ArcadeCard(prompt, cw)))
	b.WriteString("\n\n")

	opts := components.OptionList{
		Options:  q.Options,
		Cursor:   g.cursor,
		Selected: v.Selected,
		Checked:  v.Checked,
		Answer:   q.Answer,
	}
	b.WriteString(center(opts.View()))

	if v.Checked {
		b.WriteString("\n")
		b.WriteString(center(renderFeedback(v, cw)))
	}
	return b.String()
}

// renderFeedback shows the verdict, the right answer after a miss and
// the explanation of AI questions.
func renderFeedback(v session.View, cw int) string {
	q := v.Question

	var lines []string
	border := theme.Success
	if v.IsCorrect {
		lines = append(lines, theme.Correct.Render("Correct!"))
	} else {
		border = theme.Error
		lines = append(lines,
			theme.Incorrect.Render("Not quite"),
			lipgloss.NewStyle().Foreground(theme.Text).Render("Correct answer: "+q.Answer))
	}
	if q.Explanation != "" {
		lines = append(lines, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(max(10, cw-8)).
			Render(q.Explanation))
	}

	next := "Press Enter to continue"
	if v.IsLast() || v.User.Hearts == 0 {
		next = "Press Enter to see your results"
	}
	lines = append(lines, "", theme.Hint.Render(next))

	return components.ArcadeCardColored(strings.Join(lines, "\n"), cw, border)
}

func typeLabel(t quiz.QuestionType) string {
	switch t {
	case quiz.TypeTranslateToSpanish:
		return "TRANSLATE TO SPANISH"
	case quiz.TypeTranslateToEnglish:
		return "TRANSLATE TO ENGLISH"
	case quiz.TypeFillBlank:
		return "AI · FILL IN THE BLANK"
	case quiz.TypeListening:
		return "LISTEN AND CHOOSE"
	}
	return strings.ToUpper(string(t))
}

func renderQuitConfirm(width int) string {
	line := func(c lipgloss.Style, s string) string {
		return c.Width(width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(line(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "End session early?"))
	b.WriteString("\n")
	b.WriteString(line(lipgloss.NewStyle().Foreground(theme.TextDim), "XP from this session will be lost."))
	b.WriteString("\n\n")
	b.WriteString(line(lipgloss.NewStyle().Foreground(theme.Error), "[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(line(lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going"))
	return b.String()
}
