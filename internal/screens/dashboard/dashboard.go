package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/carloslator/EnglishVerbs/internal/router"
	"github.com/carloslator/EnglishVerbs/internal/screen"
	"github.com/carloslator/EnglishVerbs/internal/screens/game"
	"github.com/carloslator/EnglishVerbs/internal/screens/history"
	"github.com/carloslator/EnglishVerbs/internal/session"
	"github.com/carloslator/EnglishVerbs/internal/ui/components"
	"github.com/carloslator/EnglishVerbs/internal/ui/layout"
	"github.com/carloslator/EnglishVerbs/internal/ui/theme"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

const titleFull = `╔═╗╔═╗╔═╗╔═╗╔╗╔╔╦╗╦╔═╗╦    ╦  ╦╔═╗╦═╗╔╗ ╔═╗
║╣ ╚═╗╚═╗║╣ ║║║ ║ ║╠═╣║    ╚╗╔╝║╣ ╠╦╝╠╩╗╚═╗
╚═╝╚═╝╚═╝╚═╝╝╚╝ ╩ ╩╩ ╩╩═╝   ╚╝ ╚═╝╩╚═╚═╝╚═╝`

const titleCompact = "E S S E N T I A L · V E R B S"

// DashboardScreen lists the categories with the learner's progress in
// each and starts a session in the chosen one.
type DashboardScreen struct {
	env        *screen.Env
	categories []vocab.Category
	menu       components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard.
func New(env *screen.Env) *DashboardScreen {
	d := &DashboardScreen{env: env, categories: vocab.AllCategories()}

	items := make([]components.MenuItem, 0, len(d.categories)+2)
	for _, c := range d.categories {
		items = append(items, components.MenuItem{
			Label:    strings.ToUpper(c.DisplayName()),
			Action:   func() tea.Cmd { return play(c) },
			Disabled: len(env.Controller.Catalog().ByCategory(c)) == 0,
		})
	}
	items = append(items,
		components.MenuItem{
			Label:    "HISTORY",
			Action:   d.showHistory,
			Disabled: env.Events == nil,
		},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	)
	d.menu = components.NewMenu(items)
	return d
}

func play(c vocab.Category) tea.Cmd {
	return func() tea.Msg { return screen.PlayMsg{Category: c} }
}

func (d *DashboardScreen) showHistory() tea.Cmd {
	h := history.New(d.env.Events)
	return func() tea.Msg { return router.PushScreenMsg{Screen: h} }
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(screen.PlayMsg); ok {
		return d, d.start(msg.Category)
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

// start pushes a game for category unless a session is running.
func (d *DashboardScreen) start(c vocab.Category) tea.Cmd {
	if d.env.Controller.Phase() == session.PhaseActive {
		return nil
	}
	g := game.New(d.env, c)
	return func() tea.Msg { return router.PushScreenMsg{Screen: g} }
}

func (d *DashboardScreen) View(width, height int) string {
	// Eight buttons need about three rows each.
	compact := height < 38 || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		d.renderStats(cw, compact),
		components.ArcadeMenu(d.menuLabels(), d.menu.Selected, cw, compact),
	}
	if d.env.AIModel == "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render("AI questions off (set GEMINI_API_KEY to enable)"))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

// menuLabels appends completed/total to each category.
func (d *DashboardScreen) menuLabels() []string {
	labels := d.menu.Labels()
	cat := d.env.Controller.Catalog()
	for i, c := range d.categories {
		verbs := cat.ByCategory(c)
		labels[i] = fmt.Sprintf("%s  %d/%d", labels[i], d.env.User.CompletedIn(verbs), len(verbs))
	}
	return labels
}

func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(art))
}

func (d *DashboardScreen) renderStats(cw int, compact bool) string {
	u := d.env.User
	perLevel := d.env.Controller.Config().XPPerLevel
	toNext := perLevel - u.XP%perLevel

	level := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	xp := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	done := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			level.Render(fmt.Sprintf("LV%d", u.Level)),
			xp.Render(fmt.Sprintf("%dXP", u.XP)),
			done.Render(fmt.Sprintf("★%d", len(u.CompletedVerbs))))
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			level.Render(fmt.Sprintf("LEVEL %d", u.Level)),
			xp.Render(fmt.Sprintf("%d XP (%d to next)", u.XP, toNext)),
			done.Render(fmt.Sprintf("★ %d VERBS", len(u.CompletedVerbs))))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
