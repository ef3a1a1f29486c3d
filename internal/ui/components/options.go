package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/carloslator/EnglishVerbs/internal/ui/theme"
)

// OptionList renders the choices of a multiple-choice question. Before
// checking, the cursor and the chosen option are highlighted; after
// checking, the answer turns green and a wrong choice red.
type OptionList struct {
	Options  []string
	Cursor   int
	Selected string
	Checked  bool
	Answer   string
}

var optionLabels = []string{"1", "2", "3", "4"}

// View renders one line per option.
func (o OptionList) View() string {
	var b strings.Builder
	for i, opt := range o.Options {
		label := fmt.Sprint(i + 1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		marker := "  "
		if !o.Checked && i == o.Cursor {
			marker = "▸ "
		}
		mark := "( )"
		if opt == o.Selected {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%s %s  %s", marker, label, mark, opt)

		b.WriteString(o.style(i, opt).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (o OptionList) style(i int, opt string) lipgloss.Style {
	switch {
	case o.Checked && opt == o.Answer:
		return theme.Correct
	case o.Checked && opt == o.Selected:
		return theme.Incorrect
	case o.Checked:
		return theme.Faded
	case opt == o.Selected:
		return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	case i == o.Cursor:
		return theme.Selected
	default:
		return theme.Unselected
	}
}
