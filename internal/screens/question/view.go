package question

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/ui/components"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

func (s *QuestionScreen) View(width, height int) string {
	var b strings.Builder

	barWidth := min(width-8, 60)
	bar := components.NewProgressBar("Progress", s.ctrl.State().CurrentIndex, s.ctrl.Total(), barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	card := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(strings.TrimRight(s.choice.View(), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	if s.warning != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Inherit(theme.Warn).
			Render(s.warning))
		b.WriteString("\n\n")
	}

	button := components.NewButton(s.buttonLabel(), s.choice.HasSelection())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, button.View()))

	return b.String()
}
