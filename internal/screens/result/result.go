package result

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/ui/layout"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

var closeKey = key.NewBinding(key.WithKeys("enter", "esc", "q"))

// ResultScreen displays the final tally and per-question breakdown.
type ResultScreen struct {
	ctrl *quiz.Controller
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for a finished controller.
func New(ctrl *quiz.Controller) *ResultScreen {
	return &ResultScreen{ctrl: ctrl}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Final Score"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Exit"},
	}
}

// Update closes the program on Enter, Esc or q.
func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, closeKey) {
		return s, tea.Quit
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	res, err := s.ctrl.FinalScore()
	if err != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n  Error: %s", err))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Quiz Finished!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Your Score: %d out of %d", res.Score, res.Total)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	var rows []string
	for _, a := range s.ctrl.Answers() {
		q, ok := s.ctrl.Question(a.Index)
		if !ok {
			continue
		}
		rows = append(rows, renderAnswer(a, q))
	}
	block := strings.Join(rows, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))

	return b.String()
}

// renderAnswer renders one breakdown line.
func renderAnswer(a quiz.Answer, q quiz.Question) string {
	chosen := fmt.Sprintf("%s) %s", quiz.OptionLabel(a.Choice), q.Options[a.Choice])
	if a.Correct {
		return theme.Correct.Render(fmt.Sprintf("✓ %d. %s", a.Index+1, chosen))
	}
	return theme.Incorrect.Render(fmt.Sprintf("✗ %d. %s", a.Index+1, chosen)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("   answer: %s) %s", quiz.OptionLabel(q.Correct), q.CorrectOption()))
}
