package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

// MultiChoiceKeyMap holds the bindings used to move and pick options.
type MultiChoiceKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose []key.Binding // one per option
}

// DefaultMultiChoiceKeyMap returns arrow/vim navigation plus 1-4 and a-d.
func DefaultMultiChoiceKeyMap() MultiChoiceKeyMap {
	km := MultiChoiceKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k")),
		Down: key.NewBinding(key.WithKeys("down", "j")),
	}
	for i := 0; i < quiz.OptionCount; i++ {
		num := fmt.Sprintf("%d", i+1)
		letter := strings.ToLower(quiz.OptionLabel(i))
		km.Choose = append(km.Choose, key.NewBinding(key.WithKeys(num, letter)))
	}
	return km
}

// MultiChoice renders a question with lettered options and tracks the
// highlighted option. Selected is quiz.NoSelection until the player picks.
type MultiChoice struct {
	Prompt   string
	Options  []string
	Selected int
	keys     MultiChoiceKeyMap
}

// NewMultiChoice creates a multiple-choice component with nothing selected.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{
		Prompt:   prompt,
		Options:  options,
		Selected: quiz.NoSelection,
		keys:     DefaultMultiChoiceKeyMap(),
	}
}

// Update handles keyboard navigation and direct selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Options) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.keys.Up):
		switch {
		case m.Selected == quiz.NoSelection:
			m.Selected = len(m.Options) - 1
		case m.Selected > 0:
			m.Selected--
		}
		return m, nil
	case key.Matches(kmsg, m.keys.Down):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	}

	for i, b := range m.keys.Choose {
		if i < len(m.Options) && key.Matches(kmsg, b) {
			m.Selected = i
			break
		}
	}
	return m, nil
}

// HasSelection reports whether an option is highlighted.
func (m MultiChoice) HasSelection() bool {
	return m.Selected >= 0 && m.Selected < len(m.Options)
}

// View renders the prompt and options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  ( ) "
		if i == m.Selected {
			prefix = "▸ (•) "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, quiz.OptionLabel(i), opt)

		if i == m.Selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
