package app

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/screens/question"
	"github.com/abhisek/quizbox/internal/ui/layout"
)

// Options holds dependencies for the TUI.
type Options struct {
	Controller *quiz.Controller
	Logger     *zap.Logger
	AltScreen  bool
}

var quitKey = key.NewBinding(key.WithKeys("ctrl+c"))

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	ctrl      *quiz.Controller
	altScreen bool
	width     int
	height    int
}

// newAppModel creates a new AppModel opened on the first question.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router:    router.New(question.New(opts.Controller, opts.Logger)),
		ctrl:      opts.Controller,
		altScreen: opts.AltScreen,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, quitKey) {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = m.altScreen
	if content := m.render(); content != "" {
		v.SetContent(content)
	}
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	st := m.ctrl.State()
	header := layout.RenderHeader(title, st.Score, m.ctrl.Total(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits. The caller
// inspects the controller afterwards to see whether the quiz was finished.
func Run(opts Options) error {
	if opts.Controller == nil {
		return errors.New("app: nil controller")
	}

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
