package question

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/screens/result"
	"github.com/abhisek/quizbox/internal/ui/components"
	"github.com/abhisek/quizbox/internal/ui/layout"
)

// SelectionWarning is shown when Enter is pressed with nothing selected.
const SelectionWarning = "Please select an answer!"

var submitKey = key.NewBinding(key.WithKeys("enter"))

// QuestionScreen presents the current question and forwards the player's
// selection to the quiz controller.
type QuestionScreen struct {
	ctrl    *quiz.Controller
	choice  components.MultiChoice
	warning string
	logger  *zap.Logger
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen showing the controller's current question.
func New(ctrl *quiz.Controller, logger *zap.Logger) *QuestionScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &QuestionScreen{ctrl: ctrl, logger: logger}
	s.loadQuestion()
	return s
}

func (s *QuestionScreen) Init() tea.Cmd {
	if s.ctrl.IsFinished() {
		return s.showResult()
	}
	return nil
}

func (s *QuestionScreen) Title() string {
	return fmt.Sprintf("Question %d of %d", s.number(), s.ctrl.Total())
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "1-4/a-d", Description: "Choose"},
		{Key: "Enter", Description: s.buttonLabel()},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if key.Matches(kmsg, submitKey) {
		return s.submit()
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(kmsg)
	if s.choice.HasSelection() {
		if err := s.ctrl.Select(s.choice.Selected); err != nil {
			s.logger.Warn("select failed", zap.Int("choice", s.choice.Selected), zap.Error(err))
		}
		s.warning = ""
	}
	return s, cmd
}

// submit hands the highlighted option to the controller.
func (s *QuestionScreen) submit() (screen.Screen, tea.Cmd) {
	_, err := s.ctrl.SubmitAnswer(s.choice.Selected)
	switch {
	case errors.Is(err, quiz.ErrNoSelection):
		s.warning = SelectionWarning
		return s, nil
	case errors.Is(err, quiz.ErrAlreadyFinished):
		s.logger.Error("submit on finished quiz", zap.Error(err))
		return s, s.showResult()
	case err != nil:
		s.logger.Error("submit failed", zap.Error(err))
		return s, nil
	}

	if s.ctrl.IsFinished() {
		return s, s.showResult()
	}
	s.loadQuestion()
	return s, nil
}

// loadQuestion resets the selector for the controller's current question.
func (s *QuestionScreen) loadQuestion() {
	s.warning = ""
	q, ok := s.ctrl.CurrentQuestion()
	if !ok {
		s.choice = components.MultiChoice{}
		return
	}
	s.choice = components.NewMultiChoice(q.Prompt, q.Options[:])
}

func (s *QuestionScreen) showResult() tea.Cmd {
	next := result.New(s.ctrl)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// number is the 1-based position of the current question.
func (s *QuestionScreen) number() int {
	n := s.ctrl.State().CurrentIndex + 1
	if n > s.ctrl.Total() {
		n = s.ctrl.Total()
	}
	return n
}

func (s *QuestionScreen) isLast() bool {
	return s.ctrl.State().CurrentIndex == s.ctrl.Total()-1
}

func (s *QuestionScreen) buttonLabel() string {
	if s.isLast() {
		return "Finish Quiz"
	}
	return "Next Question"
}
