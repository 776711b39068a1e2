package quiz

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for answer and completion events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSessionID overrides the generated session ID.
func WithSessionID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.sessionID = id
		}
	}
}

// Controller drives one session through a question bank. It is not safe for
// concurrent use.
type Controller struct {
	bank      Bank
	state     State
	answers   []Answer
	sessionID string
	logger    *zap.Logger
}

// NewController creates a Controller positioned at the first question. bank
// must come from NewBank or DefaultBank; it panics on any other bank,
// including the zero Bank.
func NewController(bank Bank, opts ...Option) *Controller {
	if bank.Len() != BankSize {
		panic(fmt.Sprintf("quiz: controller needs a %d-question bank, got %d", BankSize, bank.Len()))
	}
	c := &Controller{
		bank:      bank,
		state:     State{Selection: NoSelection},
		sessionID: uuid.New().String(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("session_id", c.sessionID))
	c.logger.Debug("session started", zap.Int("questions", bank.Len()))
	return c
}

// SessionID returns the identifier attached to this session's log entries.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Total returns the number of questions in the session.
func (c *Controller) Total() int {
	return c.bank.Len()
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Phase returns the current state machine phase.
func (c *Controller) Phase() Phase {
	if c.IsFinished() {
		return PhaseFinished
	}
	return PhaseAwaitingAnswer
}

// IsFinished reports whether every question has been answered.
func (c *Controller) IsFinished() bool {
	return c.state.CurrentIndex >= c.bank.Len()
}

// CurrentQuestion returns the question being asked. ok is false once the
// quiz is finished.
func (c *Controller) CurrentQuestion() (q Question, ok bool) {
	return c.bank.At(c.state.CurrentIndex)
}

// Select records a tentative choice for the current question.
func (c *Controller) Select(choice int) error {
	if c.IsFinished() {
		return ErrAlreadyFinished
	}
	if !validChoice(choice) {
		return ErrNoSelection
	}
	c.state.Selection = choice
	return nil
}

// ClearSelection drops the tentative choice.
func (c *Controller) ClearSelection() {
	c.state.Selection = NoSelection
}

// Submit submits the recorded selection.
func (c *Controller) Submit() (State, error) {
	return c.SubmitAnswer(c.state.Selection)
}

// SubmitAnswer scores choice against the current question and advances to
// the next one. On error the state is unchanged.
func (c *Controller) SubmitAnswer(choice int) (State, error) {
	if c.IsFinished() {
		c.logger.Warn("answer submitted after finish", zap.Int("choice", choice))
		return c.state, ErrAlreadyFinished
	}
	if !validChoice(choice) {
		return c.state, ErrNoSelection
	}

	q, _ := c.bank.At(c.state.CurrentIndex)
	correct := q.IsCorrect(choice)
	if correct {
		c.state.Score++
	}
	c.answers = append(c.answers, Answer{
		Index:   c.state.CurrentIndex,
		Choice:  choice,
		Correct: correct,
	})

	c.logger.Debug("answer submitted",
		zap.Int("question", c.state.CurrentIndex+1),
		zap.Int("choice", choice),
		zap.Bool("correct", correct),
	)

	c.state.CurrentIndex++
	c.state.Selection = NoSelection

	if c.IsFinished() {
		c.logger.Info("quiz finished",
			zap.Int("score", c.state.Score),
			zap.Int("total", c.bank.Len()),
		)
	}
	return c.state, nil
}

// FinalScore returns the tally once the quiz is finished.
func (c *Controller) FinalScore() (Result, error) {
	if !c.IsFinished() {
		return Result{}, ErrNotFinished
	}
	return Result{Score: c.state.Score, Total: c.bank.Len()}, nil
}

// Answers returns the submitted answers in order.
func (c *Controller) Answers() []Answer {
	out := make([]Answer, len(c.answers))
	copy(out, c.answers)
	return out
}

// Question returns the bank question at index i.
func (c *Controller) Question(i int) (Question, bool) {
	return c.bank.At(i)
}

func validChoice(choice int) bool {
	return choice >= 0 && choice < OptionCount
}
