package quiz

import "fmt"

// NoSelection marks the absence of a selected option.
const NoSelection = -1

// Phase is the controller's position in the quiz state machine.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota // A question is displayed
	PhaseFinished                    // Every question has been answered
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the progression state of a session.
type State struct {
	// CurrentIndex is the index of the question being asked. It equals the
	// bank length once the quiz is finished.
	CurrentIndex int

	// Score is the number of correct answers so far.
	Score int

	// Selection is the tentatively chosen option, or NoSelection.
	Selection int
}

// HasSelection reports whether an option is currently selected.
func (s State) HasSelection() bool {
	return s.Selection != NoSelection
}

// Answer records one submitted answer.
type Answer struct {
	Index   int // question index
	Choice  int
	Correct bool
}

// Result is the final tally of a finished session.
type Result struct {
	Score int
	Total int
}

// Message renders the end-of-quiz line shown to the player.
func (r Result) Message() string {
	return fmt.Sprintf("Quiz Finished! Your Score: %d out of %d", r.Score, r.Total)
}

// Accuracy returns the fraction of correct answers (0 when Total is 0).
func (r Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}
