package result

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizbox/internal/quiz"
)

func finishedController(t *testing.T, choices ...int) *quiz.Controller {
	t.Helper()
	c := quiz.NewController(quiz.DefaultBank())
	for _, ch := range choices {
		if _, err := c.SubmitAnswer(ch); err != nil {
			t.Fatalf("SubmitAnswer(%d): %v", ch, err)
		}
	}
	return c
}

func TestResultScreen_Title(t *testing.T) {
	s := New(finishedController(t, 2, 0, 0, 1, 2))
	if s.Title() != "Final Score" {
		t.Errorf("Title = %q, want %q", s.Title(), "Final Score")
	}
}

func TestResultScreen_View(t *testing.T) {
	s := New(finishedController(t, 2, 0, 1, 1, 0))
	view := s.View(80, 24)

	for _, want := range []string{"Quiz Finished!", "Your Score: 3 out of 5", "Paris", "answer: A) Object-Oriented Programming"} {
		if !contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultScreen_View_NotFinished(t *testing.T) {
	s := New(finishedController(t, 2))
	view := s.View(80, 24)
	if !contains(view, "Error") {
		t.Error("expected error view for unfinished quiz")
	}
}

func TestResultScreen_EnterQuits(t *testing.T) {
	s := New(finishedController(t, 2, 0, 0, 1, 2))

	for _, msg := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
		{Code: 'q', Text: "q"},
	} {
		_, cmd := s.Update(msg)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("expected QuitMsg for %q", msg.String())
		}
	}
}

func TestResultScreen_OtherKeysIgnored(t *testing.T) {
	s := New(finishedController(t, 2, 0, 0, 1, 2))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("expected no command for unrelated key")
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && searchString(s, substr)
}

func searchString(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
