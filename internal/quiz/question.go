package quiz

import (
	"fmt"
	"strings"
)

// OptionCount is the number of options every question carries.
const OptionCount = 4

// BankSize is the number of questions in a bank.
const BankSize = 5

// Question is a single multiple-choice item.
type Question struct {
	Prompt  string
	Options [OptionCount]string
	Correct int // index into Options
}

// IsCorrect reports whether choice is the correct option.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.Correct
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	return q.Options[q.Correct]
}

func (q Question) validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("empty prompt: %w", ErrInvalidBank)
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("option %s of %q is empty: %w", OptionLabel(i), q.Prompt, ErrInvalidBank)
		}
	}
	if q.Correct < 0 || q.Correct >= OptionCount {
		return fmt.Errorf("correct index %d of %q out of range: %w", q.Correct, q.Prompt, ErrInvalidBank)
	}
	return nil
}

// OptionLabel returns the letter shown next to option i ("A".."D").
func OptionLabel(i int) string {
	if i < 0 || i >= OptionCount {
		return "?"
	}
	return string(rune('A' + i))
}

// Bank is an ordered, read-only sequence of questions.
type Bank struct {
	questions []Question
}

// NewBank validates questions and returns a Bank presenting them in order.
func NewBank(questions ...Question) (Bank, error) {
	if len(questions) != BankSize {
		return Bank{}, fmt.Errorf("bank has %d questions, want %d: %w", len(questions), BankSize, ErrInvalidBank)
	}
	for i, q := range questions {
		if err := q.validate(); err != nil {
			return Bank{}, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return Bank{questions: qs}, nil
}

// Len returns the number of questions in the bank.
func (b Bank) Len() int {
	return len(b.questions)
}

// At returns the question at index i.
func (b Bank) At(i int) (Question, bool) {
	if i < 0 || i >= len(b.questions) {
		return Question{}, false
	}
	return b.questions[i], true
}

// Questions returns a copy of the questions in presentation order.
func (b Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

var defaultQuestions = []Question{
	{
		Prompt:  "What is the capital of France?",
		Options: [OptionCount]string{"Berlin", "Madrid", "Paris", "Rome"},
		Correct: 2,
	},
	{
		Prompt:  "Which keyword is used to create an object in Java?",
		Options: [OptionCount]string{"new", "create", "object", "make"},
		Correct: 0,
	},
	{
		Prompt:  "What does 'OOP' stand for?",
		Options: [OptionCount]string{"Object-Oriented Programming", "Open Office Protocol", "Original-Origin Policy", "Other-Object-Project"},
		Correct: 0,
	},
	{
		Prompt:  "Which of these is NOT a primitive data type in Java?",
		Options: [OptionCount]string{"int", "String", "boolean", "float"},
		Correct: 1,
	},
	{
		Prompt:  "What method is the entry point for a Java application?",
		Options: [OptionCount]string{"start()", "run()", "main()", "init()"},
		Correct: 2,
	},
}

// DefaultBank returns the built-in five question bank.
func DefaultBank() Bank {
	b, err := NewBank(defaultQuestions...)
	if err != nil {
		panic(fmt.Sprintf("quiz: built-in bank is invalid: %v", err))
	}
	return b
}
