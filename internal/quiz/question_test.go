package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestions() []Question {
	return DefaultBank().Questions()
}

func TestDefaultBank(t *testing.T) {
	b := DefaultBank()
	require.Equal(t, BankSize, b.Len())

	first, ok := b.At(0)
	require.True(t, ok)
	assert.Equal(t, "What is the capital of France?", first.Prompt)
	assert.Equal(t, "Paris", first.CorrectOption())

	wantCorrect := []int{2, 0, 0, 1, 2}
	for i, q := range b.Questions() {
		assert.Equal(t, wantCorrect[i], q.Correct, "question %d", i+1)
	}
}

func TestBank_At_OutOfRange(t *testing.T) {
	b := DefaultBank()

	_, ok := b.At(-1)
	assert.False(t, ok)
	_, ok = b.At(BankSize)
	assert.False(t, ok)
}

func TestBank_QuestionsIsCopy(t *testing.T) {
	b := DefaultBank()
	qs := b.Questions()
	qs[0].Prompt = "changed"

	q, _ := b.At(0)
	assert.Equal(t, "What is the capital of France?", q.Prompt)
}

func TestNewBank_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Question) []Question
	}{
		{"too few", func(qs []Question) []Question { return qs[:4] }},
		{"too many", func(qs []Question) []Question { return append(qs, qs[0]) }},
		{"empty prompt", func(qs []Question) []Question { qs[1].Prompt = "  "; return qs }},
		{"empty option", func(qs []Question) []Question { qs[2].Options[3] = ""; return qs }},
		{"negative correct", func(qs []Question) []Question { qs[3].Correct = -1; return qs }},
		{"correct too large", func(qs []Question) []Question { qs[4].Correct = OptionCount; return qs }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBank(tt.mutate(validQuestions())...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidBank)
		})
	}
}

func TestNewBank_CopiesInput(t *testing.T) {
	qs := validQuestions()
	b, err := NewBank(qs...)
	require.NoError(t, err)

	qs[0].Correct = 3
	q, _ := b.At(0)
	assert.Equal(t, 2, q.Correct)
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "A", OptionLabel(0))
	assert.Equal(t, "D", OptionLabel(3))
	assert.Equal(t, "?", OptionLabel(4))
	assert.Equal(t, "?", OptionLabel(-1))
}

func TestResult(t *testing.T) {
	r := Result{Score: 3, Total: 5}
	assert.Equal(t, "Quiz Finished! Your Score: 3 out of 5", r.Message())
	assert.InDelta(t, 0.6, r.Accuracy(), 1e-9)
	assert.Zero(t, Result{}.Accuracy())
}
