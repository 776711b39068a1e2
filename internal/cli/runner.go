package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/quizbox/internal/quiz"
)

// Prompt is printed before reading each answer.
const Prompt = "Your answer (A-D): "

// Run plays ctrl to completion on a line-oriented terminal. Each line is one
// answer given as a letter (A-D) or a number (1-4). Blank or unrecognised
// lines re-prompt without changing the session.
func Run(ctx context.Context, ctrl *quiz.Controller, in io.Reader, out io.Writer) (quiz.Result, error) {
	reader := bufio.NewReader(in)

	for !ctrl.IsFinished() {
		if err := ctx.Err(); err != nil {
			return quiz.Result{}, err
		}

		q, _ := ctrl.CurrentQuestion()
		printQuestion(out, ctrl.State().CurrentIndex+1, ctrl.Total(), q)

		for {
			fmt.Fprint(out, Prompt)
			line, err := reader.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return quiz.Result{}, fmt.Errorf("read answer: %w", err)
			}
			eof := err != nil
			if eof && strings.TrimSpace(line) == "" {
				fmt.Fprintln(out)
				return quiz.Result{}, io.ErrUnexpectedEOF
			}

			_, err = ctrl.SubmitAnswer(parseChoice(line))
			if errors.Is(err, quiz.ErrNoSelection) {
				fmt.Fprintln(out, "Please select an answer!")
				if eof {
					return quiz.Result{}, io.ErrUnexpectedEOF
				}
				continue
			}
			if err != nil {
				return quiz.Result{}, err
			}
			break
		}
		fmt.Fprintln(out)
	}

	res, err := ctrl.FinalScore()
	if err != nil {
		return quiz.Result{}, err
	}
	fmt.Fprintln(out, res.Message())
	return res, nil
}

func printQuestion(out io.Writer, number, total int, q quiz.Question) {
	fmt.Fprintf(out, "Question %d of %d: %s\n\n", number, total, q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(out, "  %s. %s\n", quiz.OptionLabel(i), opt)
	}
	fmt.Fprintln(out)
}

// parseChoice maps "A".."D" or "1".."4" to an option index, or
// quiz.NoSelection for anything else.
func parseChoice(line string) int {
	s := strings.ToUpper(strings.TrimSpace(line))
	if len(s) != 1 {
		return quiz.NoSelection
	}
	if s[0] >= 'A' && s[0] < 'A'+quiz.OptionCount {
		return int(s[0] - 'A')
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= quiz.OptionCount {
		return n - 1
	}
	return quiz.NoSelection
}
