package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbox/internal/quiz"
)

func newQuestionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the question bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			showAnswers, _ := cmd.Flags().GetBool("answers")
			out := cmd.OutOrStdout()

			for i, q := range quiz.DefaultBank().Questions() {
				fmt.Fprintf(out, "%d. %s\n", i+1, q.Prompt)
				for j, opt := range q.Options {
					marker := " "
					if showAnswers && q.IsCorrect(j) {
						marker = "*"
					}
					fmt.Fprintf(out, "   %s %s) %s\n", marker, quiz.OptionLabel(j), opt)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().Bool("answers", false, "Mark the correct option of each question")
	return cmd
}
