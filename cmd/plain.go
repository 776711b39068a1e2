package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/cli"
)

func newPlainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plain",
		Short: "Play in plain line mode (reads answers from stdin)",
		Long: `Play the quiz without the full-screen interface.

Each question is printed with lettered options; answer with A-D or 1-4,
one answer per line. Useful for scripting and terminals without TTY support.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, ctrl, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			res, err := cli.Run(cmd.Context(), ctrl, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				log.Warn("plain session ended early", zap.Error(err))
				return fmt.Errorf("quiz incomplete: %w", err)
			}
			log.Info("plain session complete", zap.Int("score", res.Score), zap.Int("total", res.Total))
			return nil
		},
	}
}
