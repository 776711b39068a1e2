package cmd

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Each call returns fresh commands with
// their own flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quizbox",
		Short: "Five-question multiple-choice quiz",
		Long:  "Quizbox is a single-window terminal quiz. Answer five questions and get your score.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to config file (default ./quizbox.yaml or $XDG_CONFIG_HOME/quizbox/quizbox.yaml)")
	root.PersistentFlags().String("log-file", "", "Path to log file (overrides QUIZBOX_LOG_FILE)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides QUIZBOX_LOG_LEVEL)")

	root.AddCommand(newPlainCmd())
	root.AddCommand(newQuestionsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
