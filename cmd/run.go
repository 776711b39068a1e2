package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/app"
	"github.com/abhisek/quizbox/internal/config"
	"github.com/abhisek/quizbox/internal/logger"
	"github.com/abhisek/quizbox/internal/quiz"
)

// loadConfig reads config with the command's --log-level and --log-file
// flags taking precedence over env and file values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// setup loads config and builds the logger and a fresh controller.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, *quiz.Controller, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}
	ctrl := quiz.NewController(quiz.DefaultBank(), quiz.WithLogger(log))
	return cfg, log, ctrl, nil
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, log, ctrl, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting tui", zap.String("session_id", ctrl.SessionID()), zap.Bool("alt_screen", cfg.UI.AltScreen))

	if err := app.Run(app.Options{
		Controller: ctrl,
		Logger:     log,
		AltScreen:  cfg.UI.AltScreen,
	}); err != nil {
		log.Error("tui exited with error", zap.Error(err))
		return err
	}

	reportOutcome(cmd.OutOrStdout(), log, ctrl)
	return nil
}

// reportOutcome prints the final message once the program has exited, or
// logs how far the player got if they quit early.
func reportOutcome(out io.Writer, log *zap.Logger, ctrl *quiz.Controller) {
	res, err := ctrl.FinalScore()
	if err != nil {
		log.Info("quiz abandoned", zap.Int("answered", ctrl.State().CurrentIndex), zap.Int("total", ctrl.Total()))
		return
	}
	fmt.Fprintln(out, res.Message())
}
