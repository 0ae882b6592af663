package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tictactoe/internal/config"
	"tictactoe/internal/engine"
)

// app 是各子命令共享的运行时状态，在 PersistentPreRunE 里填好
type app struct {
	configPath string
	cfg        config.Config
	logger     *slog.Logger
}

func (a *app) newEngine() *engine.Engine {
	return engine.NewEngine(
		engine.WithSeed(a.cfg.Engine.Seed),
		engine.WithLogger(a.logger),
	)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "tictactoe",
		Short:         "3x3 tic-tac-toe move engine",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Log.NewLogger(os.Stderr)
			slog.SetDefault(a.logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config file")

	root.AddCommand(
		newServeCmd(a),
		newMoveCmd(a),
		newAnalyzeCmd(a),
		newSelfplayCmd(a),
		newExportCmd(a),
	)
	return root
}
