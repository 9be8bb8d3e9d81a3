package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/config"
	"alfredoptarigan/ats-screener/internal/logger"
)

func main() {
	ctx := context.Background()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		logger.Fatal(ctx, "❌ Command failed", zap.Error(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := &config.Config{}

	root := &cobra.Command{
		Use:          "ats-screener",
		Short:        "Resume screening API: ATS keyword score, job match and role classification",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if err := logger.Setup(loaded.Server.Env, loaded.Log.JSON, loaded.Log.Debug); err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	serve := serveCommand(cfg)
	root.RunE = serve.RunE
	root.AddCommand(serve, migrateCommand(cfg), scoreCommand(cfg))

	return root
}
