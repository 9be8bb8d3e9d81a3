package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/config"
	"alfredoptarigan/ats-screener/internal/handlers"
	"alfredoptarigan/ats-screener/internal/logger"
	"alfredoptarigan/ats-screener/internal/repositories"
	"alfredoptarigan/ats-screener/internal/services"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	pipeline, err := cfg.ScoringPipeline()
	if err != nil {
		return fmt.Errorf("invalid pipeline configuration: %w", err)
	}
	logger.Info(ctx, "✅ Config loaded successfully",
		zap.Int("keywords", pipeline.Keywords.Len()),
		zap.Int("roles", pipeline.Roles.Len()),
		zap.Bool("job_match", pipeline.IncludeJobMatch),
		zap.Bool("role_classification", pipeline.IncludeRoleClassification),
		zap.Int("suggestion_cap", pipeline.SuggestionCap),
		zap.String("empty_reference_policy", string(pipeline.EmptyReference)),
	)

	// Initialize database
	db, err := config.InitDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	if err := config.Migrate(ctx, db); err != nil {
		return err
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	historyRepo := repositories.NewHistoryRepository(db)

	// Initialize services
	analyzer := services.NewAnalyzer(pipeline, services.NewTextExtractor())
	pool := services.NewAnalysisPool(analyzer, cfg.Worker.Concurrency, cfg.Worker.QueueSize)
	accounts := services.NewAccountService(userRepo, historyRepo, 0)
	logger.Info(ctx, "✅ Services initialized successfully")

	pool.Start(ctx)

	app := handlers.NewApp(handlers.Dependencies{
		Pool:         pool,
		Uploads:      services.NewUploadService(cfg.Upload.MaxFileSize),
		Accounts:     accounts,
		Chat:         services.NewChatResponder(),
		Sessions:     handlers.NewSessionStore(cfg.Session.CookieName, cfg.Session.Expiration, cfg.Session.Secure),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		AccessLog:    true,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info(ctx, "🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logger.Error(ctx, "❌ Server forced to shutdown", zap.Error(err))
		}
		pool.Stop()
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info(ctx, "🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
