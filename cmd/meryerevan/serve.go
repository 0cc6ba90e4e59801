package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"meryerevan.am/internal/assistant"
	"meryerevan.am/internal/clock"
	"meryerevan.am/internal/config"
	"meryerevan.am/internal/handlers"
	"meryerevan.am/internal/logger"
)

// serveCmd runs the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	log.Info("Starting meryerevan",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.ServerAddr),
		zap.String("default_lang", string(cfg.DefaultLanguage)),
		zap.Int("projects", len(cfg.Catalogue.Projects)),
	)
	for _, w := range cfg.Warnings {
		log.Warn("catalogue", zap.String("warning", w))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := handlers.Dependencies{Clock: clock.Real()}
	if cfg.GeminiAPIKey != "" {
		responder, err := assistant.NewGeminiResponder(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AssistantTimeout)
		if err != nil {
			return err
		}
		deps.Responder = responder
		log.Info("assistant using Gemini", zap.String("model", cfg.GeminiModel))
	} else {
		log.Warn("GEMINI_API_KEY not set, assistant uses canned replies")
	}

	deps.Sessions = handlers.NewSessionStore(cfg, deps)
	defer deps.Sessions.Close()

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.AssistantTimeout + 30*time.Second,
		IdleTimeout:       90 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server starting", zap.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", zap.Error(err))
		return err
	}
	log.Info("server exited gracefully")
	return nil
}
