package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/di"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/shared/config"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/shared/errors"
	httpServer "github.com/reshetovitsme/keyphrase-telegram-bot/internal/transport/http"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	// Setup structured logging with multiple handlers using slog-multi.
	// The level var starts at info and is raised/lowered once the
	// configuration is loaded.
	level := new(slog.LevelVar)
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	// Load configuration; a missing bot token surfaces here
	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// The owner address is required for the notification feature
	if !cfg.HasOwner() {
		slog.Error("Refusing to start", "error", errors.ErrMissingOwnerID)
		os.Exit(1)
	}

	level.Set(cfg.SlogLevel())

	b, err := do.Invoke[*bot.Bot](injector)
	if err != nil {
		slog.Error("Failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	httpSrv := do.MustInvoke[*httpServer.Server](injector)

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start ops HTTP server
	go func() {
		if err := httpSrv.Start(); err != nil {
			slog.Error("Failed to start HTTP server", "error", err)
			os.Exit(1)
		}
	}()

	// Start polling for updates
	go b.Start(ctx)

	slog.Info("Bot is running", "http_port", cfg.HTTPPort)
	slog.Info("Press Ctrl+C to stop")

	<-ctx.Done()
	slog.Info("Shutting down...")
}
