package di

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	notifierService "github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/notifier/service"
	relayService "github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/relay/service"
	responderService "github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/responder/service"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/shared/config"
	httpServer "github.com/reshetovitsme/keyphrase-telegram-bot/internal/transport/http"
	telegramHandler "github.com/reshetovitsme/keyphrase-telegram-bot/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Responder Service
	do.Provide(injector, func(i do.Injector) (*responderService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return responderService.New(cfg, nil), nil
	})

	// Register Notifier Service
	do.Provide(injector, func(i do.Injector) (*notifierService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return notifierService.New(cfg), nil
	})

	// Register Relay Service
	do.Provide(injector, func(i do.Injector) (*relayService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		responder := do.MustInvoke[*responderService.Service](i)
		notifier := do.MustInvoke[*notifierService.Service](i)
		return relayService.New(cfg, responder, notifier), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		relay := do.MustInvoke[*relayService.Service](i)
		return telegramHandler.New(cfg, relay), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		relay := do.MustInvoke[*relayService.Service](i)
		server := httpServer.New(cfg, relay)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// Register Bot (needs to be initialized after handlers are ready)
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		handler := do.MustInvoke[*telegramHandler.Handler](i)

		opts := []bot.Option{
			bot.WithDefaultHandler(handler.HandleUpdate),
		}

		b, err := bot.New(cfg.BotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		// Register bot commands
		handler.RegisterCommands(b)

		return b, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx := context.Background()

	// Shutdown bot if it exists
	if b, err := do.Invoke[*bot.Bot](injector); err == nil && b != nil {
		b.Close(ctx)
	}

	return nil
}
