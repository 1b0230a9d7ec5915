package service

import (
	"context"
	"log/slog"

	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/notifier/domain"
	relayDomain "github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/relay/domain"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/shared/config"
)

// Service dispatches owner notifications for key phrase hits
type Service struct {
	cfg *config.Config
}

// New creates a new notifier service
func New(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
	}
}

// Notify builds and sends the owner alert for a matched message.
// A dispatch failure is logged and swallowed: the user-facing reply was
// already sent and must not be undone or retried.
func (s *Service) Notify(ctx context.Context, sender relayDomain.Sender, event relayDomain.MessageEvent) {
	notification := domain.New(event)

	if err := sender.SendToAddress(ctx, s.cfg.OwnerID, notification.Render(), true); err != nil {
		slog.Error("Failed to send owner notification", "error", err, "user_id", event.SenderID, "owner_id", s.cfg.OwnerID)
		return
	}

	slog.Info("Owner notification sent", "user_id", event.SenderID)
}
