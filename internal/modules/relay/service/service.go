package service

import (
	"context"
	"log/slog"
	"sync/atomic"

	notifierService "github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/notifier/service"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/relay/domain"
	responderService "github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/responder/service"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/shared/config"
)

// apologyReply is sent when processing a message fails past the point
// where a normal reply is possible.
const apologyReply = "Sorry, I couldn't process your message."

// Stats is a snapshot of the relay counters.
type Stats struct {
	Processed uint64 `json:"processed"`
	Triggered uint64 `json:"triggered"`
	Notified  uint64 `json:"notified"`
}

// Service runs the per-message pipeline: select a reply, send it, and
// notify the owner on a key phrase hit. It holds no per-message state,
// so concurrent events need no locking.
type Service struct {
	cfg       *config.Config
	responder *responderService.Service
	notifier  *notifierService.Service

	processed atomic.Uint64
	triggered atomic.Uint64
	notified  atomic.Uint64
}

// New creates a new relay service
func New(cfg *config.Config, responder *responderService.Service, notifier *notifierService.Service) *Service {
	return &Service{
		cfg:       cfg,
		responder: responder,
		notifier:  notifier,
	}
}

// HandleMessage processes one incoming message event. Failures are
// confined here: they are logged, answered with a generic apology, and
// never propagate to the caller.
func (s *Service) HandleMessage(ctx context.Context, sender domain.Sender, event domain.MessageEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic while handling message", "panic", r, "user_id", event.SenderID)
			s.apologize(ctx, sender, event)
		}
	}()

	decision := s.responder.Select(event.Text)
	if decision.Outcome == domain.OutcomeIgnore {
		slog.Debug("Ignoring empty message", "user_id", event.SenderID)
		return
	}

	slog.Info("Received message",
		"user_id", event.SenderID,
		"username", event.Username,
		"text", truncate(event.Text, 50),
	)
	s.processed.Add(1)

	if err := sender.ReplyToSender(ctx, event, decision.Reply, false); err != nil {
		slog.Error("Failed to send reply", "error", err, "user_id", event.SenderID)
		s.apologize(ctx, sender, event)
		return
	}

	if decision.Outcome != domain.OutcomeTrigger {
		slog.Debug("Sent random response", "user_id", event.SenderID)
		return
	}

	s.triggered.Add(1)
	slog.Info("Key phrase detected, sent key response", "user_id", event.SenderID)

	if !s.cfg.HasOwner() {
		slog.Warn("Owner notification skipped: OWNER_ID not configured")
		return
	}

	s.notified.Add(1)
	s.notifier.Notify(ctx, sender, event)
}

// Stats returns a snapshot of the relay counters.
func (s *Service) Stats() Stats {
	return Stats{
		Processed: s.processed.Load(),
		Triggered: s.triggered.Load(),
		Notified:  s.notified.Load(),
	}
}

func (s *Service) apologize(ctx context.Context, sender domain.Sender, event domain.MessageEvent) {
	if err := sender.ReplyToSender(ctx, event, apologyReply, false); err != nil {
		slog.Error("Failed to send error message", "error", err, "user_id", event.SenderID)
	}
}

func truncate(text string, max int) string {
	if len(text) > max {
		return text[:max] + "..."
	}
	return text
}
