package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/relay/domain"
	relayService "github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/relay/service"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/shared/config"
)

// Handler handles Telegram bot interactions
type Handler struct {
	cfg   *config.Config
	relay *relayService.Service
}

// New creates a new Telegram handler
func New(cfg *config.Config, relay *relayService.Service) *Handler {
	return &Handler{
		cfg:   cfg,
		relay: relay,
	}
}

// RegisterCommands registers bot commands
func (h *Handler) RegisterCommands(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, h.handleHelp)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/status", bot.MatchTypeExact, h.handleStatus)
}

// HandleUpdate processes incoming non-command text messages
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	// Unregistered commands fall through to the default handler; they are
	// not ordinary text and get no reply
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	h.relay.HandleMessage(ctx, NewSender(b), eventFromMessage(update.Message))
}

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	event := eventFromMessage(update.Message)

	text := fmt.Sprintf(
		"Hello %s!\n\n"+
			"I'm a bot that responds to messages. Feel free to chat with me!\n\n"+
			"Use /help to see available commands.",
		event.FirstName,
	)

	if err := NewSender(b).ReplyToSender(ctx, event, text, false); err != nil {
		logCommandError("start", event, err)
	}
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	event := eventFromMessage(update.Message)

	text := "🤖 *Bot Help*\n\n" +
		"Available commands:\n" +
		"• /start - Start the bot\n" +
		"• /help - Show this help message\n" +
		"• /status - Show bot status\n\n" +
		"Just send me any message and I'll respond! 💬"

	if err := NewSender(b).ReplyToSender(ctx, event, text, true); err != nil {
		logCommandError("help", event, err)
	}
}

func (h *Handler) handleStatus(ctx context.Context, b *bot.Bot, update *models.Update) {
	event := eventFromMessage(update.Message)
	stats := h.relay.Stats()

	text := fmt.Sprintf(
		"📊 Bot Status:\n\nMessages processed: %d\nKey phrase hits: %d\nOwner notifications: %d\nOwner configured: %t",
		stats.Processed, stats.Triggered, stats.Notified, h.cfg.HasOwner(),
	)

	if err := NewSender(b).ReplyToSender(ctx, event, text, false); err != nil {
		logCommandError("status", event, err)
	}
}

// eventFromMessage converts a Telegram message into the relay's event type
func eventFromMessage(msg *models.Message) domain.MessageEvent {
	event := domain.MessageEvent{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      msg.Text,
	}

	if msg.From != nil {
		event.SenderID = msg.From.ID
		event.FirstName = msg.From.FirstName
		event.LastName = msg.From.LastName
		event.Username = msg.From.Username
	}

	if msg.Date != 0 {
		event.Date = time.Unix(int64(msg.Date), 0)
	}

	return event
}

func logCommandError(command string, event domain.MessageEvent, err error) {
	slog.Error("Error in command handler", "command", command, "error", err, "user_id", event.SenderID)
}
