package telegram

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/relay/domain"
)

// botSender adapts *bot.Bot to the relay's Sender capability.
type botSender struct {
	b *bot.Bot
}

// NewSender wraps a Telegram bot as a delivery capability.
func NewSender(b *bot.Bot) domain.Sender {
	return &botSender{b: b}
}

func (s *botSender) ReplyToSender(ctx context.Context, event domain.MessageEvent, text string, markdown bool) error {
	params := &bot.SendMessageParams{
		ChatID: event.ChatID,
		Text:   text,
		ReplyParameters: &models.ReplyParameters{
			MessageID: event.MessageID,
		},
	}
	if markdown {
		params.ParseMode = models.ParseModeMarkdownV1
	}

	_, err := s.b.SendMessage(ctx, params)
	return err
}

func (s *botSender) SendToAddress(ctx context.Context, chatID int64, text string, markdown bool) error {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if markdown {
		params.ParseMode = models.ParseModeMarkdownV1
	}

	_, err := s.b.SendMessage(ctx, params)
	return err
}
