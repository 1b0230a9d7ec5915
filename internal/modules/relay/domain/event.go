package domain

import (
	"context"
	"strings"
	"time"
)

// MessageEvent is a single incoming text message, already parsed by the
// delivery transport. The relay treats it as read-only.
type MessageEvent struct {
	ChatID    int64
	MessageID int
	SenderID  int64
	FirstName string
	LastName  string
	Username  string
	Text      string
	Date      time.Time // zero value means the transport had no timestamp
}

// FullName returns the sender's display name (first + optional last name).
func (e MessageEvent) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Sender is the outbound capability of a delivery transport. The relay
// and notifier are written against it so the same core works with any
// delivery mechanism.
type Sender interface {
	// ReplyToSender sends text back to the chat the event came from,
	// as a reply to the original message.
	ReplyToSender(ctx context.Context, event MessageEvent, text string, markdown bool) error

	// SendToAddress sends text to an explicit chat ID.
	SendToAddress(ctx context.Context, chatID int64, text string, markdown bool) error
}
