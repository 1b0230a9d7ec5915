package domain

import (
	"fmt"

	relayDomain "github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/relay/domain"
)

// Notification is the owner alert built for one key phrase hit. It is
// constructed per match and discarded after the send attempt.
type Notification struct {
	FullName string
	SenderID int64
	Username string
	Text     string
	Time     string
}

// New builds a notification from a message event. The message text is
// the original, non-normalized text.
func New(event relayDomain.MessageEvent) Notification {
	username := event.Username
	if username == "" {
		username = "No username"
	}

	timeStr := "Unknown"
	if !event.Date.IsZero() {
		timeStr = event.Date.UTC().Format("2006-01-02 15:04:05 UTC")
	}

	return Notification{
		FullName: event.FullName(),
		SenderID: event.SenderID,
		Username: username,
		Text:     event.Text,
		Time:     timeStr,
	}
}

// Render formats the notification as a Markdown message.
func (n Notification) Render() string {
	return fmt.Sprintf(
		"🔔 *Key Phrase Detected!*\n\n"+
			"👤 *User:* %s\n"+
			"🆔 *User ID:* `%d`\n"+
			"📝 *Username:* @%s\n"+
			"💬 *Message:* %s\n\n"+
			"🕐 *Time:* %s",
		n.FullName, n.SenderID, n.Username, n.Text, n.Time,
	)
}
