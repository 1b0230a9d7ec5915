package errors

import "errors"

var (
	ErrMissingBotToken = errors.New("BOT_TOKEN environment variable is required")
	ErrMissingOwnerID  = errors.New("OWNER_ID environment variable is required")
)
