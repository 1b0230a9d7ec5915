//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// LogLevel represents the configured log verbosity
// ENUM(debug,info,warning,error)
type LogLevel string

// Outcome represents the decision made for an incoming message
// ENUM(ignore,trigger,fallback)
type Outcome string
