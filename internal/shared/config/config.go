package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/relay/domain"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	BotToken       string          `koanf:"bot_token"`
	OwnerID        int64           `koanf:"-"` // parsed manually so a malformed value degrades to a warning
	KeyPhrase      string          `koanf:"key_phrase"`
	KeyResponse    string          `koanf:"key_response"`
	OtherResponses []string        `koanf:"other_responses"`
	CaseSensitive  bool            `koanf:"case_sensitive"`
	LogLevel       domain.LogLevel `koanf:"log_level"`
	HTTPPort       string          `koanf:"http_port"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	// Use lo.Find to find the first existing config file
	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = koanfjson.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("key_phrase") {
		k.Set("key_phrase", "QR код")
	}
	if !k.Exists("key_response") {
		k.Set("key_response", "Это то, о чём я говорил! Ура! Ты прошел мой МЕГА квест! Поздравляю! Теперь ты можешь получить свой приз!")
	}
	if !k.Exists("case_sensitive") {
		k.Set("case_sensitive", false)
	}
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// Parse OwnerID manually: env vars always arrive as strings
	if ownerID := k.Get("owner_id"); ownerID != nil {
		switch v := ownerID.(type) {
		case int64:
			cfg.OwnerID = v
		case int:
			cfg.OwnerID = int64(v)
		case float64:
			cfg.OwnerID = int64(v)
		case string:
			id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				slog.Warn("Invalid OWNER_ID format, owner notifications disabled", "owner_id", v)
			} else {
				cfg.OwnerID = id
			}
		}
	}

	// Parse OtherResponses: a config file may carry a real list, while
	// an env var is a single string that goes through the parse chain
	switch v := k.Get("other_responses").(type) {
	case nil:
		cfg.OtherResponses = DefaultOtherResponses()
	case string:
		cfg.OtherResponses = ParseOtherResponses(v)
	case []interface{}:
		cfg.OtherResponses = lo.FilterMap(v, func(item interface{}, _ int) (string, bool) {
			s, ok := item.(string)
			if !ok {
				return "", false
			}
			s = strings.TrimSpace(s)
			return s, s != ""
		})
	}

	// Parse LogLevel from string if needed
	if levelStr := k.String("log_level"); levelStr != "" {
		if level, err := domain.ParseLogLevel(levelStr); err == nil {
			cfg.LogLevel = level
		} else {
			slog.Warn("Invalid LOG_LEVEL, using info", "log_level", levelStr)
			cfg.LogLevel = domain.LogLevelInfo
		}
	} else {
		cfg.LogLevel = domain.LogLevelInfo
	}

	cfg.validate()

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, errors.ErrMissingBotToken
	}

	return &cfg, nil
}

// validate substitutes defaults for empty optional values and logs a
// warning for each substitution. Required fields are checked by the caller.
func (c *Config) validate() {
	if c.OwnerID == 0 {
		slog.Warn("OWNER_ID is not set, owner notifications will be skipped")
	}

	if c.KeyPhrase == "" {
		slog.Warn("KEY_PHRASE is empty, using default", "default", "secret")
		c.KeyPhrase = "secret"
	}

	if c.KeyResponse == "" {
		slog.Warn("KEY_RESPONSE is empty, using default response")
		c.KeyResponse = "This is the prepared response for the key phrase!"
	}

	if len(c.OtherResponses) == 0 {
		slog.Warn("OTHER_RESPONSES is empty, using default responses")
		c.OtherResponses = GenericResponses()
	}

	slog.Info("Configuration loaded",
		"key_phrase", c.KeyPhrase,
		"case_sensitive", c.CaseSensitive,
		"other_responses_count", len(c.OtherResponses),
		"owner_configured", c.OwnerID != 0,
	)
}

// HasOwner reports whether an owner address is configured.
func (c *Config) HasOwner() bool {
	return c.OwnerID != 0
}

// EffectiveKeyPhrase returns the key phrase in the form used for comparison.
// It must apply the same casing rule as Normalize so matching stays consistent.
func (c *Config) EffectiveKeyPhrase() string {
	if c.CaseSensitive {
		return c.KeyPhrase
	}
	return strings.ToLower(c.KeyPhrase)
}

// Normalize folds text for comparison according to the case sensitivity setting.
func (c *Config) Normalize(text string) string {
	if c.CaseSensitive {
		return text
	}
	return strings.ToLower(text)
}

// SlogLevel maps the configured log level onto slog's levels.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case domain.LogLevelDebug:
		return slog.LevelDebug
	case domain.LogLevelWarning:
		return slog.LevelWarn
	case domain.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseOtherResponses parses a raw OTHER_RESPONSES value into a reply pool.
// Formats are tried in order until one yields a non-empty result:
// JSON string array, comma-separated, newline-separated, whole value as a
// single entry. An empty raw value maps to the built-in default pool.
func ParseOtherResponses(raw string) []string {
	if raw == "" {
		return DefaultOtherResponses()
	}

	// Try to parse as a JSON array first
	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		if responses := trimNonEmpty(parsed); len(responses) > 0 {
			return responses
		}
	}

	// Try comma-separated values
	if strings.Contains(raw, ",") {
		if responses := trimNonEmpty(strings.Split(raw, ",")); len(responses) > 0 {
			return responses
		}
	}

	// Try newline-separated values
	if strings.Contains(raw, "\n") {
		if responses := trimNonEmpty(strings.Split(raw, "\n")); len(responses) > 0 {
			return responses
		}
	}

	// If all else fails, treat as a single response
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return []string{trimmed}
	}
	return GenericResponses()
}

func trimNonEmpty(values []string) []string {
	return lo.FilterMap(values, func(value string, _ int) (string, bool) {
		value = strings.TrimSpace(value)
		return value, value != ""
	})
}

// DefaultOtherResponses is the pool used when OTHER_RESPONSES is not set.
func DefaultOtherResponses() []string {
	return []string{
		"Ты точно попал туда, куда надо?",
		"Что?",
		"Подумай ещё.",
		"Не правильно!",
		"Ты не угадал!",
	}
}

// GenericResponses is the pool used when a configured value parses to nothing.
func GenericResponses() []string {
	return []string{
		"Hello! How can I help you today?",
		"Thanks for your message!",
		"I'm here if you need anything else.",
		"Have a great day!",
		"Thanks for reaching out!",
	}
}
