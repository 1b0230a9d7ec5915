package config

import (
	stderrors "errors"
	"os"
	"slices"
	"testing"

	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/relay/domain"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/shared/errors"
)

// unsetenv removes a variable for the duration of the test. t.Setenv is
// used first so the original value is restored afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func setupRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("OWNER_ID", "42")
	for _, key := range []string{"KEY_PHRASE", "KEY_RESPONSE", "OTHER_RESPONSES", "CASE_SENSITIVE", "LOG_LEVEL", "HTTP_PORT"} {
		unsetenv(t, key)
	}
}

func TestLoadDefaults(t *testing.T) {
	setupRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.BotToken != "test-token" {
		t.Fatalf("unexpected bot token: %q", cfg.BotToken)
	}
	if cfg.OwnerID != 42 {
		t.Fatalf("expected owner id 42, got %d", cfg.OwnerID)
	}
	if cfg.KeyPhrase != "QR код" {
		t.Fatalf("expected default key phrase, got %q", cfg.KeyPhrase)
	}
	if cfg.KeyResponse == "" {
		t.Fatalf("expected default key response, got empty string")
	}
	if len(cfg.OtherResponses) != 5 {
		t.Fatalf("expected 5 default responses, got %d", len(cfg.OtherResponses))
	}
	if cfg.CaseSensitive {
		t.Fatalf("expected case sensitivity to default to false")
	}
	if cfg.LogLevel != domain.LogLevelInfo {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default http port, got %q", cfg.HTTPPort)
	}
}

func TestLoadMissingToken(t *testing.T) {
	setupRequired(t)
	unsetenv(t, "BOT_TOKEN")

	if _, err := Load(); !stderrors.Is(err, errors.ErrMissingBotToken) {
		t.Fatalf("expected ErrMissingBotToken, got %v", err)
	}
}

func TestLoadInvalidOwnerID(t *testing.T) {
	setupRequired(t)
	t.Setenv("OWNER_ID", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HasOwner() {
		t.Fatalf("expected owner to be unset, got %d", cfg.OwnerID)
	}
}

func TestLoadEmptyOptionalValues(t *testing.T) {
	setupRequired(t)
	t.Setenv("KEY_PHRASE", "")
	t.Setenv("KEY_RESPONSE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.KeyPhrase != "secret" {
		t.Fatalf("expected fallback key phrase, got %q", cfg.KeyPhrase)
	}
	if cfg.KeyResponse != "This is the prepared response for the key phrase!" {
		t.Fatalf("unexpected fallback key response: %q", cfg.KeyResponse)
	}
}

func TestLoadOverrides(t *testing.T) {
	setupRequired(t)
	t.Setenv("KEY_PHRASE", "secret word")
	t.Setenv("KEY_RESPONSE", "you found it")
	t.Setenv("OTHER_RESPONSES", "nope,try again")
	t.Setenv("CASE_SENSITIVE", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.KeyPhrase != "secret word" {
		t.Fatalf("unexpected key phrase: %q", cfg.KeyPhrase)
	}
	if cfg.KeyResponse != "you found it" {
		t.Fatalf("unexpected key response: %q", cfg.KeyResponse)
	}
	if want := []string{"nope", "try again"}; !slices.Equal(cfg.OtherResponses, want) {
		t.Fatalf("unexpected responses: %v", cfg.OtherResponses)
	}
	if !cfg.CaseSensitive {
		t.Fatalf("expected case sensitivity enabled")
	}
	if cfg.LogLevel != domain.LogLevelDebug {
		t.Fatalf("expected debug log level, got %s", cfg.LogLevel)
	}
	if cfg.HTTPPort != "9090" {
		t.Fatalf("unexpected http port: %q", cfg.HTTPPort)
	}
}

func TestLoadInvalidLogLevel(t *testing.T) {
	setupRequired(t)
	t.Setenv("LOG_LEVEL", "chatty")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogLevel != domain.LogLevelInfo {
		t.Fatalf("expected info log level, got %s", cfg.LogLevel)
	}
}

func TestParseOtherResponses(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "CommaSeparated",
			raw:  "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "NewlineSeparated",
			raw:  "a\nb",
			want: []string{"a", "b"},
		},
		{
			name: "Empty",
			raw:  "",
			want: DefaultOtherResponses(),
		},
		{
			name: "SingleValue",
			raw:  "single",
			want: []string{"single"},
		},
		{
			name: "JSONArray",
			raw:  `["first", "second"]`,
			want: []string{"first", "second"},
		},
		{
			name: "CommaWithSpacesAndEmpties",
			raw:  " a , ,b ",
			want: []string{"a", "b"},
		},
		{
			name: "WhitespaceOnly",
			raw:  "   ",
			want: GenericResponses(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOtherResponses(tt.raw)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("ParseOtherResponses(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalization(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		cfg := &Config{KeyPhrase: "QR код", CaseSensitive: false}

		if got := cfg.EffectiveKeyPhrase(); got != "qr код" {
			t.Fatalf("unexpected effective key phrase: %q", got)
		}
		if cfg.Normalize("QR КОД") != cfg.Normalize("qr код") {
			t.Fatalf("normalization should fold case")
		}
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		cfg := &Config{KeyPhrase: "QR код", CaseSensitive: true}

		if got := cfg.EffectiveKeyPhrase(); got != "QR код" {
			t.Fatalf("unexpected effective key phrase: %q", got)
		}
		if cfg.Normalize("QR КОД") != "QR КОД" {
			t.Fatalf("case-sensitive normalization must not change text")
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		cfg := &Config{CaseSensitive: false}
		for _, s := range []string{"HeLLo", "QR КОД", "уже строчные", ""} {
			once := cfg.Normalize(s)
			if twice := cfg.Normalize(once); twice != once {
				t.Fatalf("normalize not idempotent for %q: %q != %q", s, once, twice)
			}
		}
	})
}
