package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	notifierService "github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/notifier/service"
	relayService "github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/relay/service"
	responderService "github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/responder/service"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/shared/config"
)

func newTestServer() *Server {
	cfg := &config.Config{
		OwnerID:        99,
		KeyPhrase:      "QR код",
		KeyResponse:    "yes",
		OtherResponses: []string{"no"},
		HTTPPort:       "8080",
	}
	relay := relayService.New(cfg, responderService.New(cfg, nil), notifierService.New(cfg))
	return New(cfg, relay)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestHandleStatus(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.handleStatus(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var resp statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !resp.OwnerConfigured {
		t.Fatalf("expected owner_configured to be true")
	}
	if resp.Stats.Processed != 0 {
		t.Fatalf("expected zero processed messages, got %d", resp.Stats.Processed)
	}
}
