package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	relayService "github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/relay/service"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/shared/config"
	sloghttp "github.com/samber/slog-http"
)

// Server exposes operational endpoints for the bot
type Server struct {
	cfg       *config.Config
	relay     *relayService.Service
	logger    *slog.Logger
	startedAt time.Time
}

// New creates a new HTTP server
func New(cfg *config.Config, relay *relayService.Service) *Server {
	return &Server{
		cfg:       cfg,
		relay:     relay,
		logger:    slog.Default(),
		startedAt: time.Now(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	// Bot status endpoint
	mux.HandleFunc("GET /status", s.handleStatus)

	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Ops server starting", "addr", addr)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

type statusResponse struct {
	UptimeSeconds   int64              `json:"uptime_seconds"`
	OwnerConfigured bool               `json:"owner_configured"`
	CaseSensitive   bool               `json:"case_sensitive"`
	Stats           relayService.Stats `json:"stats"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		UptimeSeconds:   int64(time.Since(s.startedAt).Seconds()),
		OwnerConfigured: s.cfg.HasOwner(),
		CaseSensitive:   s.cfg.CaseSensitive,
		Stats:           s.relay.Stats(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("Error encoding status response", "error", err)
	}
}
