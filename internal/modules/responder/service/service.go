package service

import (
	"math/rand/v2"
	"strings"

	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/modules/relay/domain"
	"github.com/reshetovitsme/keyphrase-telegram-bot/internal/shared/config"
)

// genericAcknowledgement is sent when the fallback pool is empty at call
// time. Config guarantees a non-empty pool, so this is a last resort.
const genericAcknowledgement = "Thanks for your message!"

// Chooser picks a uniform index in [0, n). It exists as an interface so
// tests can make fallback selection deterministic.
type Chooser interface {
	Pick(n int) int
}

// randomChooser is the production Chooser. The top-level rand functions
// are safe for concurrent use, so one instance serves all messages.
type randomChooser struct{}

func (randomChooser) Pick(n int) int {
	return rand.IntN(n)
}

// Service decides how to respond to incoming message text
type Service struct {
	cfg     *config.Config
	chooser Chooser
}

// New creates a new responder service. A nil chooser selects uniformly
// at random.
func New(cfg *config.Config, chooser Chooser) *Service {
	if chooser == nil {
		chooser = randomChooser{}
	}
	return &Service{
		cfg:     cfg,
		chooser: chooser,
	}
}

// Select matches text against the key phrase and picks the outbound reply.
// The match is substring containment after normalization, so the key
// phrase may fire inside a longer word. Empty or whitespace-only text
// yields OutcomeIgnore with no reply.
func (s *Service) Select(text string) domain.Decision {
	if strings.TrimSpace(text) == "" {
		return domain.Decision{Outcome: domain.OutcomeIgnore}
	}

	normalized := s.cfg.Normalize(text)
	if strings.Contains(normalized, s.cfg.EffectiveKeyPhrase()) {
		return domain.Decision{
			Outcome: domain.OutcomeTrigger,
			Reply:   s.cfg.KeyResponse,
		}
	}

	return domain.Decision{
		Outcome: domain.OutcomeFallback,
		Reply:   s.pickFallback(),
	}
}

func (s *Service) pickFallback() string {
	pool := s.cfg.OtherResponses
	if len(pool) == 0 {
		return genericAcknowledgement
	}
	return pool[s.chooser.Pick(len(pool))]
}
