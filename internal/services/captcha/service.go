package captcha

import (
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luckyroad/casinohub/internal/dependencies/clock"
	"github.com/luckyroad/casinohub/internal/dependencies/random"
	"github.com/luckyroad/casinohub/internal/model"
)

const (
	// CodeLength is the number of characters in a captcha code
	CodeLength = 4
	// CodeAlphabet avoids characters that are hard to distinguish when rendered
	CodeAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"
)

// Challenge is an issued captcha: an opaque key plus a rendered image
type Challenge struct {
	Key string
	// Img is an inline data URI holding the rendered SVG
	Img string
}

type entry struct {
	answer    string
	expiresAt time.Time
}

// Config holds configuration for the captcha service
type Config struct {
	TTL time.Duration
}

// DefaultConfig returns default captcha configuration
func DefaultConfig() Config {
	return Config{
		TTL: 5 * time.Minute,
	}
}

// Service issues and verifies single-use captcha challenges
type Service struct {
	clock  clock.Clock
	random random.Random
	ttl    time.Duration

	mu      sync.Mutex
	entries map[string]entry
}

// New creates a new captcha Service
func New(clock clock.Clock, random random.Random, cfg Config) *Service {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	return &Service{
		clock:   clock,
		random:  random,
		ttl:     cfg.TTL,
		entries: make(map[string]entry),
	}
}

// Create issues a new challenge and stores its answer until TTL
func (s *Service) Create() Challenge {
	code := s.random.String(CodeLength, CodeAlphabet)
	key := strings.ReplaceAll(uuid.New().String(), "-", "")

	s.mu.Lock()
	s.entries[key] = entry{
		answer:    strings.ToLower(code),
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return Challenge{
		Key: key,
		Img: "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(renderSVG(code)),
	}
}

// Verify checks an answer against the stored challenge. The challenge is
// consumed on a match; expired or unknown keys fail the same way so callers
// cannot probe for valid keys.
func (s *Service) Verify(key, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return model.ErrCaptchaNotFound
	}
	if s.clock.Now().After(e.expiresAt) {
		delete(s.entries, key)
		return model.ErrCaptchaNotFound
	}
	if e.answer != strings.ToLower(strings.TrimSpace(answer)) {
		return model.ErrCaptchaMismatch
	}

	delete(s.entries, key)
	return nil
}

// CleanExpired removes expired challenges (call periodically)
func (s *Service) CleanExpired() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, key)
		}
	}
}

// renderSVG draws the code as plain SVG text. Good enough for a local mock;
// a real deployment would sit behind a proper captcha provider.
func renderSVG(code string) []byte {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="120" height="40" viewBox="0 0 120 40">`)
	b.WriteString(`<rect width="120" height="40" fill="#f0f0f0"/>`)
	for i, r := range code {
		x := 18 + i*24
		fmt.Fprintf(&b, `<text x="%d" y="28" font-size="24" font-family="monospace" fill="#333">%c</text>`, x, r)
	}
	b.WriteString(`</svg>`)
	return []byte(b.String())
}
