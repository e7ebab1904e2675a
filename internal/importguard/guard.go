package importguard

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"teamsched/pkg/log"
)

// Config tunes the guard. Zero values fall back to sensible defaults.
type Config struct {
	RateLimitPerMin int           // import requests allowed per client per minute
	DedupeTTL       time.Duration // window in which an identical paste is rejected
	MaxClients      int           // LRU capacity for per-client limiters
}

const (
	defaultRateLimitPerMin = 6
	defaultDedupeTTL       = 30 * time.Second
	defaultMaxClients      = 1000
)

// Guard throttles import requests and rejects back-to-back identical pastes,
// which are almost always an accidental double submit.
type Guard struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	seen     *expirable.LRU[string, struct{}]
	rate     rate.Limit
	burst    int
}

func New(cfg Config, l log.Logger) *Guard {
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = defaultRateLimitPerMin
	}
	if cfg.DedupeTTL <= 0 {
		cfg.DedupeTTL = defaultDedupeTTL
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = defaultMaxClients
	}

	burst := cfg.RateLimitPerMin / 2
	if burst < 1 {
		burst = 1
	}

	return &Guard{
		l:        l,
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.MaxClients, nil, 5*time.Minute),
		seen:     expirable.NewLRU[string, struct{}](cfg.MaxClients, nil, cfg.DedupeTTL),
		rate:     rate.Limit(float64(cfg.RateLimitPerMin) / 60.0),
		burst:    burst,
	}
}

// Check returns an error when the client is over its rate limit or the exact
// same text was imported within the dedupe window. Fingerprints are written
// by Remember, not here, so an import that fails at the store does not block
// its own retry.
func (g *Guard) Check(clientIP, text string) error {
	limiter, ok := g.limiters.Get(clientIP)
	if !ok {
		limiter = rate.NewLimiter(g.rate, g.burst)
		g.limiters.Add(clientIP, limiter)
	}
	if !limiter.Allow() {
		return fmt.Errorf("too many imports from %s, slow down", clientIP)
	}

	if _, dup := g.seen.Get(fingerprint(clientIP, text)); dup {
		return fmt.Errorf("identical text was just imported, ignoring duplicate paste")
	}

	return nil
}

// Remember records the paste fingerprint after a successful import so an
// identical re-submit within the dedupe window is rejected.
func (g *Guard) Remember(clientIP, text string) {
	g.seen.Add(fingerprint(clientIP, text), struct{}{})
}

func fingerprint(clientIP, text string) string {
	sum := sha256.Sum256([]byte(clientIP + "\x00" + text))
	return hex.EncodeToString(sum[:])
}
