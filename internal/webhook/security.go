package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"agentic-task-manager/pkg/log"
)

// SecurityValidator validates webhook requests.
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter
	l           log.Logger
}

func NewSecurityValidator(config SecurityConfig, l log.Logger) *SecurityValidator {
	return &SecurityValidator{
		config:      config,
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
		l:           l,
	}
}

// VerifySignature checks the X-Hub-Signature-256 header against the payload.
// With no secret configured every request passes; this is a configuration
// choice, not a per-request bypass. All parse failures count as invalid.
func (v *SecurityValidator) VerifySignature(ctx context.Context, payload []byte, signature string) bool {
	if v.config.Secret == "" {
		return true
	}

	if signature == "" {
		v.l.Warn(ctx, "webhook: no signature header provided")
		return false
	}

	// GitHub sends signature as "<algorithm>=<hex>"
	algorithm, digest, found := strings.Cut(signature, "=")
	if !found {
		v.l.Warnf(ctx, "webhook: malformed signature header %q", signature)
		return false
	}
	if algorithm != "sha256" {
		v.l.Warnf(ctx, "webhook: unsupported signature algorithm %q", algorithm)
		return false
	}

	// Decode hex to bytes for comparison on raw digests
	expectedSig, err := hex.DecodeString(digest)
	if err != nil {
		v.l.Warnf(ctx, "webhook: invalid signature hex encoding: %v", err)
		return false
	}

	mac := hmac.New(sha256.New, []byte(v.config.Secret))
	mac.Write(payload)
	actualSig := mac.Sum(nil)

	// Constant-time comparison
	return hmac.Equal(expectedSig, actualSig)
}

// CheckRateLimit enforces per-source rate limiting.
func (v *SecurityValidator) CheckRateLimit(source string) error {
	return v.rateLimiter.Allow(source)
}

// rateLimiter tracks per-source token buckets with auto-cleanup.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max unique sources
			nil,           // no eviction callback
			time.Minute*5, // TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
