package github

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"gitcards/pkg/logger"
)

// * Tracks the X-RateLimit-* headers GitHub sends on every response and
// * blocks new requests once the remaining budget is exhausted.
type rateLimitTransport struct {
	next       http.RoundTripper
	mu         sync.Mutex
	remaining  int
	reset      time.Time
	retryAfter time.Duration
	lowWarn    int
}

func newRateLimitTransport(next http.RoundTripper) *rateLimitTransport {
	return &rateLimitTransport{
		next:      next,
		remaining: 5000,
		reset:     time.Now(),
		lowWarn:   100,
	}
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.waitIfNeeded()

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	t.observe(resp.Header)

	// * One immediate retry on 429 after honoring Retry-After
	if resp.StatusCode == http.StatusTooManyRequests {
		wait := t.retryDelay()
		logger.Warn("[RateLimiter] Received 429 from %s. Retrying after %v...", req.URL.Path, wait)
		resp.Body.Close()
		time.Sleep(wait)

		resp, err = t.next.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		t.observe(resp.Header)
	}

	return resp, nil
}

func (t *rateLimitTransport) waitIfNeeded() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.remaining <= 0 && time.Now().Before(t.reset) {
		waitTime := time.Until(t.reset)
		logger.Warn("[RateLimiter] Rate limit exhausted. Waiting %v until reset at %v", waitTime, t.reset)
		time.Sleep(waitTime)
	}
}

func (t *rateLimitTransport) retryDelay() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.retryAfter > 0 {
		return t.retryAfter
	}
	return time.Second
}

func (t *rateLimitTransport) observe(headers http.Header) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if remaining := headers.Get("X-RateLimit-Remaining"); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			t.remaining = val
		}
	}

	if reset := headers.Get("X-RateLimit-Reset"); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil {
			t.reset = time.Unix(val, 0)
		}
	}

	if retry := headers.Get("Retry-After"); retry != "" {
		if seconds, err := strconv.Atoi(retry); err == nil {
			t.retryAfter = time.Duration(seconds) * time.Second
		}
	}

	if t.remaining < t.lowWarn {
		logger.Warn("[RateLimiter] Low rate limit: %d remaining. Resets at %s", t.remaining, t.reset.Format(time.RFC1123))
	}
}
