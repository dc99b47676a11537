package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultRetryAfter = time.Minute

// RateLimiter ограничивает частоту запросов к внешнему сервису
// и приостанавливает их после ответа 429.
type RateLimiter struct {
	limiter *rate.Limiter
	limit   rate.Limit
	mu      sync.Mutex
	blocked time.Time
}

// NewRateLimiter - rps <= 0 означает отсутствие ограничения
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
		limit:   limit,
	}
}

// Wait ждёт разрешения на запрос.
// Пока действует блокировка после 429, сразу возвращает RateLimitError: пользователь не должен ждать минуту.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mu.Lock()
	blocked := rl.blocked
	rl.mu.Unlock()
	if wait := time.Until(blocked); wait > 0 {
		return &RateLimitError{RetryAfter: wait}
	}
	return rl.limiter.Wait(ctx)
}

func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	until := time.Now().Add(duration)
	if until.After(rl.blocked) {
		rl.blocked = until
	}
}

// Blocked - действует ли блокировка после 429
func (rl *RateLimiter) Blocked() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return time.Now().Before(rl.blocked)
}

func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return defaultRetryAfter
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return defaultRetryAfter
}
