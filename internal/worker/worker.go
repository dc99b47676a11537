package worker

import (
	"context"
	"sync"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/storage"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "session-storage",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до хранилища
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// SessionJanitor - фоновая очистка брошенных сессий без входа
type SessionJanitor struct {
	Sessions     storage.SessionStorage
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	TTL          time.Duration
	PollInterval time.Duration
	Now          func() time.Time
}

// NewSessionJanitor - конструктор очистки; ttl - срок жизни сессии без входа
func NewSessionJanitor(sessions storage.SessionStorage, ttl, interval time.Duration) *SessionJanitor {
	return &SessionJanitor{
		Sessions:     sessions,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		TTL:          ttl,
		PollInterval: interval,
		Now:          time.Now,
	}
}

// Start - запускает очистку в фоне
func (w *SessionJanitor) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает очистку
func (w *SessionJanitor) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

func (w *SessionJanitor) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("SessionJanitor signal stop")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Purge(ctx)
		}
	}
}

// Purge - удаление сессий без входа, не менявшихся дольше TTL
func (w *SessionJanitor) Purge(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("Session storage unavailable. Waiting...", "breaker", w.Breaker.Name())
		return
	}

	purged, err := w.Breaker.Execute(func() (interface{}, error) {
		return w.Sessions.PurgeAnonymous(ctx, w.Now().Add(-w.TTL))
	})
	if err != nil {
		logger.Error("Error purging sessions", "error", err)
		return
	}
	if n, ok := purged.(int64); ok && n > 0 {
		logger.Info("Anonymous sessions purged", "count", n)
	}
}
