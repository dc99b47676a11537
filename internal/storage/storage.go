package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/config"
	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	"github.com/sethvargo/go-retry"
)

//go:generate mockgen -destination=mocks/sessions.go -package=mocks . SessionStorage

// SessionStorage - хранилище сессий покупателей
type SessionStorage interface {
	GetSession(ctx context.Context, id string) (*models.SessionData, error)
	SaveSession(ctx context.Context, session models.SessionData) error
	DeleteSession(ctx context.Context, id string) error
	// PurgeAnonymous удаляет сессии без токена, не изменявшиеся с момента before
	PurgeAnonymous(ctx context.Context, before time.Time) (int64, error)
	Close() error
}

var ErrSessionNotFound = errors.New("session not found")

// NewStorage выбирает хранилище по настройкам: PostgreSQL, Redis или память
func NewStorage(ctx context.Context, cfg config.StorageConfig) (SessionStorage, error) {
	switch {
	case cfg.DatabaseDSN != "":
		db, err := NewDatabase(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := connect(ctx, "postgres", db.Ping); err != nil {
			db.Close()
			return nil, err
		}
		if err := db.Initialize(ctx); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("Session storage: postgres")
		return NewSessionsStorage(db), nil
	case cfg.RedisAddr != "":
		sessions := NewRedisSessions(cfg.RedisAddr, cfg.AnonSessionTTL)
		if err := connect(ctx, "redis", sessions.Ping); err != nil {
			sessions.Close()
			return nil, err
		}
		logger.Info("Session storage: redis", "addr", cfg.RedisAddr)
		return sessions, nil
	default:
		logger.Info("Session storage: memory")
		return NewMemorySessions(), nil
	}
}

// connect - проверка соединения с повторами при старте
func connect(ctx context.Context, name string, ping func(context.Context) error) error {
	backoff := retry.WithMaxRetries(5, retry.NewExponential(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := ping(ctx); err != nil {
			logger.Warn("Storage is not ready", "storage", name, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to connect %s: %w", name, err)
	}
	return nil
}
