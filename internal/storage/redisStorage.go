package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	"github.com/go-redis/redis/v8"
)

// RedisSessions - сессии в Redis, значение хранится в JSON.
// Сессии без входа живут anonTTL и удаляются самим Redis.
type RedisSessions struct {
	client  *redis.Client
	anonTTL time.Duration
}

func NewRedisSessions(addr string, anonTTL time.Duration) *RedisSessions {
	return &RedisSessions{
		client:  redis.NewClient(&redis.Options{Addr: addr}),
		anonTTL: anonTTL,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (r *RedisSessions) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisSessions) GetSession(ctx context.Context, id string) (*models.SessionData, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	var session models.SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (r *RedisSessions) SaveSession(ctx context.Context, session models.SessionData) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	// сессия после входа не истекает
	var expiration time.Duration
	if session.Token == "" {
		expiration = r.anonTTL
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisSessions) DeleteSession(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PurgeAnonymous ничего не делает: анонимные сессии истекают по TTL
func (r *RedisSessions) PurgeAnonymous(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func (r *RedisSessions) Close() error {
	return r.client.Close()
}
