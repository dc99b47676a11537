package storage

import (
	"context"
	"sync"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/models"
)

// MemorySessions - сессии в памяти процесса
type MemorySessions struct {
	mu       sync.RWMutex
	sessions map[string]models.SessionData
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{sessions: make(map[string]models.SessionData)}
}

func (m *MemorySessions) GetSession(_ context.Context, id string) (*models.SessionData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (m *MemorySessions) SaveSession(_ context.Context, session models.SessionData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return nil
}

func (m *MemorySessions) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemorySessions) PurgeAnonymous(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var purged int64
	for id, session := range m.sessions {
		if session.Token == "" && session.UpdatedAt.Before(before) {
			delete(m.sessions, id)
			purged++
		}
	}
	return purged, nil
}

func (m *MemorySessions) Close() error {
	return nil
}
