package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	"github.com/dawid-walter/basketo-shopper-order/internal/storage"
)

// Store - сессия одного покупателя поверх хранилища.
// Email и токен всегда устанавливаются и сбрасываются вместе.
type Store struct {
	repo storage.SessionStorage
	data models.SessionData
	now  func() time.Time
}

// New создаёт пустую сессию с идентификатором id
func New(repo storage.SessionStorage, id string) *Store {
	now := time.Now().UTC()
	return &Store{
		repo: repo,
		data: models.SessionData{ID: id, CreatedAt: now, UpdatedAt: now},
		now:  time.Now,
	}
}

// Load читает сессию из хранилища; отсутствующая запись даёт пустую сессию
func Load(ctx context.Context, repo storage.SessionStorage, id string) (*Store, error) {
	data, err := repo.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return New(repo, id), nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &Store{repo: repo, data: *data, now: time.Now}, nil
}

func (s *Store) ID() string { return s.data.ID }

func (s *Store) Token() string { return s.data.Token }

func (s *Store) Email() string { return s.data.Email }

// IsAuthenticated - вход выполнен, если есть токен
func (s *Store) IsAuthenticated() bool { return s.data.Token != "" }

// SetSession сохраняет результат входа и сбрасывает состояние PIN-кода
func (s *Store) SetSession(ctx context.Context, email, token string) error {
	s.data.Email = email
	s.data.Token = token
	s.clearPinFlow()
	return s.save(ctx)
}

// Rotate переносит сессию на новый идентификатор, старая запись удаляется.
// Вызывается при входе, чтобы идентификатор анонимной сессии не стал идентификатором вошедшего покупателя.
func (s *Store) Rotate(ctx context.Context, id string) error {
	old := s.data.ID
	s.data.ID = id
	if err := s.save(ctx); err != nil {
		s.data.ID = old
		return err
	}
	if err := s.repo.DeleteSession(ctx, old); err != nil {
		return fmt.Errorf("failed to delete previous session: %w", err)
	}
	return nil
}

// Reload перечитывает сессию из хранилища: её мог изменить параллельный запрос
func (s *Store) Reload(ctx context.Context) error {
	data, err := s.repo.GetSession(ctx, s.data.ID)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}
	s.data = *data
	return nil
}

// ClearSession - выход: запись сессии удаляется целиком
func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.repo.DeleteSession(ctx, s.data.ID); err != nil {
		return err
	}
	now := s.now().UTC()
	s.data = models.SessionData{ID: s.data.ID, CreatedAt: now, UpdatedAt: now}
	return nil
}

// BeginPinFlow запоминает, куда отправлен PIN-код и когда
func (s *Store) BeginPinFlow(ctx context.Context, email, orderNumber string, sentAt time.Time) error {
	s.data.PendingEmail = email
	s.data.PendingOrderNumber = orderNumber
	s.data.PinSentAt = sentAt.UTC()
	return s.save(ctx)
}

// ResetPinFlow - возврат к первому шагу входа
func (s *Store) ResetPinFlow(ctx context.Context) error {
	s.clearPinFlow()
	return s.save(ctx)
}

func (s *Store) PendingEmail() string { return s.data.PendingEmail }

func (s *Store) PendingOrderNumber() string { return s.data.PendingOrderNumber }

func (s *Store) PinSentAt() time.Time { return s.data.PinSentAt }

// SetFlash - сообщение, которое покажется на следующей странице
func (s *Store) SetFlash(ctx context.Context, message string) error {
	s.data.Flash = message
	return s.save(ctx)
}

// PopFlash возвращает и стирает сообщение
func (s *Store) PopFlash(ctx context.Context) (string, error) {
	message := s.data.Flash
	if message == "" {
		return "", nil
	}
	s.data.Flash = ""
	return message, s.save(ctx)
}

// Touch продлевает жизнь сессии без входа
func (s *Store) Touch(ctx context.Context) error {
	return s.save(ctx)
}

func (s *Store) clearPinFlow() {
	s.data.PendingEmail = ""
	s.data.PendingOrderNumber = ""
	s.data.PinSentAt = time.Time{}
}

func (s *Store) save(ctx context.Context) error {
	s.data.UpdatedAt = s.now().UTC()
	if err := s.repo.SaveSession(ctx, s.data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

type contextKey struct{}

func NewContext(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, store)
}

func FromContext(ctx context.Context) (*Store, bool) {
	store, ok := ctx.Value(contextKey{}).(*Store)
	return store, ok && store != nil
}
