package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	GetSession = `SELECT id, email, token, pending_email, pending_order_number, pin_sent_at, flash, created_at, updated_at
				  FROM SESSIONS WHERE id=$1;`
	UpsertSession = `INSERT INTO SESSIONS (id, email, token, pending_email, pending_order_number, pin_sent_at, flash, created_at, updated_at)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
					 ON CONFLICT (id) DO UPDATE SET
					     email = EXCLUDED.email,
					     token = EXCLUDED.token,
					     pending_email = EXCLUDED.pending_email,
					     pending_order_number = EXCLUDED.pending_order_number,
					     pin_sent_at = EXCLUDED.pin_sent_at,
					     flash = EXCLUDED.flash,
					     updated_at = EXCLUDED.updated_at;`
	DeleteSession         = `DELETE FROM SESSIONS WHERE id=$1;`
	DeleteAnonymousBefore = `DELETE FROM SESSIONS WHERE token = '' AND updated_at < $1;`
)

type SessionDatabase struct {
	DB *Database
}

// Создание хранилища
func NewSessionsStorage(db *Database) SessionStorage {
	return &SessionDatabase{DB: db}
}

func (s *SessionDatabase) GetSession(ctx context.Context, id string) (*models.SessionData, error) {
	var (
		session   models.SessionData
		pinSentAt *time.Time
	)
	err := s.DB.Pool.QueryRow(ctx, GetSession, id).Scan(
		&session.ID,
		&session.Email,
		&session.Token,
		&session.PendingEmail,
		&session.PendingOrderNumber,
		&pinSentAt,
		&session.Flash,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if pinSentAt != nil {
		session.PinSentAt = *pinSentAt
	}
	return &session, nil
}

func (s *SessionDatabase) SaveSession(ctx context.Context, session models.SessionData) error {
	var pinSentAt *time.Time
	if !session.PinSentAt.IsZero() {
		pinSentAt = &session.PinSentAt
	}
	_, err := s.DB.Pool.Exec(ctx, UpsertSession,
		session.ID,
		session.Email,
		session.Token,
		session.PendingEmail,
		session.PendingOrderNumber,
		pinSentAt,
		session.Flash,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *SessionDatabase) DeleteSession(ctx context.Context, id string) error {
	if _, err := s.DB.Pool.Exec(ctx, DeleteSession, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PurgeAnonymous - удаление брошенных сессий без входа
func (s *SessionDatabase) PurgeAnonymous(ctx context.Context, before time.Time) (int64, error) {
	tag, err := s.DB.Pool.Exec(ctx, DeleteAnonymousBefore, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *SessionDatabase) Close() error {
	return s.DB.Close()
}
