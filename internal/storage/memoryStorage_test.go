package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/config"
	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestMemorySessions(t *testing.T) {
	ctx := context.Background()
	sessions := NewMemorySessions()

	if _, err := sessions.GetSession(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got: '%v'", err)
	}

	now := time.Date(2026, time.January, 10, 10, 0, 0, 0, time.UTC)
	session := models.SessionData{ID: "s1", Email: "user@example.com", Token: "tkn", CreatedAt: now, UpdatedAt: now}
	if err := sessions.SaveSession(ctx, session); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	got, err := sessions.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if diff := cmp.Diff(session, *got); diff != "" {
		t.Errorf("session mismatch:\n %s", diff)
	}

	if err := sessions.DeleteSession(ctx, "s1"); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if _, err := sessions.GetSession(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after delete, got: '%v'", err)
	}
}

func TestMemorySessions_PurgeAnonymous(t *testing.T) {
	ctx := context.Background()
	sessions := NewMemorySessions()
	now := time.Date(2026, time.January, 10, 10, 0, 0, 0, time.UTC)

	testCases := []models.SessionData{
		{ID: "old-anon", UpdatedAt: now.Add(-48 * time.Hour)},
		{ID: "new-anon", UpdatedAt: now.Add(-time.Hour)},
		{ID: "old-auth", Token: "tkn", UpdatedAt: now.Add(-48 * time.Hour)},
	}
	for _, session := range testCases {
		_ = sessions.SaveSession(ctx, session)
	}

	purged, err := sessions.PurgeAnonymous(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if purged != 1 {
		t.Errorf("Expected 1 purged session, got %d", purged)
	}
	if _, err := sessions.GetSession(ctx, "old-anon"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected old anonymous session to be purged")
	}
	for _, id := range []string{"new-anon", "old-auth"} {
		if _, err := sessions.GetSession(ctx, id); err != nil {
			t.Errorf("Expected session %s to survive, got: '%v'", id, err)
		}
	}
}

func TestNewStorage_Memory(t *testing.T) {
	sessions, err := NewStorage(context.Background(), config.DefaultConfig().Storage)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	defer sessions.Close()
	if _, ok := sessions.(*MemorySessions); !ok {
		t.Errorf("Expected memory storage without DSN and redis address, got %T", sessions)
	}
}
