package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/storage/mocks"
	"github.com/sony/gobreaker"
	"go.uber.org/mock/gomock"
)

func TestSessionJanitor_Purge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sessions := mocks.NewMockSessionStorage(ctrl)

	now := time.Date(2026, time.June, 6, 6, 0, 0, 0, time.UTC)
	janitor := NewSessionJanitor(sessions, 24*time.Hour, time.Hour)
	janitor.Now = func() time.Time { return now }

	sessions.EXPECT().PurgeAnonymous(gomock.Any(), now.Add(-24*time.Hour)).Return(int64(3), nil)
	janitor.Purge(context.Background())
}

func TestSessionJanitor_BreakerOpens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sessions := mocks.NewMockSessionStorage(ctrl)

	janitor := NewSessionJanitor(sessions, time.Hour, time.Hour)

	// после пяти сбоев подряд хранилище больше не опрашивается
	sessions.EXPECT().PurgeAnonymous(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused")).Times(5)
	for i := 0; i < 7; i++ {
		janitor.Purge(context.Background())
	}
	if janitor.Breaker.State() != gobreaker.StateOpen {
		t.Errorf("Expected open breaker, got %s", janitor.Breaker.State())
	}
}

func TestSessionJanitor_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sessions := mocks.NewMockSessionStorage(ctrl)
	sessions.EXPECT().PurgeAnonymous(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()

	janitor := NewSessionJanitor(sessions, time.Hour, time.Millisecond)
	janitor.Start(context.Background())
	time.Sleep(10 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		janitor.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected janitor to stop")
	}
}
