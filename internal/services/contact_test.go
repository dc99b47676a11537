package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	"github.com/dawid-walter/basketo-shopper-order/internal/services/mocks"
	"github.com/dawid-walter/basketo-shopper-order/internal/validators"
	"go.uber.org/mock/gomock"
)

func TestContact_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPublisher := mocks.NewMockPublisher(ctrl)

	sentAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	contact := &Contact{Publisher: mockPublisher, Now: func() time.Time { return sentAt }}

	mockPublisher.EXPECT().Publish(gomock.Any(), models.ContactMessage{
		Email:   "user@example.com",
		Subject: "shipping",
		Message: "Where is my parcel?",
		SentAt:  sentAt,
	}).Return(nil)
	if err := contact.Send(context.Background(), "user@example.com", "shipping", "  Where is my parcel?\n"); err != nil {
		t.Errorf("Expected no error, got: '%v'", err)
	}

	if err := contact.Send(context.Background(), "user@example.com", "gifts", "text"); !errors.Is(err, validators.ErrValidation) {
		t.Errorf("Expected validation error, got: '%v'", err)
	}

	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))
	if err := contact.Send(context.Background(), "user@example.com", "other", "text"); !errors.Is(err, ErrGatewayFailure) {
		t.Errorf("Expected gateway failure, got: '%v'", err)
	}
}
