package services

import (
	"context"
	"strings"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	"github.com/dawid-walter/basketo-shopper-order/internal/validators"
)

// Publisher - канал доставки обращений в поддержку
type Publisher interface {
	Publish(ctx context.Context, message models.ContactMessage) error
}

type ContactService interface {
	Send(ctx context.Context, email, subject, message string) error
}

type Contact struct {
	Publisher Publisher
	Now       func() time.Time
}

// Создание сервиса
func NewContact(publisher Publisher) ContactService {
	return &Contact{Publisher: publisher, Now: time.Now}
}

// Send проверяет форму и передаёт обращение в поддержку
func (s *Contact) Send(ctx context.Context, email, subject, message string) error {
	if err := validators.CheckContact(subject, message); err != nil {
		return err
	}
	msg := models.ContactMessage{
		Email:   email,
		Subject: subject,
		Message: strings.TrimSpace(message),
		SentAt:  s.Now().UTC(),
	}
	if err := s.Publisher.Publish(ctx, msg); err != nil {
		logger.Error("Failed to publish contact message", "error", err)
		return gatewayFailure(err)
	}
	logger.Info("Contact message sent", "subject", subject)
	return nil
}
