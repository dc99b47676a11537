package support

import (
	"context"

	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/models"
)

// LogPublisher пишет обращения в журнал, когда брокер не настроен
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, message models.ContactMessage) error {
	logger.Info("Support request",
		"email", message.Email,
		"subject", message.Subject,
		"message", message.Message,
		"sent_at", message.SentAt,
	)
	return nil
}

func (LogPublisher) Close() error { return nil }
