package support

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sethvargo/go-retry"
)

// channel - часть amqp.Channel, нужная для публикации
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// RabbitPublisher публикует обращения в очередь поддержки
type RabbitPublisher struct {
	mu    sync.Mutex
	url   string
	queue string
	conn  *amqp.Connection
	ch    channel
	// openChannel открывает канал на текущем соединении и объявляет очередь
	openChannel func() (channel, error)
}

// NewRabbitPublisher подключается к брокеру и объявляет очередь
func NewRabbitPublisher(ctx context.Context, url, queue string) (*RabbitPublisher, error) {
	p := &RabbitPublisher{url: url, queue: queue}
	p.openChannel = p.declareChannel

	backoff := retry.WithMaxRetries(5, retry.NewExponential(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := p.connect(); err != nil {
			logger.Warn("RabbitMQ is not ready", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect rabbitmq: %w", err)
	}
	return p, nil
}

func (p *RabbitPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}
	if p.conn != nil {
		p.conn.Close()
	}
	p.conn = conn
	ch, err := p.openChannel()
	if err != nil {
		conn.Close()
		return err
	}
	p.ch = ch
	return nil
}

func (p *RabbitPublisher) declareChannel() (channel, error) {
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	); err != nil {
		ch.Close()
		return nil, err
	}
	return ch, nil
}

// ensureChannel восстанавливает соединение или канал перед публикацией.
// Ошибка на уровне канала закрывает только канал, соединение остаётся открытым.
func (p *RabbitPublisher) ensureChannel() error {
	if p.conn != nil && p.conn.IsClosed() {
		logger.Warn("RabbitMQ connection closed, reconnecting")
		if err := p.connect(); err != nil {
			return fmt.Errorf("failed to reconnect rabbitmq: %w", err)
		}
		return nil
	}
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	logger.Warn("RabbitMQ channel closed, reopening")
	ch, err := p.openChannel()
	if err != nil {
		return fmt.Errorf("failed to reopen rabbitmq channel: %w", err)
	}
	p.ch = ch
	return nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, message models.ContactMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal contact message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return err
	}

	err = p.ch.PublishWithContext(
		ctx,
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    message.SentAt,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish contact message: %w", err)
	}
	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
