package services

import (
	"errors"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/client"
	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/sony/gobreaker"
)

// NewBreaker - автомат защиты вызовов торговой системы.
// Бизнес-отказы (неверный PIN, заказ не найден) не считаются сбоем сервиса.
func NewBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !isTransportError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

func isTransportError(err error) bool {
	var rateLimitErr *client.RateLimitError
	return errors.Is(err, client.ErrServiceUnavailable) || errors.As(err, &rateLimitErr)
}

// execute выполняет вызов через автомат и типизирует результат
func execute[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var zero T
	result, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return zero, err
	}
	value, ok := result.(T)
	if !ok {
		return zero, nil
	}
	return value, nil
}
