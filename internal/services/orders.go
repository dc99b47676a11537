package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dawid-walter/basketo-shopper-order/internal/client"
	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	"github.com/dawid-walter/basketo-shopper-order/internal/validators"
	"github.com/sony/gobreaker"
)

type OrdersGateway interface {
	ListOrders(ctx context.Context, token string) ([]models.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
}

type OrdersService interface {
	GetOrders(ctx context.Context, token string) ([]models.Order, error)
	GetOrder(ctx context.Context, orderNumber string) (*models.Order, error)
}

type Orders struct {
	Gateway OrdersGateway
	Breaker *gobreaker.CircuitBreaker
}

// Создание сервиса
func NewOrders(gateway OrdersGateway) OrdersService {
	return &Orders{Gateway: gateway, Breaker: NewBreaker("commerce-orders")}
}

// GetOrders - заказы пользователя сессии.
// Отказ сервиса в авторизации означает, что токен больше не действует.
func (s *Orders) GetOrders(ctx context.Context, token string) ([]models.Order, error) {
	if token == "" {
		return nil, ErrSessionExpired
	}
	orders, err := execute(s.Breaker, func() ([]models.Order, error) {
		return s.Gateway.ListOrders(ctx, token)
	})
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			logger.Warn("Access token rejected")
			return nil, ErrSessionExpired
		}
		logger.Error("Failed to get orders", "error", err)
		return nil, classify(err)
	}
	return orders, nil
}

// GetOrder - заказ по номеру
func (s *Orders) GetOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if err := validators.CheckOrderNumber(orderNumber); err != nil {
		return nil, ErrOrderNotFound
	}
	order, err := execute(s.Breaker, func() (*models.Order, error) {
		return s.Gateway.GetOrderByNumber(ctx, orderNumber)
	})
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			logger.Info("Order not found", "order", orderNumber)
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to get order", "order", orderNumber, "error", err)
		return nil, classify(err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
