package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	"github.com/dawid-walter/basketo-shopper-order/internal/validators"
	"github.com/sony/gobreaker"
)

//go:generate mockgen -destination=mocks/gateways.go -package=mocks . AuthGateway,OrdersGateway,Publisher

// PinResendCooldown - пауза перед повторной отправкой PIN-кода
const PinResendCooldown = 60 * time.Second

type AuthGateway interface {
	RequestPin(ctx context.Context, email string) error
	RequestPinByOrderNumber(ctx context.Context, orderNumber string) error
	VerifyPin(ctx context.Context, email, pin string) (*models.VerifyPinResponse, error)
}

type AuthService interface {
	RequestPin(ctx context.Context, email string) error
	RequestPinByOrderNumber(ctx context.Context, orderNumber string) error
	VerifyPin(ctx context.Context, email, pin string) (string, error)
}

type Auth struct {
	Gateway AuthGateway
	Breaker *gobreaker.CircuitBreaker
}

// Создание сервиса
func NewAuth(gateway AuthGateway) AuthService {
	return &Auth{Gateway: gateway, Breaker: NewBreaker("commerce-auth")}
}

// RequestPin запрашивает PIN-код на email. Некорректный email отклоняется до запроса.
func (s *Auth) RequestPin(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := validators.CheckEmail(email); err != nil {
		return err
	}
	_, err := execute(s.Breaker, func() (struct{}, error) {
		return struct{}{}, s.Gateway.RequestPin(ctx, email)
	})
	if err != nil {
		logger.Warn("Failed to request PIN", "error", err)
		return classify(err)
	}
	logger.Info("PIN requested")
	return nil
}

// RequestPinByOrderNumber запрашивает PIN-код по номеру заказа
func (s *Auth) RequestPinByOrderNumber(ctx context.Context, orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if err := validators.CheckOrderNumber(orderNumber); err != nil {
		return err
	}
	_, err := execute(s.Breaker, func() (struct{}, error) {
		return struct{}{}, s.Gateway.RequestPinByOrderNumber(ctx, orderNumber)
	})
	if err != nil {
		logger.Warn("Failed to request PIN by order number", "order", orderNumber, "error", err)
		return classify(err)
	}
	logger.Info("PIN requested by order number", "order", orderNumber)
	return nil
}

// VerifyPin проверяет PIN-код и возвращает токен доступа.
// success=false от сервиса возвращается как ErrInvalidPin, сбои связи как ErrGatewayFailure.
func (s *Auth) VerifyPin(ctx context.Context, email, pin string) (string, error) {
	if err := validators.CheckPin(pin); err != nil {
		return "", err
	}
	resp, err := execute(s.Breaker, func() (*models.VerifyPinResponse, error) {
		return s.Gateway.VerifyPin(ctx, email, pin)
	})
	if err != nil {
		logger.Warn("Failed to verify PIN", "error", err)
		return "", classify(err)
	}
	if resp == nil || !resp.Success || resp.AccessToken == "" {
		logger.Info("Invalid PIN")
		return "", ErrInvalidPin
	}
	return resp.AccessToken, nil
}

// classify отделяет сбои связи от ответов сервиса, которые показываются как есть
func classify(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) || isTransportError(err) {
		return gatewayFailure(err)
	}
	return err
}
