package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/dawid-walter/basketo-shopper-order/internal/models"
)

// RequestPin - отправка PIN-кода на email
func (c *Client) RequestPin(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: email}, nil)
}

// RequestPinByOrderNumber - отправка PIN-кода на email владельца заказа
func (c *Client) RequestPinByOrderNumber(ctx context.Context, orderNumber string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/login-by-order", "", models.OrderLoginRequest{OrderNumber: orderNumber}, nil)
}

// VerifyPin - проверка PIN-кода.
// Отказ в авторизации (401/403) означает неверный PIN и возвращается как success=false.
func (c *Client) VerifyPin(ctx context.Context, email, pin string) (*models.VerifyPinResponse, error) {
	var result models.VerifyPinResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/verify", "", models.VerifyPinRequest{Email: email, Pin: pin}, &result)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return &models.VerifyPinResponse{Success: false}, nil
		}
		return nil, err
	}
	return &result, nil
}
