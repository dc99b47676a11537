package services

import (
	"errors"
	"fmt"

	"github.com/dawid-walter/basketo-shopper-order/internal/client"
)

var (
	// ErrGatewayFailure - сбой связи с торговой системой; пользователь может повторить действие
	ErrGatewayFailure = errors.New("commerce gateway failure")
	ErrInvalidPin     = errors.New("invalid PIN")
	ErrOrderNotFound  = errors.New("order not found")
	ErrSessionExpired = errors.New("session expired")
	// ErrResendTooSoon - повторная отправка PIN-кода до окончания паузы
	ErrResendTooSoon = errors.New("PIN resend is not available yet")
)

func gatewayFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrGatewayFailure, err)
}

// DisplayMessage - текст ошибки для пользователя: сообщение внешнего сервиса, если оно есть, иначе fallback
func DisplayMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
