package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/models"
)

var (
	ErrServiceUnavailable = errors.New("commerce service unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrBadRequest         = errors.New("bad request")
)

// RateLimitError - внешний сервис ответил 429
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}

// APIError - ответ внешнего сервиса с кодом ошибки.
// Message содержит поле message из тела ответа, если оно было.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("commerce api responded %d", e.StatusCode)
	}
	return fmt.Sprintf("commerce api responded %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrServiceUnavailable
	default:
		return ErrBadRequest
	}
}

// HandleErrorResponse переводит ответ с ошибкой в ошибку клиента
func HandleErrorResponse(resp *http.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		return NewRateLimitError(resp.Header)
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(body) > 0 {
		var payload models.ErrorResponse
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Message
		}
	}
	return apiErr
}
