package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

//go:generate mockgen -destination=mocks/http_client.go -package=mocks . HTTPClient

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - клиент REST API торговой системы
type Client struct {
	baseURL    string
	httpClient HTTPClient
	limiter    *RateLimiter
}

func NewClient(baseURL string, client HTTPClient, limiter *RateLimiter) *Client {
	if limiter == nil {
		limiter = NewRateLimiter(0, 1)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		limiter:    limiter,
	}
}

// do выполняет запрос; body и out сериализуются в JSON, пустой token - публичный запрос
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := HandleErrorResponse(resp)
		var rateLimitErr *RateLimitError
		if errors.As(err, &rateLimitErr) {
			c.limiter.BlockFor(rateLimitErr.RetryAfter)
		}
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %s", ErrServiceUnavailable, err.Error())
	}
	return nil
}
