package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dawid-walter/basketo-shopper-order/internal/models"
)

// ListOrders - заказы владельца токена
func (c *Client) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderByNumber - публичный запрос заказа по номеру
func (c *Client) GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var order models.Order
	path := "/api/orders/by-number/" + url.PathEscape(orderNumber)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
