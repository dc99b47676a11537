package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem - позиция заказа
type OrderItem struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// LineTotal - стоимость позиции (количество × цена за единицу)
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShippingAddress - адрес доставки заказа
type ShippingAddress struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	AddressLine string `json:"addressLine"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
}

// Order - модель заказа, как её отдаёт внешняя торговая система.
// Портал только читает заказы, итоговая сумма не пересчитывается.
type Order struct {
	ID                string           `json:"id"`
	OrderNumber       string           `json:"orderNumber"`
	UserEmail         string           `json:"userEmail"`
	TotalAmount       decimal.Decimal  `json:"totalAmount"`
	Currency          string           `json:"currency"`
	Status            OrderStatus      `json:"status"`
	CreatedAt         time.Time        `json:"createdAt"`
	ItemsSummary      string           `json:"itemsSummary,omitempty"`
	Items             []OrderItem      `json:"items"`
	ShippingAddress   *ShippingAddress `json:"shippingAddress,omitempty"`
	TrackingNumber    string           `json:"trackingNumber,omitempty"`
	Carrier           string           `json:"carrier,omitempty"`
	EstimatedDelivery string           `json:"estimatedDelivery,omitempty"`
	DeliveredAt       *time.Time       `json:"deliveredAt,omitempty"`
}

// Number - публичный номер заказа; старые ответы содержат только id
func (o Order) Number() string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	return o.ID
}
