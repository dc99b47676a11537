package views

import (
	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	"github.com/dawid-walter/basketo-shopper-order/internal/presentation"
)

// Layout - общие данные шапки страницы
type Layout struct {
	Title         string
	Email         string
	Authenticated bool
	Flash         string
}

// LoginPage - вход по email: шаг email или шаг PIN-кода
type LoginPage struct {
	Layout
	Step         string
	PendingEmail string
	Error        string
	Cooldown     int
	CanResend    bool
}

const (
	StepEmail = "email"
	StepPin   = "pin"
)

// OrderLoginPage - вход по номеру заказа
type OrderLoginPage struct {
	Layout
	OrderNumber string
	Error       string
}

type VerifyPinPage struct {
	Layout
	OrderNumber string
	Error       string
}

type OrdersPage struct {
	Layout
	Orders []OrderCard
	Error  string
}

type OrderPage struct {
	Layout
	Order    *OrderDetail
	NotFound bool
	Error    string
}

type ContactPage struct {
	Layout
	Topics  []models.ContactTopic
	Subject string
	Message string
	Error   string
}

// OrderCard - заказ в списке
type OrderCard struct {
	Number   string
	PlacedOn string
	Badge    presentation.Badge
	Items    []ItemLine
	Total    string
}

type ItemLine struct {
	Name      string
	Quantity  int
	UnitPrice string
	Total     string
}

// OrderDetail - заказ на странице заказа
type OrderDetail struct {
	Number   string
	PlacedOn string
	Badge    presentation.Badge

	// панель статуса выводится только для известного статуса
	HasStatus         bool
	Status            presentation.Record
	TrackingNumber    string
	Carrier           string
	EstimatedDelivery string
	DeliveredOn       string
	Stars             []int

	Timeline      []presentation.Step
	Items         []ItemLine
	Total         string
	CustomerEmail string
	Address       *models.ShippingAddress
	Payment       string
}

func itemLines(order models.Order) []ItemLine {
	lines := make([]ItemLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, ItemLine{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: presentation.FormatMoney(item.UnitPrice, order.Currency),
			Total:     presentation.FormatMoney(item.LineTotal(), order.Currency),
		})
	}
	return lines
}

func NewOrderCard(order models.Order) OrderCard {
	return OrderCard{
		Number:   order.Number(),
		PlacedOn: presentation.FormatDate(order.CreatedAt),
		Badge:    presentation.BadgeFor(order.Status),
		Items:    itemLines(order),
		Total:    presentation.FormatMoney(order.TotalAmount, order.Currency),
	}
}

func NewOrderCards(orders []models.Order) []OrderCard {
	cards := make([]OrderCard, 0, len(orders))
	for _, order := range orders {
		cards = append(cards, NewOrderCard(order))
	}
	return cards
}

func NewOrderDetail(order models.Order) *OrderDetail {
	detail := &OrderDetail{
		Number:        order.Number(),
		PlacedOn:      presentation.FormatDate(order.CreatedAt),
		Badge:         presentation.BadgeFor(order.Status),
		Timeline:      presentation.Timeline(order.Status),
		Items:         itemLines(order),
		Total:         presentation.FormatMoney(order.TotalAmount, order.Currency),
		CustomerEmail: order.UserEmail,
		Address:       order.ShippingAddress,
		Payment:       presentation.PaymentLabel(order.Status),
	}

	record, ok := presentation.Present(order.Status)
	if !ok {
		return detail
	}
	detail.HasStatus = true
	detail.Status = record
	if record.ShowTracking {
		detail.TrackingNumber = presentation.TrackingNumber(order)
		detail.Carrier = order.Carrier
		detail.EstimatedDelivery = order.EstimatedDelivery
	}
	if order.Status == models.OrderStatusDelivered && order.DeliveredAt != nil {
		detail.DeliveredOn = presentation.FormatDate(*order.DeliveredAt)
	}
	if record.ShowFeedback {
		detail.Stars = []int{1, 2, 3, 4, 5}
	}
	return detail
}
