package presentation

import (
	"fmt"
	"strings"

	"github.com/dawid-walter/basketo-shopper-order/internal/models"
)

// Color - цветовая категория панели статуса
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
)

// Record - тексты и оформление панели статуса заказа
type Record struct {
	Title         string
	Description   string
	WhatNext      string
	EstimatedTime string
	Color         Color
	ShowTracking  bool
	ShowFeedback  bool
}

const (
	orderNumberPrefix = "ORDER-"
	trackingPrefix    = "TRK-"
)

var statusRecords = map[models.OrderStatus]Record{
	models.OrderStatusCreated: {
		Title:         "Order Placed ✓",
		Description:   "Great news! Your order has been received and confirmed. We're preparing it for processing.",
		WhatNext:      "Once payment is confirmed, we'll start processing your order right away.",
		EstimatedTime: "Payment confirmation typically takes a few minutes.",
		Color:         ColorBlue,
	},
	models.OrderStatusPaid: {
		Title:         "Payment Confirmed ✓",
		Description:   "Your payment has been successfully processed. Thank you! Your order is now queued for preparation.",
		WhatNext:      "Our team is preparing your items for shipment. You'll receive an update once your order ships.",
		EstimatedTime: "Processing usually takes 1-2 business days.",
		Color:         ColorGreen,
	},
	models.OrderStatusProcessing: {
		Title:         "Order in Progress 📦",
		Description:   "Your order is being carefully prepared and packaged by our team.",
		WhatNext:      "Once packed, we'll hand it off to our shipping carrier and send you tracking information.",
		EstimatedTime: "Most orders are shipped within 1-2 business days.",
		Color:         ColorYellow,
	},
	models.OrderStatusShipped: {
		Title:         "On Its Way! 🚚",
		Description:   "Excellent! Your order has been shipped and is on its way to you.",
		WhatNext:      "Track your package using the tracking number below. You'll receive an email once it's delivered.",
		EstimatedTime: "Delivery times vary by location and shipping method selected.",
		Color:         ColorBlue,
		ShowTracking:  true,
	},
	models.OrderStatusDelivered: {
		Title:        "Delivered! ✨",
		Description:  "Your order has been successfully delivered. We hope you love it!",
		WhatNext:     "Enjoying your purchase? We'd love to hear your feedback!",
		Color:        ColorGreen,
		ShowFeedback: true,
	},
	models.OrderStatusCancelled: {
		Title:         "Order Cancelled",
		Description:   "This order has been cancelled. Any payment will be refunded within 5-7 business days.",
		WhatNext:      "Your refund has been processed and should appear in your account within 5-7 business days.",
		EstimatedTime: "Refunds typically take 5-7 business days to appear.",
		Color:         ColorRed,
	},
}

func init() {
	if err := checkTable(models.AllOrderStatuses(), statusRecords); err != nil {
		panic(err)
	}
}

// checkTable проверяет, что таблица оформления и набор статусов совпадают один к одному
func checkTable(statuses []models.OrderStatus, table map[models.OrderStatus]Record) error {
	if len(statuses) != len(table) {
		return fmt.Errorf("presentation table has %d records for %d statuses", len(table), len(statuses))
	}
	for _, status := range statuses {
		if _, ok := table[status]; !ok {
			return fmt.Errorf("no presentation record for status %s", status)
		}
	}
	return nil
}

// Present возвращает оформление для статуса.
// Для неизвестного статуса возвращает false: панель статуса не выводится.
func Present(status models.OrderStatus) (Record, bool) {
	record, ok := statusRecords[status]
	return record, ok
}

// TrackingNumber - номер отслеживания посылки.
// Если внешняя система его не прислала, номер строится из номера заказа: ORDER-123456 -> TRK-123456.
func TrackingNumber(order models.Order) string {
	if order.TrackingNumber != "" {
		return order.TrackingNumber
	}
	return trackingPrefix + strings.TrimPrefix(order.Number(), orderNumberPrefix)
}

// PaymentLabel - состояние оплаты для блока способа оплаты
func PaymentLabel(status models.OrderStatus) string {
	if status == models.OrderStatusCreated {
		return "Pending"
	}
	return "Paid"
}
