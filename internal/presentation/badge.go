package presentation

import "github.com/dawid-walter/basketo-shopper-order/internal/models"

// Badge - короткая метка статуса для списка заказов
type Badge struct {
	Label string
	Class string
}

var badges = map[models.OrderStatus]Badge{
	models.OrderStatusCreated:    {Label: "Created", Class: "bg-yellow-100 text-yellow-800"},
	models.OrderStatusPaid:       {Label: "Paid", Class: "bg-green-100 text-green-800"},
	models.OrderStatusProcessing: {Label: "Processing", Class: "bg-yellow-100 text-yellow-800"},
	models.OrderStatusShipped:    {Label: "Shipped", Class: "bg-blue-100 text-blue-800"},
	models.OrderStatusDelivered:  {Label: "Delivered", Class: "bg-green-100 text-green-800"},
	models.OrderStatusCancelled:  {Label: "Cancelled", Class: "bg-red-100 text-red-800"},
}

var unknownBadge = Badge{Label: "Unknown", Class: "bg-gray-100 text-gray-800"}

func BadgeFor(status models.OrderStatus) Badge {
	if badge, ok := badges[status]; ok {
		return badge
	}
	return unknownBadge
}
