package presentation

import "github.com/dawid-walter/basketo-shopper-order/internal/models"

// Step - этап на шкале выполнения заказа
type Step struct {
	Label     string
	Completed bool
}

// Timeline строит шкалу этапов по статусу заказа.
//
// Этап "Delivered" никогда не отмечается выполненным, в том числе для DELIVERED:
// отмечается только "Shipped" при статусе SHIPPED.
func Timeline(status models.OrderStatus) []Step {
	if status == models.OrderStatusCancelled {
		return []Step{
			{Label: "Order Placed", Completed: true},
			{Label: "Cancelled", Completed: true},
		}
	}
	return []Step{
		{Label: "Order Placed", Completed: true},
		{Label: "Payment Confirmed", Completed: status != models.OrderStatusCreated},
		{Label: "Shipped", Completed: status == models.OrderStatusShipped},
		{Label: "Delivered", Completed: false},
	}
}
