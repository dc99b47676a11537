package models

import "time"

// ContactTopic - тема обращения в поддержку
type ContactTopic struct {
	Value string
	Label string
}

// ContactTopics - допустимые темы обращений
var ContactTopics = []ContactTopic{
	{Value: "order_status", Label: "Order Status"},
	{Value: "shipping", Label: "Shipping & Delivery"},
	{Value: "returns", Label: "Returns & Refunds"},
	{Value: "payment", Label: "Payment Issues"},
	{Value: "product_quality", Label: "Product Quality"},
	{Value: "other", Label: "Other"},
}

// ContactMessage - обращение покупателя, передаваемое в очередь поддержки
type ContactMessage struct {
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}
