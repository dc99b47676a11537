package models

import "time"

// SessionData - модель хранения сессии покупателя
type SessionData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
	// состояние незавершённого входа по PIN-коду
	PendingEmail       string    `json:"pendingEmail,omitempty"`
	PendingOrderNumber string    `json:"pendingOrderNumber,omitempty"`
	PinSentAt          time.Time `json:"pinSentAt,omitempty"`
	Flash              string    `json:"flash,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
