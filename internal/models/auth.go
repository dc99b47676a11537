package models

// LoginRequest - запрос PIN-кода по email
type LoginRequest struct {
	Email string `json:"email"`
}

// OrderLoginRequest - запрос PIN-кода по номеру заказа
type OrderLoginRequest struct {
	OrderNumber string `json:"orderNumber"`
}

// VerifyPinRequest - проверка PIN-кода
type VerifyPinRequest struct {
	Email string `json:"email"`
	Pin   string `json:"pin"`
}

// VerifyPinResponse - результат проверки PIN-кода
type VerifyPinResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
}

// ErrorResponse - тело ошибки внешнего сервиса
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}
