package validators

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/dawid-walter/basketo-shopper-order/internal/models"
)

const PinLength = 6

var ErrValidation = errors.New("validation failed")

// FieldError - ошибка проверки поля формы, текст показывается пользователю
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

func (e *FieldError) Unwrap() error { return ErrValidation }

func fieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// CheckEmail проверяет адрес электронной почты
func CheckEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fieldError("email", "Please enter your email address")
	}
	addr, err := mail.ParseAddress(email)
	// отбрасываем формы вида "Name <user@host>"
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return fieldError("email", "Please enter a valid email address")
	}
	return nil
}

// CheckPin проверяет PIN-код: ровно 6 символов, только цифры
func CheckPin(pin string) error {
	if strings.TrimSpace(pin) == "" {
		return fieldError("pin", "Please enter the PIN")
	}
	if len(pin) != PinLength {
		return fieldError("pin", "PIN must be 6 digits")
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return fieldError("pin", "PIN must contain only numbers")
		}
	}
	return nil
}

// CheckOrderNumber проверяет номер заказа
func CheckOrderNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return fieldError("orderNumber", "Please enter your order number")
	}
	if strings.ContainsAny(number, "/?#% ") {
		return fieldError("orderNumber", "Please enter a valid order number")
	}
	return nil
}

// CheckContact проверяет форму обращения в поддержку
func CheckContact(subject, message string) error {
	known := false
	for _, topic := range models.ContactTopics {
		if topic.Value == subject {
			known = true
			break
		}
	}
	if !known {
		return fieldError("subject", "Please select a topic")
	}
	if strings.TrimSpace(message) == "" {
		return fieldError("message", "Please enter your message")
	}
	return nil
}
