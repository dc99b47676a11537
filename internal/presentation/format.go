package presentation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	DefaultCurrency = "PLN"
	dateLayout      = "02 Jan 2006, 15:04"
)

// FormatMoney форматирует сумму с двумя знаками после запятой и ISO-кодом валюты
func FormatMoney(amount decimal.Decimal, code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		code = DefaultCurrency
	}
	if unit, err := currency.ParseISO(code); err == nil {
		code = unit.String()
	}
	return amount.StringFixed(2) + " " + code
}

// FormatDate форматирует дату заказа
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
