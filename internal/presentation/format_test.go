package presentation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	testCases := []struct {
		Amount   decimal.Decimal
		Currency string
		Expected string
	}{
		{Amount: decimal.RequireFromString("123.4"), Currency: "PLN", Expected: "123.40 PLN"},
		{Amount: decimal.NewFromInt(10), Currency: "EUR", Expected: "10.00 EUR"},
		{Amount: decimal.RequireFromString("0.125"), Currency: "", Expected: "0.13 PLN"},
		{Amount: decimal.NewFromInt(5), Currency: "BONUS", Expected: "5.00 BONUS"},
	}

	for _, tc := range testCases {
		if got := FormatMoney(tc.Amount, tc.Currency); got != tc.Expected {
			t.Errorf("Expected '%s', got: '%s'", tc.Expected, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2026, time.February, 12, 9, 5, 0, 0, time.UTC)
	if got := FormatDate(date); got != "12 Feb 2026, 09:05" {
		t.Errorf("Expected '12 Feb 2026, 09:05', got: '%s'", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("Expected empty string, got: '%s'", got)
	}
}
