package validators

import (
	"errors"
	"testing"
)

func TestCheckEmail(t *testing.T) {
	testCases := []struct {
		Email string
		Valid bool
	}{
		{Email: "user@example.com", Valid: true},
		{Email: " user@example.com ", Valid: true},
		{Email: "", Valid: false},
		{Email: "user", Valid: false},
		{Email: "user@localhost", Valid: false},
		{Email: "User <user@example.com>", Valid: false},
	}

	for _, tc := range testCases {
		err := CheckEmail(tc.Email)
		if tc.Valid && err != nil {
			t.Errorf("Expected '%s' to be valid, got: '%v'", tc.Email, err)
		}
		if !tc.Valid && !errors.Is(err, ErrValidation) {
			t.Errorf("Expected validation error for '%s', got: '%v'", tc.Email, err)
		}
	}
}

func TestCheckPin(t *testing.T) {
	testCases := []struct {
		Pin     string
		Message string
	}{
		{Pin: "123456", Message: ""},
		{Pin: "000000", Message: ""},
		{Pin: "", Message: "Please enter the PIN"},
		{Pin: "12345", Message: "PIN must be 6 digits"},
		{Pin: "1234567", Message: "PIN must be 6 digits"},
		{Pin: "12a456", Message: "PIN must contain only numbers"},
		{Pin: "12 456", Message: "PIN must contain only numbers"},
		{Pin: "١٢٣٤٥٦", Message: "PIN must be 6 digits"},
	}

	for _, tc := range testCases {
		err := CheckPin(tc.Pin)
		if tc.Message == "" {
			if err != nil {
				t.Errorf("Expected PIN '%s' to be valid, got: '%v'", tc.Pin, err)
			}
			continue
		}
		var fieldErr *FieldError
		if !errors.As(err, &fieldErr) {
			t.Fatalf("Expected FieldError for '%s', got: '%v'", tc.Pin, err)
		}
		if fieldErr.Message != tc.Message {
			t.Errorf("Expected message '%s', got: '%s'", tc.Message, fieldErr.Message)
		}
	}
}

func TestCheckOrderNumber(t *testing.T) {
	if err := CheckOrderNumber("ORDER-123456"); err != nil {
		t.Errorf("Expected valid order number, got: '%v'", err)
	}
	for _, number := range []string{"", "  ", "ORDER/1", "a b"} {
		if err := CheckOrderNumber(number); !errors.Is(err, ErrValidation) {
			t.Errorf("Expected validation error for '%s'", number)
		}
	}
}

func TestCheckContact(t *testing.T) {
	if err := CheckContact("shipping", "Where is my parcel?"); err != nil {
		t.Errorf("Expected valid contact form, got: '%v'", err)
	}
	if err := CheckContact("", "text"); err == nil || err.Error() != "Please select a topic" {
		t.Errorf("Expected topic error, got: '%v'", err)
	}
	if err := CheckContact("other", "   "); err == nil || err.Error() != "Please enter your message" {
		t.Errorf("Expected message error, got: '%v'", err)
	}
}
