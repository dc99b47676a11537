package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/client"
	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	"github.com/dawid-walter/basketo-shopper-order/internal/services/mocks"
	"github.com/dawid-walter/basketo-shopper-order/internal/validators"
	"go.uber.org/mock/gomock"
)

func TestAuth_RequestPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := mocks.NewMockAuthGateway(ctrl)

	testCases := []struct {
		TestName      string
		Email         string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Success #1",
			Email:    " user@example.com ",
			SetupMocks: func() {
				mockGateway.EXPECT().RequestPin(gomock.Any(), "user@example.com").Return(nil)
			},
		},
		{
			TestName:      "Error. Invalid email, no request #2",
			Email:         "user@",
			SetupMocks:    func() {},
			ExpectedError: validators.ErrValidation,
		},
		{
			TestName: "Error. Service unavailable #3",
			Email:    "user@example.com",
			SetupMocks: func() {
				mockGateway.EXPECT().RequestPin(gomock.Any(), "user@example.com").Return(client.ErrServiceUnavailable)
			},
			ExpectedError: ErrGatewayFailure,
		},
		{
			TestName: "Error. Rejected by service #4",
			Email:    "user@example.com",
			SetupMocks: func() {
				mockGateway.EXPECT().RequestPin(gomock.Any(), "user@example.com").Return(&client.APIError{StatusCode: 400, Message: "Unknown email"})
			},
			ExpectedError: client.ErrBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()
			auth := NewAuth(mockGateway)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := auth.RequestPin(ctx, tc.Email)
			if tc.ExpectedError == nil && err != nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if tc.ExpectedError != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestAuth_RequestPinByOrderNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := mocks.NewMockAuthGateway(ctrl)
	auth := NewAuth(mockGateway)

	mockGateway.EXPECT().RequestPinByOrderNumber(gomock.Any(), "ORDER-123456").Return(nil)
	if err := auth.RequestPinByOrderNumber(context.Background(), "ORDER-123456"); err != nil {
		t.Errorf("Expected no error, got: '%v'", err)
	}

	if err := auth.RequestPinByOrderNumber(context.Background(), ""); !errors.Is(err, validators.ErrValidation) {
		t.Errorf("Expected validation error, got: '%v'", err)
	}
}

func TestAuth_VerifyPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := mocks.NewMockAuthGateway(ctrl)

	testCases := []struct {
		TestName      string
		Pin           string
		SetupMocks    func()
		ExpectedToken string
		ExpectedError error
	}{
		{
			TestName: "Success #1",
			Pin:      "123456",
			SetupMocks: func() {
				mockGateway.EXPECT().VerifyPin(gomock.Any(), "user@example.com", "123456").
					Return(&models.VerifyPinResponse{Success: true, AccessToken: "tkn"}, nil)
			},
			ExpectedToken: "tkn",
		},
		{
			TestName: "Error. Wrong PIN #2",
			Pin:      "000000",
			SetupMocks: func() {
				mockGateway.EXPECT().VerifyPin(gomock.Any(), "user@example.com", "000000").
					Return(&models.VerifyPinResponse{Success: false}, nil)
			},
			ExpectedError: ErrInvalidPin,
		},
		{
			TestName:      "Error. Short PIN, no request #3",
			Pin:           "12345",
			SetupMocks:    func() {},
			ExpectedError: validators.ErrValidation,
		},
		{
			TestName:      "Error. Letters in PIN, no request #4",
			Pin:           "12345a",
			SetupMocks:    func() {},
			ExpectedError: validators.ErrValidation,
		},
		{
			TestName: "Error. Network failure #5",
			Pin:      "123456",
			SetupMocks: func() {
				mockGateway.EXPECT().VerifyPin(gomock.Any(), "user@example.com", "123456").
					Return(nil, client.ErrServiceUnavailable)
			},
			ExpectedError: ErrGatewayFailure,
		},
		{
			TestName: "Error. Success without token #6",
			Pin:      "123456",
			SetupMocks: func() {
				mockGateway.EXPECT().VerifyPin(gomock.Any(), "user@example.com", "123456").
					Return(&models.VerifyPinResponse{Success: true}, nil)
			},
			ExpectedError: ErrInvalidPin,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()
			auth := NewAuth(mockGateway)

			token, err := auth.VerifyPin(context.Background(), "user@example.com", tc.Pin)
			if token != tc.ExpectedToken {
				t.Errorf("Expected token '%s', got '%s'", tc.ExpectedToken, token)
			}
			if tc.ExpectedError == nil && err != nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if tc.ExpectedError != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestAuth_BreakerOpens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := mocks.NewMockAuthGateway(ctrl)
	auth := NewAuth(mockGateway)

	// пять сбоев подряд, дальше запросы не уходят
	mockGateway.EXPECT().RequestPin(gomock.Any(), gomock.Any()).Return(client.ErrServiceUnavailable).Times(5)
	for i := 0; i < 5; i++ {
		_ = auth.RequestPin(context.Background(), "user@example.com")
	}
	err := auth.RequestPin(context.Background(), "user@example.com")
	if !errors.Is(err, ErrGatewayFailure) {
		t.Errorf("Expected gateway failure with open breaker, got: '%v'", err)
	}
}

func TestAuth_BusinessErrorsKeepBreakerClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := mocks.NewMockAuthGateway(ctrl)
	auth := NewAuth(mockGateway)

	mockGateway.EXPECT().RequestPin(gomock.Any(), gomock.Any()).Return(&client.APIError{StatusCode: 404}).Times(7)
	for i := 0; i < 7; i++ {
		err := auth.RequestPin(context.Background(), "user@example.com")
		if !errors.Is(err, client.ErrNotFound) {
			t.Fatalf("Expected ErrNotFound on call %d, got: '%v'", i, err)
		}
	}
}

func TestDisplayMessage(t *testing.T) {
	err := gatewayFailure(&client.APIError{StatusCode: 503, Message: "Maintenance"})
	if got := DisplayMessage(err, "fallback"); got != "Maintenance" {
		t.Errorf("Expected upstream message, got '%s'", got)
	}
	if got := DisplayMessage(client.ErrServiceUnavailable, "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got '%s'", got)
	}
}
