package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dawid-walter/basketo-shopper-order/internal/config"
	"github.com/dawid-walter/basketo-shopper-order/internal/cooldown"
	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/services"
	"github.com/dawid-walter/basketo-shopper-order/internal/session"
	"github.com/dawid-walter/basketo-shopper-order/internal/views"
)

const (
	msgSendPinFailed   = "Failed to send PIN. Please try again."
	msgResendFailed    = "Failed to resend PIN. Please try again."
	msgVerifyFailed    = "Failed to verify PIN. Please try again."
	msgInvalidPin      = "Invalid PIN. Please try again."
	msgResendTooSoon   = "Please wait before requesting a new PIN."
	msgSessionExpired  = "Your session has expired. Please log in again."
	msgPinResent       = "PIN resent successfully! Please check your email."
	msgOrdersFailed    = "Failed to load orders. Please try again."
	msgOrderFailed     = "Failed to load order details. Please try again."
	msgContactFailed   = "Failed to send message. Please try again."
	msgContactReceived = "Message sent! We'll get back to you within 24 hours."
)

// LoginPageHandler - страница входа. Вошедший покупатель уходит к списку заказов.
func LoginPageHandler(flow config.AuthFlow) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		if store.IsAuthenticated() {
			redirect(w, r, ordersPath)
			return
		}
		if flow == config.AuthFlowOrderNumber {
			render(w, http.StatusOK, views.PageLoginOrder, views.OrderLoginPage{Layout: layout(r, store, "Login")})
			return
		}
		if store.PendingEmail() != "" {
			renderPinStep(w, r, store, http.StatusOK, "")
			return
		}
		render(w, http.StatusOK, views.PageLogin, views.LoginPage{Layout: layout(r, store, "Login"), Step: views.StepEmail})
	})
}

// renderPinStep - шаг ввода PIN-кода; поле PIN всегда пустое
func renderPinStep(w http.ResponseWriter, r *http.Request, store *session.Store, status int, message string) {
	remaining := cooldown.Remaining(store.PinSentAt(), timeNow(), services.PinResendCooldown)
	render(w, status, views.PageLogin, views.LoginPage{
		Layout:       layout(r, store, "Enter PIN"),
		Step:         views.StepPin,
		PendingEmail: store.PendingEmail(),
		Error:        message,
		Cooldown:     remaining,
		CanResend:    remaining == 0,
	})
}

// RequestPinHandler - отправка PIN-кода на email
func RequestPinHandler(auth services.AuthService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		email := strings.TrimSpace(r.FormValue("email"))
		ctx := detached(r)
		err := exclusive(store, "request-pin", func() error {
			if err := auth.RequestPin(ctx, email); err != nil {
				return err
			}
			return storageErr(store.BeginPinFlow(ctx, email, "", timeNow()))
		})
		if errors.Is(err, errSessionStorage) {
			saveFailed(w, err)
			return
		}
		if err != nil {
			render(w, errorStatus(err), views.PageLogin, views.LoginPage{
				Layout:       layout(r, store, "Login"),
				Step:         views.StepEmail,
				PendingEmail: email,
				Error:        errorMessage(err, msgSendPinFailed),
			})
			return
		}
		redirect(w, r, loginPath)
	})
}

// VerifyPinHandler - проверка PIN-кода и вход
func VerifyPinHandler(auth services.AuthService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		email := store.PendingEmail()
		if email == "" {
			redirect(w, r, loginPath)
			return
		}
		token, err := auth.VerifyPin(r.Context(), email, r.FormValue("pin"))
		if err != nil {
			message := msgInvalidPin
			if !errors.Is(err, services.ErrInvalidPin) {
				message = errorMessage(err, msgVerifyFailed)
			}
			renderPinStep(w, r, store, errorStatus(err), message)
			return
		}
		if err := logIn(w, r, store, email, token); err != nil {
			saveFailed(w, err)
			return
		}
		logger.Info("Customer logged in")
		redirect(w, r, ordersPath)
	})
}

// ResendPinHandler - повторная отправка PIN-кода после паузы.
// Пауза проверяется по свежей записи сессии: её мог обновить параллельный запрос.
func ResendPinHandler(auth services.AuthService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		if store.PendingEmail() == "" {
			redirect(w, r, loginPath)
			return
		}
		ctx := detached(r)
		err := exclusive(store, "resend-pin", func() error {
			if err := store.Reload(ctx); err != nil {
				return storageErr(err)
			}
			if !cooldown.Ready(store.PinSentAt(), timeNow(), services.PinResendCooldown) {
				return services.ErrResendTooSoon
			}
			email := store.PendingEmail()
			if err := auth.RequestPin(ctx, email); err != nil {
				return err
			}
			return storageErr(store.BeginPinFlow(ctx, email, "", timeNow()))
		})
		switch {
		case err == nil:
			redirect(w, r, loginPath)
		case errors.Is(err, errSessionStorage):
			saveFailed(w, err)
		default:
			if err := store.Reload(r.Context()); err != nil {
				logger.Warn("Failed to reload session", "error", err)
			}
			message := errorMessage(err, msgResendFailed)
			if errors.Is(err, services.ErrResendTooSoon) {
				message = msgResendTooSoon
			}
			renderPinStep(w, r, store, errorStatus(err), message)
		}
	})
}

// BackToLoginHandler - возврат к вводу email или номера заказа
func BackToLoginHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		if err := store.ResetPinFlow(r.Context()); err != nil {
			saveFailed(w, err)
			return
		}
		redirect(w, r, loginPath)
	})
}
