package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/services"
	"github.com/dawid-walter/basketo-shopper-order/internal/session"
	"github.com/dawid-walter/basketo-shopper-order/internal/validators"
	"github.com/dawid-walter/basketo-shopper-order/internal/views"
)

// RequestPinByOrderHandler - отправка PIN-кода на email, указанный в заказе
func RequestPinByOrderHandler(auth services.AuthService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		number := strings.TrimSpace(r.FormValue("orderNumber"))
		ctx := detached(r)
		err := exclusive(store, "request-pin", func() error {
			if err := auth.RequestPinByOrderNumber(ctx, number); err != nil {
				return err
			}
			return storageErr(store.BeginPinFlow(ctx, "", number, timeNow()))
		})
		if errors.Is(err, errSessionStorage) {
			saveFailed(w, err)
			return
		}
		if err != nil {
			render(w, errorStatus(err), views.PageLoginOrder, views.OrderLoginPage{
				Layout:      layout(r, store, "Login"),
				OrderNumber: number,
				Error:       errorMessage(err, msgSendPinFailed),
			})
			return
		}
		redirect(w, r, verifyPinPath)
	})
}

// VerifyPinPageHandler - ввод PIN-кода. Без номера заказа возвращает к началу входа.
func VerifyPinPageHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		if store.PendingOrderNumber() == "" {
			redirect(w, r, loginPath)
			return
		}
		renderVerifyPin(w, r, store, http.StatusOK, "")
	})
}

func renderVerifyPin(w http.ResponseWriter, r *http.Request, store *session.Store, status int, message string) {
	render(w, status, views.PageVerifyPin, views.VerifyPinPage{
		Layout:      layout(r, store, "Enter PIN"),
		OrderNumber: store.PendingOrderNumber(),
		Error:       message,
	})
}

// VerifyOrderPinHandler - проверка PIN-кода по email из заказа и переход к заказу
func VerifyOrderPinHandler(auth services.AuthService, orders services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		number := store.PendingOrderNumber()
		if number == "" {
			redirect(w, r, loginPath)
			return
		}

		// формат PIN-кода проверяется до обращения к заказу
		pin := r.FormValue("pin")
		if err := validators.CheckPin(pin); err != nil {
			renderVerifyPin(w, r, store, errorStatus(err), errorMessage(err, msgInvalidPin))
			return
		}

		order, err := orders.GetOrder(r.Context(), number)
		if err != nil {
			message := errorMessage(err, msgInvalidPin)
			if errors.Is(err, services.ErrGatewayFailure) {
				message = errorMessage(err, msgVerifyFailed)
			}
			renderVerifyPin(w, r, store, errorStatus(err), message)
			return
		}

		token, err := auth.VerifyPin(r.Context(), order.UserEmail, pin)
		if err != nil {
			message := msgInvalidPin
			if !errors.Is(err, services.ErrInvalidPin) {
				message = errorMessage(err, msgVerifyFailed)
			}
			renderVerifyPin(w, r, store, errorStatus(err), message)
			return
		}
		if err := logIn(w, r, store, order.UserEmail, token); err != nil {
			saveFailed(w, err)
			return
		}
		logger.Info("Customer logged in by order number", "order", number)
		redirect(w, r, "/order/"+url.PathEscape(number))
	})
}

// ResendOrderPinHandler - повторная отправка PIN-кода по номеру заказа
func ResendOrderPinHandler(auth services.AuthService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		number := store.PendingOrderNumber()
		if number == "" {
			redirect(w, r, loginPath)
			return
		}
		ctx := detached(r)
		err := exclusive(store, "resend-pin", func() error {
			if err := auth.RequestPinByOrderNumber(ctx, number); err != nil {
				return err
			}
			if err := store.BeginPinFlow(ctx, "", number, timeNow()); err != nil {
				return storageErr(err)
			}
			return storageErr(store.SetFlash(ctx, msgPinResent))
		})
		switch {
		case err == nil:
			redirect(w, r, verifyPinPath)
		case errors.Is(err, errSessionStorage):
			saveFailed(w, err)
		default:
			renderVerifyPin(w, r, store, errorStatus(err), errorMessage(err, msgResendFailed))
		}
	})
}
