package handlers

import (
	"errors"
	"net/http"

	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/services"
	"github.com/dawid-walter/basketo-shopper-order/internal/session"
	"github.com/dawid-walter/basketo-shopper-order/internal/views"
	"github.com/go-chi/chi/v5"
)

// OrdersHandler - список заказов покупателя
func OrdersHandler(orders services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		list, err := orders.GetOrders(r.Context(), store.Token())
		if err != nil {
			if errors.Is(err, services.ErrSessionExpired) {
				expireSession(w, r, store)
				return
			}
			render(w, errorStatus(err), views.PageOrders, views.OrdersPage{
				Layout: layout(r, store, "My Orders"),
				Error:  errorMessage(err, msgOrdersFailed),
			})
			return
		}
		render(w, http.StatusOK, views.PageOrders, views.OrdersPage{
			Layout: layout(r, store, "My Orders"),
			Orders: views.NewOrderCards(list),
		})
	})
}

// OrderHandler - страница заказа
func OrderHandler(orders services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		number := chi.URLParam(r, "orderNumber")
		order, err := orders.GetOrder(r.Context(), number)
		if err != nil {
			page := views.OrderPage{Layout: layout(r, store, "Order")}
			if errors.Is(err, services.ErrOrderNotFound) {
				page.NotFound = true
			} else {
				page.Error = errorMessage(err, msgOrderFailed)
			}
			render(w, errorStatus(err), views.PageOrder, page)
			return
		}
		render(w, http.StatusOK, views.PageOrder, views.OrderPage{
			Layout: layout(r, store, "Order "+order.Number()),
			Order:  views.NewOrderDetail(*order),
		})
	})
}

// expireSession - токен отклонён внешней системой: выход и возврат ко входу
func expireSession(w http.ResponseWriter, r *http.Request, store *session.Store) {
	logger.Info("Session expired, logging out")
	if err := store.ClearSession(r.Context()); err != nil {
		saveFailed(w, err)
		return
	}
	if err := store.SetFlash(r.Context(), msgSessionExpired); err != nil {
		logger.Warn("Failed to set flash message", "error", err)
	}
	redirect(w, r, loginPath)
}
