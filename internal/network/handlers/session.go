package handlers

import (
	"net/http"

	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
)

// LogoutHandler - выход: токен и email удаляются вместе
func LogoutHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		if err := store.ClearSession(r.Context()); err != nil {
			saveFailed(w, err)
			return
		}
		logger.Info("Customer logged out")
		redirect(w, r, loginPath)
	})
}

// FallbackHandler - корень и неизвестные адреса
func FallbackHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		if store.IsAuthenticated() {
			redirect(w, r, ordersPath)
			return
		}
		redirect(w, r, loginPath)
	})
}

func HealthHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
}
