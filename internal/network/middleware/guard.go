package middleware

import (
	"net/http"

	"github.com/dawid-walter/basketo-shopper-order/internal/session"
)

// LoginPath - страница входа
const LoginPath = "/login"

// RequireSession пропускает только покупателей, выполнивших вход
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := session.FromContext(r.Context())
		if !ok || !store.IsAuthenticated() {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
