package middleware

import (
	"net/http"

	"github.com/dawid-walter/basketo-shopper-order/internal/helpers"
	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/session"
	"github.com/dawid-walter/basketo-shopper-order/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// Sessions загружает сессию покупателя. Работает после jwtauth.Verify:
// без действительной cookie создаётся новая сессия и выдаётся cookie.
func Sessions(ja *jwtauth.JWTAuth, repo storage.SessionStorage, secure bool) func(http.Handler) http.Handler {
	cookies := helpers.NewSessionCookies(ja, secure)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := helpers.WithSessionCookies(r.Context(), cookies)

			sid, err := helpers.GetSessionID(ctx)
			if err != nil {
				sid = uuid.NewString()
				if err := cookies.Issue(w, sid); err != nil {
					logger.Error("Failed to issue session cookie", "error", err)
					http.Error(w, "Server error", http.StatusInternalServerError)
					return
				}
			}

			store, err := session.Load(ctx, repo, sid)
			if err != nil {
				logger.Error("Failed to load session", "error", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(session.NewContext(ctx, store)))
		})
	}
}
