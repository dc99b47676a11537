package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/helpers"
	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/services"
	"github.com/dawid-walter/basketo-shopper-order/internal/session"
	"github.com/dawid-walter/basketo-shopper-order/internal/validators"
	"github.com/dawid-walter/basketo-shopper-order/internal/views"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	loginPath     = "/login"
	verifyPinPath = "/verify-pin"
	ordersPath    = "/orders"
	contactPath   = "/contact"
)

var timeNow = time.Now

var (
	errSessionStorage = errors.New("session storage failure")
	errNoCookies      = errors.New("session cookies are not configured")
)

// inFlight - выполняющиеся запросы PIN-кода по сессиям.
// Повторная отправка формы, пока первая не завершилась, получает её результат без нового запроса.
var inFlight singleflight.Group

func exclusive(store *session.Store, action string, fn func() error) error {
	_, err, _ := inFlight.Do(store.ID()+":"+action, func() (any, error) {
		return nil, fn()
	})
	return err
}

// detached - запрос к внешнему сервису завершается, даже если первая из повторных отправок оборвалась
func detached(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

// storageErr помечает сбой записи сессии внутри exclusive
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", errSessionStorage, err)
}

// logIn - вход: сессия переезжает на новый идентификатор, покупатель получает новую cookie
func logIn(w http.ResponseWriter, r *http.Request, store *session.Store, email, token string) error {
	cookies, ok := helpers.SessionCookiesFrom(r.Context())
	if !ok {
		return errNoCookies
	}
	if err := store.Rotate(r.Context(), uuid.NewString()); err != nil {
		return err
	}
	if err := store.SetSession(r.Context(), email, token); err != nil {
		return err
	}
	return cookies.Issue(w, store.ID())
}

// sessionFrom - сессия, загруженная middleware.Sessions
func sessionFrom(w http.ResponseWriter, r *http.Request) (*session.Store, bool) {
	store, ok := session.FromContext(r.Context())
	if !ok {
		logger.Error("Session is missing in request context", "uri", r.RequestURI)
		http.Error(w, "Server error", http.StatusInternalServerError)
	}
	return store, ok
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func render(w http.ResponseWriter, status int, page string, data any) {
	if err := views.Render(w, status, page, data); err != nil {
		logger.Error("Failed to render page", "page", page, "error", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
	}
}

// layout - данные шапки; flash-сообщение показывается один раз
func layout(r *http.Request, store *session.Store, title string) views.Layout {
	flash, err := store.PopFlash(r.Context())
	if err != nil {
		logger.Warn("Failed to pop flash message", "error", err)
	}
	return views.Layout{
		Title:         title,
		Email:         store.Email(),
		Authenticated: store.IsAuthenticated(),
		Flash:         flash,
	}
}

// saveFailed - сбой записи сессии
func saveFailed(w http.ResponseWriter, err error) {
	logger.Error("Failed to save session", "error", err)
	http.Error(w, "Server error", http.StatusInternalServerError)
}

// errorMessage - текст ошибки формы: ошибка проверки поля, сообщение внешнего сервиса или fallback
func errorMessage(err error, fallback string) string {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Message
	}
	return services.DisplayMessage(err, fallback)
}

// errorStatus - код ответа для формы, показанной повторно с ошибкой
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrGatewayFailure):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrResendTooSoon):
		return http.StatusTooManyRequests
	case errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}
