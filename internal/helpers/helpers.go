package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

const (
	// SessionCookie - имя cookie с подписанным идентификатором сессии
	SessionCookie = "jwt"
	sessionClaim  = "sid"
	// срок жизни cookie; сессия после входа не истекает
	cookieMaxAge = 365 * 24 * 60 * 60
)

var ErrNoSession = errors.New("undefined session id")

// GetSessionID - извлекает идентификатор сессии из проверенного JWT в контексте
func GetSessionID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoSession, err)
	}
	sid, ok := claims[sessionClaim].(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}

// EncodeSessionID - подписанный JWT с идентификатором сессии
func EncodeSessionID(ja *jwtauth.JWTAuth, sid string) (string, error) {
	_, token, err := ja.Encode(map[string]interface{}{sessionClaim: sid})
	if err != nil {
		return "", fmt.Errorf("failed to sign session id: %w", err)
	}
	return token, nil
}

// SessionCookies выдаёт cookie с идентификатором сессии
type SessionCookies struct {
	ja     *jwtauth.JWTAuth
	secure bool
}

func NewSessionCookies(ja *jwtauth.JWTAuth, secure bool) *SessionCookies {
	return &SessionCookies{ja: ja, secure: secure}
}

func (c *SessionCookies) Issue(w http.ResponseWriter, sid string) error {
	token, err := EncodeSessionID(c.ja, sid)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

type cookiesKey struct{}

func WithSessionCookies(ctx context.Context, cookies *SessionCookies) context.Context {
	return context.WithValue(ctx, cookiesKey{}, cookies)
}

func SessionCookiesFrom(ctx context.Context) (*SessionCookies, bool) {
	cookies, ok := ctx.Value(cookiesKey{}).(*SessionCookies)
	return cookies, ok && cookies != nil
}
