package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dawid-walter/basketo-shopper-order/internal/helpers"
	"github.com/dawid-walter/basketo-shopper-order/internal/session"
	"github.com/dawid-walter/basketo-shopper-order/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionChain(ja *jwtauth.JWTAuth, repo storage.SessionStorage, h http.Handler) http.Handler {
	return jwtauth.Verify(ja, jwtauth.TokenFromCookie)(Sessions(ja, repo, false)(h))
}

func TestSessions_IssuesCookie(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("secret"), nil)
	repo := storage.NewMemorySessions()

	var sid string
	handler := sessionChain(ja, repo, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := session.FromContext(r.Context())
		require.True(t, ok)
		sid = store.ID()
		// обработчики входа выдают новую cookie через тот же объект
		_, ok = helpers.SessionCookiesFrom(r.Context())
		assert.True(t, ok)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))

	res := w.Result()
	defer res.Body.Close()
	require.Len(t, res.Cookies(), 1)
	cookie := res.Cookies()[0]
	assert.Equal(t, helpers.SessionCookie, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, sid)

	// с той же cookie приходит та же сессия, новая cookie не выдаётся
	var again string
	handler = sessionChain(ja, repo, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, _ := session.FromContext(r.Context())
		again = store.ID()
	}))
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, sid, again)
	assert.Empty(t, w.Result().Cookies())
}

func TestSessions_ForgedCookie(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("secret"), nil)
	forger := jwtauth.New("HS256", []byte("other"), nil)
	forged, err := helpers.EncodeSessionID(forger, "victim")
	require.NoError(t, err)

	var sid string
	handler := sessionChain(ja, storage.NewMemorySessions(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, _ := session.FromContext(r.Context())
		sid = store.ID()
	}))
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: forged})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotEqual(t, "victim", sid)
}

func TestRequireSession(t *testing.T) {
	repo := storage.NewMemorySessions()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	testCases := []struct {
		Name             string
		Token            string
		ExpectedStatus   int
		ExpectedLocation string
	}{
		{Name: "Anonymous #1", ExpectedStatus: http.StatusSeeOther, ExpectedLocation: LoginPath},
		{Name: "Authenticated #2", Token: "tkn", ExpectedStatus: http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store := session.New(repo, "sid")
			if tc.Token != "" {
				require.NoError(t, store.SetSession(context.Background(), "user@example.com", tc.Token))
			}
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			req = req.WithContext(session.NewContext(req.Context(), store))
			w := httptest.NewRecorder()

			RequireSession(next).ServeHTTP(w, req)

			assert.Equal(t, tc.ExpectedStatus, w.Code)
			assert.Equal(t, tc.ExpectedLocation, w.Header().Get("Location"))
		})
	}
}

func TestLogHandle_Flush(t *testing.T) {
	w := httptest.NewRecorder()
	handler := LogHandle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		_, _ = w.Write([]byte("data: 1\n\n"))
		flusher.Flush()
	}))
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login/cooldown", nil))

	assert.True(t, w.Flushed)
	assert.Equal(t, http.StatusOK, w.Code)
}
