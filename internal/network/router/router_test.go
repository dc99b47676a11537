package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dawid-walter/basketo-shopper-order/internal/config"
	"github.com/dawid-walter/basketo-shopper-order/internal/services/mocks"
	"github.com/dawid-walter/basketo-shopper-order/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, flow config.AuthFlow) (http.Handler, *mocks.MockAuthService, *mocks.MockOrdersService) {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthService(ctrl)
	orders := mocks.NewMockOrdersService(ctrl)
	contact := mocks.NewMockContactService(ctrl)

	cfg := config.DefaultConfig()
	cfg.Server.AuthFlow = flow
	return NewRouter(cfg, storage.NewMemorySessions(), auth, orders, contact).HandleRouter(), auth, orders
}

func do(h http.Handler, req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_GuardAndFallback(t *testing.T) {
	h, _, _ := newTestRouter(t, config.AuthFlowEmail)

	for _, path := range []string{"/orders", "/order/ORDER-1", "/contact", "/", "/no/such/page"} {
		w := do(h, httptest.NewRequest(http.MethodGet, path, nil), nil)
		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}

	w := do(h, httptest.NewRequest(http.MethodGet, "/healthz", nil), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_EmailLogin(t *testing.T) {
	h, auth, orders := newTestRouter(t, config.AuthFlowEmail)

	w := do(h, httptest.NewRequest(http.MethodGet, "/login", nil), nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	auth.EXPECT().RequestPin(gomock.Any(), "user@example.com").Return(nil)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(url.Values{"email": {"user@example.com"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = do(h, req, cookies)
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = do(h, httptest.NewRequest(http.MethodGet, "/login", nil), cookies)
	assert.Contains(t, w.Body.String(), "Resend PIN in")

	auth.EXPECT().VerifyPin(gomock.Any(), "user@example.com", "123456").Return("tkn", nil)
	req = httptest.NewRequest(http.MethodPost, "/login/verify", strings.NewReader(url.Values{"pin": {"123456"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = do(h, req, cookies)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/orders", w.Header().Get("Location"))

	// cookie, выданная до входа, больше не открывает сессию
	anonymous := cookies
	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, anonymous[0].Value, cookies[0].Value)
	w = do(h, httptest.NewRequest(http.MethodGet, "/orders", nil), anonymous)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	orders.EXPECT().GetOrders(gomock.Any(), "tkn").Return(nil, nil)
	w = do(h, httptest.NewRequest(http.MethodGet, "/orders", nil), cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user@example.com")

	w = do(h, httptest.NewRequest(http.MethodGet, "/", nil), cookies)
	assert.Equal(t, "/orders", w.Header().Get("Location"))

	w = do(h, httptest.NewRequest(http.MethodPost, "/logout", nil), cookies)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = do(h, httptest.NewRequest(http.MethodGet, "/orders", nil), cookies)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRouter_OrderFlowRoutes(t *testing.T) {
	h, _, _ := newTestRouter(t, config.AuthFlowOrderNumber)

	w := do(h, httptest.NewRequest(http.MethodGet, "/verify-pin", nil), nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// в варианте по номеру заказа шага PIN-кода по email нет
	w = do(h, httptest.NewRequest(http.MethodPost, "/login/verify", nil), nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
