package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/session"
)

func newErrorEcho(t *testing.T, fail error) *echo.Echo {
	t.Helper()
	e := echo.New()
	sessions := session.NewManager(24*time.Hour, "", false, zerolog.Nop())
	e.HTTPErrorHandler = NewHTTPErrorHandler(sessions, zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error { return fail })
	return e
}

func TestErrorHandler_SessionExpired_APICaller(t *testing.T) {
	e := newErrorEcho(t, domain.ErrSessionExpired)

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	// Expiry tears the cookies down no matter which endpoint surfaced it.
	res := http.Response{Header: rec.Header()}
	cleared := map[string]bool{}
	for _, ck := range res.Cookies() {
		if ck.MaxAge == -1 {
			cleared[ck.Name] = true
		}
	}
	if !cleared[session.CookieUser] || !cleared[session.CookieToken] {
		t.Fatalf("expected both cookies cleared, got %v", cleared)
	}
}

func TestErrorHandler_SessionExpired_BrowserRedirects(t *testing.T) {
	e := newErrorEcho(t, domain.ErrSessionExpired)

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected /login, got %q", loc)
	}
}

func TestErrorHandler_BackendErrorPassthrough(t *testing.T) {
	e := newErrorEcho(t, &domain.BackendError{StatusCode: http.StatusPaymentRequired, Message: "monedas insuficientes"})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "monedas insuficientes") {
		t.Fatalf("expected backend message, got %s", rec.Body.String())
	}
}

func TestErrorHandler_DomainMappings(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"role not allowed", domain.ErrRoleNotAllowed, http.StatusForbidden},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"no pending registration", domain.ErrNoPendingRegistration, http.StatusConflict},
		{"backend down", domain.ErrBackendUnavailable, http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newErrorEcho(t, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

func TestErrorHandler_BackendDownHidesDetail(t *testing.T) {
	e := newErrorEcho(t, domain.ErrBackendUnavailable)

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), "dial") || strings.Contains(rec.Body.String(), "connection") {
		t.Fatalf("transport detail leaked: %s", rec.Body.String())
	}
}

func TestErrorHandler_UnknownErrorIs500(t *testing.T) {
	e := newErrorEcho(t, errors.New("cache poisoned"))

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Fatalf("expected generic message, got %s", rec.Body.String())
	}
}
