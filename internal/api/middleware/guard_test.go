package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/session"
)

func testGuard() echo.MiddlewareFunc {
	return Guard(GuardConfig{
		Sessions: session.NewManager(7*24*time.Hour, "", false, zerolog.Nop()),
		AdminURL: "/admin",
		Log:      zerolog.Nop(),
	})
}

func identityCookie(role domain.Role) *http.Cookie {
	raw := `{"id":"u1","nombre":"Ana","email":"ana@example.com","rol":"` + string(role) + `"}`
	return &http.Cookie{Name: session.CookieUser, Value: url.QueryEscape(raw)}
}

func tokenCookie() *http.Cookie {
	return &http.Cookie{Name: session.CookieToken, Value: "opaque-token"}
}

// runGuard sends a request through the guard with a pass-through handler
// and reports whether the handler ran plus the recorder.
func runGuard(t *testing.T, method, path string, cookies ...*http.Cookie) (bool, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := testGuard()(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("guard error: %v", err)
	}
	return reached, rec
}

func expectRedirect(t *testing.T, rec *httptest.ResponseRecorder, to string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != to {
		t.Fatalf("expected redirect to %s, got %s", to, loc)
	}
}

func TestGuard_AnonymousOnProtectedPath(t *testing.T) {
	reached, rec := runGuard(t, http.MethodGet, "/dashboard/orders")
	if reached {
		t.Fatalf("handler must not run")
	}
	expectRedirect(t, rec, "/login")
}

func TestGuard_AnonymousOnEntryPage(t *testing.T) {
	reached, rec := runGuard(t, http.MethodGet, "/login")
	if !reached {
		t.Fatalf("anonymous visitor should reach /login, got %d", rec.Code)
	}
}

func TestGuard_ClientOnEntryPage(t *testing.T) {
	reached, rec := runGuard(t, http.MethodGet, "/login", identityCookie(domain.RoleClient))
	if reached {
		t.Fatalf("handler must not run")
	}
	expectRedirect(t, rec, "/dashboard")
}

func TestGuard_ClientOnRoot(t *testing.T) {
	_, rec := runGuard(t, http.MethodGet, "/", identityCookie(domain.RoleClient))
	expectRedirect(t, rec, "/dashboard")
}

func TestGuard_ClientOnAdminArea(t *testing.T) {
	reached, rec := runGuard(t, http.MethodGet, "/admin/users", identityCookie(domain.RoleClient))
	if reached {
		t.Fatalf("handler must not run")
	}
	expectRedirect(t, rec, "/dashboard")
}

func TestGuard_AdminOnClientArea(t *testing.T) {
	reached, rec := runGuard(t, http.MethodGet, "/dashboard", identityCookie(domain.RoleAdmin))
	if reached {
		t.Fatalf("handler must not run")
	}
	expectRedirect(t, rec, "/admin")
}

func TestGuard_AdminOnEntryPage(t *testing.T) {
	_, rec := runGuard(t, http.MethodGet, "/register", identityCookie(domain.RoleAdmin))
	expectRedirect(t, rec, "/admin")
}

func TestGuard_CorruptCookieDeletedAndRedirected(t *testing.T) {
	corrupt := &http.Cookie{Name: session.CookieUser, Value: "{definitely not json"}
	reached, rec := runGuard(t, http.MethodGet, "/dashboard", corrupt)
	if reached {
		t.Fatalf("handler must not run")
	}
	expectRedirect(t, rec, "/login")

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieUser && c.MaxAge == -1 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("corrupt cookie should be deleted")
	}
}

func TestGuard_UnknownRoleTreatedAsCorrupt(t *testing.T) {
	weird := &http.Cookie{
		Name:  session.CookieUser,
		Value: url.QueryEscape(`{"id":"u1","nombre":"X","email":"x@y.z","rol":"SUPERUSER"}`),
	}
	_, rec := runGuard(t, http.MethodGet, "/dashboard", weird)
	expectRedirect(t, rec, "/login")
}

func TestGuard_ClientSessionResolvedOnClientArea(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	req.AddCookie(identityCookie(domain.RoleClient))
	req.AddCookie(tokenCookie())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := testGuard()(func(c echo.Context) error {
		sess, ok := c.Get(SessionContextKey).(*domain.Session)
		if !ok || sess == nil {
			t.Fatalf("session not resolved into context")
		}
		if sess.ID != "u1" || sess.Token != "opaque-token" {
			t.Fatalf("unexpected session: %+v", sess)
		}
		if st, _ := c.Get(SessionStateKey).(session.State); st != session.StateReady {
			t.Fatalf("session state not ready")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("guard error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_IdentityWithoutTokenTornDown(t *testing.T) {
	// Identity cookie alone is partial state on a protected path.
	reached, rec := runGuard(t, http.MethodGet, "/dashboard", identityCookie(domain.RoleClient))
	if reached {
		t.Fatalf("handler must not run")
	}
	expectRedirect(t, rec, "/login")
}

func TestGuard_PostToEntryPathNotRedirected(t *testing.T) {
	// POST /login is the login form itself, not a navigation.
	reached, _ := runGuard(t, http.MethodPost, "/login", identityCookie(domain.RoleClient))
	if !reached {
		t.Fatalf("POST to entry path should reach the handler")
	}
}

func TestGuard_UnmatchedPathPassesThrough(t *testing.T) {
	reached, _ := runGuard(t, http.MethodGet, "/health")
	if !reached {
		t.Fatalf("unmatched path should bypass the guard")
	}
}
