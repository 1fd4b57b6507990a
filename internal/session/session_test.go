package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

func newManager(secret string) *Manager {
	return NewManager(7*24*time.Hour, secret, false, zerolog.Nop())
}

func clientSession() *domain.Session {
	return &domain.Session{
		Identity: domain.Identity{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: domain.RoleClient},
		Token:    "opaque-token",
	}
}

func requestWithCookies(cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func signedToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"rol": "CLIENTE",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestIssueAndLoad_RoundTrip(t *testing.T) {
	m := newManager("")
	rec := httptest.NewRecorder()

	if err := m.Issue(rec, clientSession()); err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("expected 2 cookies, got %d", len(cookies))
	}
	for _, c := range cookies {
		if c.Path != "/" {
			t.Fatalf("cookie %s not scoped to /", c.Name)
		}
		if time.Until(c.Expires) < 6*24*time.Hour {
			t.Fatalf("cookie %s expiry too short: %v", c.Name, c.Expires)
		}
	}

	sess, err := m.Load(requestWithCookies(cookies...))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if sess == nil || sess.ID != "u1" || sess.Token != "opaque-token" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if !sess.IsClient() {
		t.Fatalf("expected client session")
	}
}

func TestIssue_RejectsAdminAndClears(t *testing.T) {
	m := newManager("")
	rec := httptest.NewRecorder()

	admin := &domain.Session{
		Identity: domain.Identity{ID: "a1", Role: domain.RoleAdmin},
		Token:    "tok",
	}
	if err := m.Issue(rec, admin); !errors.Is(err, domain.ErrRoleNotAllowed) {
		t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
	}

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge != -1 {
			t.Fatalf("expected cookie %s cleared, got MaxAge %d", c.Name, c.MaxAge)
		}
	}
}

func TestLoad_NoCookies(t *testing.T) {
	m := newManager("")
	sess, err := m.Load(requestWithCookies())
	if err != nil || sess != nil {
		t.Fatalf("expected no session without error, got %v / %v", sess, err)
	}
}

func TestLoad_PartialState(t *testing.T) {
	m := newManager("")
	_, err := m.Load(requestWithCookies(&http.Cookie{Name: CookieToken, Value: "tok"}))
	if !errors.Is(err, domain.ErrMalformedSession) {
		t.Fatalf("expected ErrMalformedSession for token without identity, got %v", err)
	}
}

func TestLoad_MalformedIdentity(t *testing.T) {
	m := newManager("")
	_, err := m.Load(requestWithCookies(
		&http.Cookie{Name: CookieUser, Value: "{not json"},
		&http.Cookie{Name: CookieToken, Value: "tok"},
	))
	if !errors.Is(err, domain.ErrMalformedSession) {
		t.Fatalf("expected ErrMalformedSession, got %v", err)
	}
}

func TestLoad_UnknownRoleTag(t *testing.T) {
	m := newManager("")
	val := url.QueryEscape(`{"id":"u1","nombre":"X","email":"x@y.z","rol":"SUPERUSER"}`)
	_, err := m.Load(requestWithCookies(
		&http.Cookie{Name: CookieUser, Value: val},
		&http.Cookie{Name: CookieToken, Value: "tok"},
	))
	if !errors.Is(err, domain.ErrMalformedSession) {
		t.Fatalf("expected ErrMalformedSession for unknown role, got %v", err)
	}
}

func TestLoad_AdminRoleRejected(t *testing.T) {
	m := newManager("")
	val := url.QueryEscape(`{"id":"a1","nombre":"Root","email":"root@x.y","rol":"ADMIN"}`)
	_, err := m.Load(requestWithCookies(
		&http.Cookie{Name: CookieUser, Value: val},
		&http.Cookie{Name: CookieToken, Value: "tok"},
	))
	if !errors.Is(err, domain.ErrRoleNotAllowed) {
		t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
	}
}

func TestLoad_ExpiredJWTWithoutSecret(t *testing.T) {
	m := newManager("")
	val := url.QueryEscape(`{"id":"u1","nombre":"Ana","email":"a@b.c","rol":"CLIENTE"}`)
	stale := signedToken(t, "whatever", time.Now().Add(-time.Hour))

	_, err := m.Load(requestWithCookies(
		&http.Cookie{Name: CookieUser, Value: val},
		&http.Cookie{Name: CookieToken, Value: stale},
	))
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestLoad_VerifiedSignatureWithSecret(t *testing.T) {
	m := newManager("topsecret")
	val := url.QueryEscape(`{"id":"u1","nombre":"Ana","email":"a@b.c","rol":"CLIENTE"}`)

	good := signedToken(t, "topsecret", time.Now().Add(time.Hour))
	sess, err := m.Load(requestWithCookies(
		&http.Cookie{Name: CookieUser, Value: val},
		&http.Cookie{Name: CookieToken, Value: good},
	))
	if err != nil || sess == nil {
		t.Fatalf("expected valid session, got %v / %v", sess, err)
	}

	forged := signedToken(t, "othersecret", time.Now().Add(time.Hour))
	_, err = m.Load(requestWithCookies(
		&http.Cookie{Name: CookieUser, Value: val},
		&http.Cookie{Name: CookieToken, Value: forged},
	))
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired for forged token, got %v", err)
	}
}

func TestPeekIdentity(t *testing.T) {
	m := newManager("")

	ident, err := m.PeekIdentity(requestWithCookies())
	if err != nil || ident != nil {
		t.Fatalf("expected absence, got %v / %v", ident, err)
	}

	val := url.QueryEscape(`{"id":"a1","nombre":"Root","email":"r@x.y","rol":"ADMIN"}`)
	ident, err = m.PeekIdentity(requestWithCookies(&http.Cookie{Name: CookieUser, Value: val}))
	if err != nil {
		t.Fatalf("PeekIdentity error: %v", err)
	}
	if ident.Role != domain.RoleAdmin {
		t.Fatalf("expected ADMIN identity, got %+v", ident)
	}

	_, err = m.PeekIdentity(requestWithCookies(&http.Cookie{Name: CookieUser, Value: "garbage"}))
	if !errors.Is(err, domain.ErrMalformedSession) {
		t.Fatalf("expected ErrMalformedSession, got %v", err)
	}
}

func TestClear_Idempotent(t *testing.T) {
	m := newManager("")
	rec := httptest.NewRecorder()
	m.Clear(rec)
	m.Clear(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 4 {
		t.Fatalf("expected 4 expired cookies after double clear, got %d", len(cookies))
	}
	for _, c := range cookies {
		if c.MaxAge != -1 || c.Value != "" {
			t.Fatalf("cookie %s not expired: %+v", c.Name, c)
		}
	}
}
