// Package session is the single source of truth for "who is logged in".
// Sessions survive page reloads through two cookies: `user` holds the
// JSON-encoded identity (no secret), `jwtToken` the opaque bearer
// credential. Both are scoped to path / with a bounded expiry.
package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// Cookie names shared with the browser and the edge guard.
const (
	CookieUser  = "user"
	CookieToken = "jwtToken"
)

// State tracks a request's session lifecycle so readers can distinguish
// "don't know yet" from "confirmed logged out". Handlers must only read the
// session once the guard has driven it to StateReady.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

// Manager loads, issues and clears sessions. It is stateless between
// requests; the cookies are the durable side-channel.
type Manager struct {
	ttl    time.Duration
	secret string
	secure bool
	log    zerolog.Logger
}

// NewManager builds a Manager. ttl bounds cookie lifetime (defaults to 7
// days). jwtSecret, when non-empty, enables HS256 signature verification of
// the credential; otherwise only a best-effort expiry inspection runs.
func NewManager(ttl time.Duration, jwtSecret string, secure bool, log zerolog.Logger) *Manager {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Manager{ttl: ttl, secret: jwtSecret, secure: secure, log: log}
}

// PeekIdentity decodes only the identity cookie, without touching the
// credential. This is the edge view of the session: the route guard must
// not depend on anything else. Absence is (nil, nil); garbage or an unknown
// role tag is domain.ErrMalformedSession so the caller can clean up.
func (m *Manager) PeekIdentity(r *http.Request) (*domain.Identity, error) {
	c, err := r.Cookie(CookieUser)
	if err != nil {
		return nil, nil
	}
	ident, err := decodeIdentity(c.Value)
	if err != nil {
		return nil, err
	}
	return ident, nil
}

// Load reconstructs the full session from the durable side-channel. It is
// the initialize() step: both cookies must be present, the identity must be
// a CLIENTE, and the credential must still look alive. Absence of both
// cookies is (nil, nil); every failure mode returns a distinct error so the
// caller can tear down the offending state:
//
//	domain.ErrMalformedSession — undecodable or partial state
//	domain.ErrRoleNotAllowed   — valid identity of a non-CLIENTE role
//	domain.ErrSessionExpired   — credential expired or forged
func (m *Manager) Load(r *http.Request) (*domain.Session, error) {
	userCookie, userErr := r.Cookie(CookieUser)
	tokenCookie, tokenErr := r.Cookie(CookieToken)

	if userErr != nil && tokenErr != nil {
		return nil, nil
	}
	if userErr != nil || tokenErr != nil {
		// One cookie without the other is partial state, not a session.
		return nil, domain.ErrMalformedSession
	}

	ident, err := decodeIdentity(userCookie.Value)
	if err != nil {
		return nil, err
	}
	if ident.Role != domain.RoleClient {
		return nil, domain.ErrRoleNotAllowed
	}
	if err := m.checkToken(tokenCookie.Value); err != nil {
		return nil, err
	}

	return &domain.Session{Identity: *ident, Token: tokenCookie.Value}, nil
}

// Issue persists a freshly authenticated session. Identities of any role
// other than CLIENTE are rejected and any half-written state is cleared;
// this duplicates the server-side check on purpose (defense-in-depth, not
// the security boundary).
func (m *Manager) Issue(w http.ResponseWriter, sess *domain.Session) error {
	if !sess.IsClient() {
		m.log.Warn().Str("role", string(sess.Role)).Msg("refusing to issue session for non-client role")
		m.Clear(w)
		return domain.ErrRoleNotAllowed
	}

	raw, err := json.Marshal(sess.Identity)
	if err != nil {
		return err
	}

	expires := time.Now().Add(m.ttl)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieUser,
		Value:    url.QueryEscape(string(raw)),
		Path:     "/",
		Expires:  expires,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     CookieToken,
		Value:    sess.Token,
		Path:     "/",
		Expires:  expires,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires both cookies unconditionally. Idempotent.
func (m *Manager) Clear(w http.ResponseWriter) {
	for _, name := range []string{CookieUser, CookieToken} {
		http.SetCookie(w, &http.Cookie{
			Name:    name,
			Value:   "",
			Path:    "/",
			MaxAge:  -1,
			Expires: time.Unix(0, 0),
		})
	}
}

// checkToken inspects the bearer credential. With a configured secret the
// signature and registered claims are verified; without one the credential
// is treated as opaque, except that a parseable JWT with a past exp claim
// is rejected rather than sent to the backend just to bounce.
func (m *Manager) checkToken(raw string) error {
	if raw == "" {
		return domain.ErrMalformedSession
	}

	if m.secret != "" {
		parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if _, err := parser.Parse(raw, func(*jwt.Token) (any, error) {
			return []byte(m.secret), nil
		}); err != nil {
			return domain.ErrSessionExpired
		}
		return nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		// Not a JWT. The credential is opaque by contract; let the
		// backend judge it.
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if exp.Before(time.Now()) {
		return domain.ErrSessionExpired
	}
	return nil
}

// decodeIdentity parses a cookie value into an Identity, tolerating the
// URL-encoding browsers apply to JSON cookie values.
func decodeIdentity(value string) (*domain.Identity, error) {
	raw, err := url.QueryUnescape(value)
	if err != nil {
		raw = value
	}

	var ident domain.Identity
	if err := json.Unmarshal([]byte(raw), &ident); err != nil {
		return nil, domain.ErrMalformedSession
	}
	if !ident.Role.Valid() {
		return nil, domain.ErrMalformedSession
	}
	return &ident, nil
}
