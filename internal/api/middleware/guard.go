package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/api/metrics"
	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/session"
)

// Context keys set by the guard for downstream handlers.
const (
	SessionContextKey = "session"
	SessionStateKey   = "session_state"
)

// GuardConfig wires the route guard.
type GuardConfig struct {
	Sessions *session.Manager
	// AdminURL is where ADMIN identities get bounced; the admin portal is
	// a separate application.
	AdminURL string
	Log      zerolog.Logger
}

// Guard enforces per-navigation access rules on matched paths, from the
// durable cookie alone. It runs on every request to a matched path, not
// only on first load; nothing downstream of it is a trust boundary.
//
// Rules, in order:
//   - corrupt identity cookie      → delete cookie, land on /login
//   - ADMIN on the client area     → bounce to the admin portal
//   - CLIENTE on the admin area    → bounce to /dashboard
//   - any valid role on an entry page (GET) → bounce to that role's home
//   - nobody on a protected area   → bounce to /login
//   - otherwise                    → allow, with the session (when the
//     path needs one) resolved into the request context
func Guard(cfg GuardConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if !matched(path) {
				return next(c)
			}
			c.Set(SessionStateKey, session.StateLoading)

			ident, err := cfg.Sessions.PeekIdentity(c.Request())
			if err != nil {
				cfg.Sessions.Clear(c.Response())
				metrics.GuardRedirectsTotal.WithLabelValues("corrupt_cookie").Inc()
				metrics.SessionTeardownsTotal.WithLabelValues("malformed").Inc()
				cfg.Log.Warn().Str("path", path).Msg("corrupt identity cookie removed")
				if path == "/login" {
					c.Set(SessionStateKey, session.StateReady)
					return next(c)
				}
				return c.Redirect(http.StatusFound, "/login")
			}

			// Entry pages only redirect GET navigations; the POST
			// endpoints under the same paths are the forms themselves.
			entryNav := isEntryPage(path) && c.Request().Method == http.MethodGet
			clientArea := strings.HasPrefix(path, "/dashboard")
			adminArea := strings.HasPrefix(path, "/admin")

			switch {
			case ident == nil:
				if clientArea || adminArea {
					metrics.GuardRedirectsTotal.WithLabelValues("unauthenticated").Inc()
					return c.Redirect(http.StatusFound, "/login")
				}

			case ident.Role == domain.RoleAdmin:
				if clientArea {
					metrics.GuardRedirectsTotal.WithLabelValues("wrong_role").Inc()
					return c.Redirect(http.StatusFound, cfg.AdminURL)
				}
				if entryNav {
					metrics.GuardRedirectsTotal.WithLabelValues("entry_page").Inc()
					return c.Redirect(http.StatusFound, cfg.AdminURL)
				}

			default: // CLIENTE
				if adminArea {
					metrics.GuardRedirectsTotal.WithLabelValues("wrong_role").Inc()
					return c.Redirect(http.StatusFound, "/dashboard")
				}
				if entryNav {
					metrics.GuardRedirectsTotal.WithLabelValues("entry_page").Inc()
					return c.Redirect(http.StatusFound, "/dashboard")
				}
				if clientArea {
					sess, err := cfg.Sessions.Load(c.Request())
					if err != nil || sess == nil {
						cfg.Sessions.Clear(c.Response())
						metrics.SessionTeardownsTotal.WithLabelValues(teardownReason(err)).Inc()
						metrics.GuardRedirectsTotal.WithLabelValues("unauthenticated").Inc()
						return c.Redirect(http.StatusFound, "/login")
					}
					c.Set(SessionContextKey, sess)
				}
			}

			c.Set(SessionStateKey, session.StateReady)
			return next(c)
		}
	}
}

func matched(path string) bool {
	return isEntryPage(path) ||
		strings.HasPrefix(path, "/dashboard") ||
		strings.HasPrefix(path, "/admin")
}

func isEntryPage(path string) bool {
	return path == "/" || path == "/login" || path == "/register"
}

func teardownReason(err error) string {
	switch err {
	case domain.ErrSessionExpired:
		return "expired"
	case domain.ErrRoleNotAllowed:
		return "role_rejected"
	default:
		return "malformed"
	}
}
