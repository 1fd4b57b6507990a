package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/api/metrics"
	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/session"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Tears down the session cookies whenever the backend reports the
//     credential expired, from any endpoint, then redirects browsers to
//     /login and answers API callers with 401.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Passes backend rejections through with their original status and
//     message so purchase failures read the same as on the storefront.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(sessions *session.Manager, log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrSessionExpired) {
			sessions.Clear(c.Response())
			metrics.SessionTeardownsTotal.WithLabelValues("expired").Inc()
			if wantsHTML(c.Request()) {
				_ = c.Redirect(http.StatusFound, "/login")
				return
			}
			_ = c.JSON(http.StatusUnauthorized, errorResponse{Error: "session expired"})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Backend rejections keep their status and message intact.
	var be *domain.BackendError
	if errors.As(err, &be) {
		msg := be.Message
		if msg == "" {
			msg = http.StatusText(be.StatusCode)
		}
		return be.StatusCode, msg
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrRoleNotAllowed):
		return http.StatusForbidden, "account type not allowed"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrMalformedSession):
		return http.StatusUnauthorized, "session not established"
	case errors.Is(err, domain.ErrNoPendingRegistration):
		return http.StatusConflict, "no pending registration for that email"
	case errors.Is(err, domain.ErrBackendUnavailable):
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("backend unreachable")
		return http.StatusBadGateway, "the store is temporarily unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
