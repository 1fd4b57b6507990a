package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sistemasvip/client-portal/internal/api/middleware"
	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/session"
)

// ctxSession extracts the session resolved by the route guard and performs
// a fast-fail check before any service call: the guard must have run to
// completion (StateReady) and left a CLIENTE session behind. A handler
// reached without that is a wiring error, answered as 401 rather than a
// panic.
func ctxSession(c echo.Context) (*domain.Session, error) {
	st, _ := c.Get(middleware.SessionStateKey).(session.State)
	if st != session.StateReady {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "session not established")
	}

	sess, _ := c.Get(middleware.SessionContextKey).(*domain.Session)
	if !sess.IsClient() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "session not established")
	}
	return sess, nil
}
