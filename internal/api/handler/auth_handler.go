package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/core/ports"
	"github.com/sistemasvip/client-portal/internal/session"
)

// AuthHandler owns the login, logout and two-step registration endpoints.
type AuthHandler struct {
	auth     ports.AuthService
	sessions *session.Manager
}

func NewAuthHandler(auth ports.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type verifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"codigo" validate:"required,len=6"`
}

type sessionResponse struct {
	User     domain.Identity `json:"user"`
	Redirect string          `json:"redirect,omitempty"`
}

type registrationPendingResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// Login authenticates a client and issues the session cookies.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if err := h.sessions.Issue(c.Response(), sess); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{User: sess.Identity, Redirect: "/dashboard"})
}

// Logout destroys the session unconditionally.
//
// @Summary      Log out
// @Tags         auth
// @Success      204  "session cleared"
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c.Response())
	return c.NoContent(http.StatusNoContent)
}

// Register starts the two-step signup: the backend mails a verification
// code and the flow moves to the code-entry step.
//
// @Summary      Request registration
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      202   {object}  registrationPendingResponse
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.auth.RequestRegistration(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	// Email comes back so the code-entry step can display and reuse it.
	return c.JSON(http.StatusAccepted, registrationPendingResponse{Message: msg, Email: req.Email})
}

// Verify completes the signup with the mailed 6-character code, issues the
// session and schedules the dashboard redirect.
//
// @Summary      Verify registration code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyRequest  true  "Email and code"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register/verify [post]
func (h *AuthHandler) Verify(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.auth.VerifyCode(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return err
	}
	if err := h.sessions.Issue(c.Response(), sess); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sessionResponse{User: sess.Identity, Redirect: "/dashboard"})
}

// RegisterLegacy is the single-step flow kept for backends predating email
// verification: register and log in with one call.
//
// @Summary      Register (legacy single-step)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) RegisterLegacy(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.auth.RegisterLegacy(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	if err := h.sessions.Issue(c.Response(), sess); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sessionResponse{User: sess.Identity, Redirect: "/dashboard"})
}
