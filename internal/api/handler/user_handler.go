package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sistemasvip/client-portal/internal/core/ports"
)

// UserHandler serves the account profile.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Profile returns the signed-in client's own record, fresh from the
// backend so the coin balance reflects recent purchases.
//
// @Summary      Get my profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.ClientUser
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	user, err := h.users.Profile(c.Request().Context(), sess, sess.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
