package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/core/filter"
	"github.com/sistemasvip/client-portal/internal/core/ports"
)

// OrderHandler serves the "mis órdenes" page data.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderListResponse struct {
	Orders []domain.Order `json:"ordenes"`
	Facet  string         `json:"estado"`
}

// List returns the session's orders, newest first, optionally restricted
// to one status. An empty result is a normal page state, not an error.
//
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Param        estado  query     string  false  "Status facet"  Enums(TODAS, PENDIENTE, PROCESANDO, COMPLETADO, CANCELADO)
// @Success      200     {object}  orderListResponse
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Router       /dashboard/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	facet, err := filter.ParseOrderStatusFacet(c.QueryParam("estado"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	orders, err := h.orders.ListMine(c.Request().Context(), sess, facet)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, orderListResponse{Orders: orders, Facet: string(facet)})
}
