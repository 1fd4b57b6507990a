package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/core/ports"
)

// ServiceHandler serves the purchasable catalog.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

type serviceListResponse struct {
	Services []domain.Service `json:"servicios"`
}

type purchaseResponse struct {
	Order   *domain.Order `json:"orden"`
	Message string        `json:"message"`
}

// List returns the active service catalog.
//
// @Summary      List catalog services
// @Tags         services
// @Produce      json
// @Success      200  {object}  serviceListResponse
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	services, err := h.catalog.List(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	if services == nil {
		services = []domain.Service{}
	}
	return c.JSON(http.StatusOK, serviceListResponse{Services: services})
}

// Purchase places an order for one catalog service. Insufficient coins and
// other backend rejections surface with the backend's own message.
//
// @Summary      Purchase a service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      201  {object}  purchaseResponse
// @Failure      401  {object}  map[string]string
// @Failure      402  {object}  map[string]string
// @Router       /dashboard/services/{id}/purchase [post]
func (h *ServiceHandler) Purchase(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	serviceID := c.Param("id")
	if serviceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "service id is required")
	}

	order, err := h.catalog.Purchase(c.Request().Context(), sess, serviceID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, purchaseResponse{Order: order, Message: "orden creada"})
}
