package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/core/filter"
	"github.com/sistemasvip/client-portal/internal/core/ports"
)

const dateParamLayout = "2006-01-02"

// TransactionHandler serves the coin movement history.
type TransactionHandler struct {
	transactions ports.TransactionService
}

func NewTransactionHandler(transactions ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

type transactionListResponse struct {
	Transactions []domain.Transaction `json:"transacciones"`
	Facet        string               `json:"tipo"`
}

// List returns the session's transactions, newest first. The type facet and
// the date range combine: a row must satisfy both to appear. The range only
// applies when both bounds are present, and both days are inclusive.
//
// @Summary      List my transactions
// @Tags         transactions
// @Produce      json
// @Param        tipo   query     string  false  "Type facet"  Enums(TODAS, RECARGA, GASTO, REEMBOLSO)
// @Param        desde  query     string  false  "Range start (YYYY-MM-DD)"
// @Param        hasta  query     string  false  "Range end (YYYY-MM-DD)"
// @Success      200    {object}  transactionListResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /dashboard/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	facet, err := filter.ParseTypeFacet(c.QueryParam("tipo"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	facets := filter.TransactionFacets{Type: facet}

	desde := c.QueryParam("desde")
	hasta := c.QueryParam("hasta")
	if desde != "" && hasta != "" {
		from, err := time.Parse(dateParamLayout, desde)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "desde must be YYYY-MM-DD")
		}
		to, err := time.Parse(dateParamLayout, hasta)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "hasta must be YYYY-MM-DD")
		}
		facets.Range = &filter.DateRange{From: from, To: to}
	}

	transactions, err := h.transactions.ListMine(c.Request().Context(), sess, facets)
	if err != nil {
		return err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return c.JSON(http.StatusOK, transactionListResponse{Transactions: transactions, Facet: string(facet)})
}
