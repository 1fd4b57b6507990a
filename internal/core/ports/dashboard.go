package ports

import (
	"context"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// DashboardSummary is everything the dashboard landing page shows in one
// response: the fresh user record (coin balance included) and the newest
// orders.
type DashboardSummary struct {
	User         *domain.ClientUser `json:"usuario"`
	LatestOrders []domain.Order     `json:"ultimasOrdenes"`
}

// DashboardService aggregates the landing page's independent fetches. The
// fetches run in parallel and are awaited jointly: either the full summary
// or an error, never a partial render.
type DashboardService interface {
	Summary(ctx context.Context, sess *domain.Session) (*DashboardSummary, error)
}
