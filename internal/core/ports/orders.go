package ports

import (
	"context"

	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/core/filter"
)

// OrderRepository is the outbound order surface of the backend.
type OrderRepository interface {
	Create(ctx context.Context, token, userID, serviceID string) (*domain.Order, error)
	FindByUser(ctx context.Context, token, userID string) ([]domain.Order, error)
}

// OrderService serves a client's own orders, already sorted and faceted.
type OrderService interface {
	ListMine(ctx context.Context, sess *domain.Session, facet filter.OrderStatusFacet) ([]domain.Order, error)
	// LatestMine returns at most n newest orders for the dashboard summary.
	LatestMine(ctx context.Context, sess *domain.Session, n int) ([]domain.Order, error)
}
