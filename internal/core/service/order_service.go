package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/core/filter"
	"github.com/sistemasvip/client-portal/internal/core/ports"
)

// OrderService serves a client's own orders. The backend returns the full
// list; sorting and faceting happen locally and never re-fetch.
type OrderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

func (s *OrderService) ListMine(ctx context.Context, sess *domain.Session, facet filter.OrderStatusFacet) ([]domain.Order, error) {
	orders, err := s.repo.FindByUser(ctx, sess.Token, sess.ID)
	if err != nil {
		return nil, err
	}
	return filter.Orders(orders, facet), nil
}

func (s *OrderService) LatestMine(ctx context.Context, sess *domain.Session, n int) ([]domain.Order, error) {
	orders, err := s.ListMine(ctx, sess, filter.FacetAll)
	if err != nil {
		return nil, err
	}
	if len(orders) > n {
		orders = orders[:n]
	}
	return orders, nil
}
