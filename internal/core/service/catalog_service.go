package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/api/metrics"
	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/core/ports"
)

// CatalogService serves the storefront catalog through a short-lived cache
// and routes purchases to the backend.
type CatalogService struct {
	services ports.ServiceRepository
	orders   ports.OrderRepository
	cache    ports.CatalogCache
	log      zerolog.Logger
}

func NewCatalogService(services ports.ServiceRepository, orders ports.OrderRepository, cache ports.CatalogCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{services: services, orders: orders, cache: cache, log: log}
}

// List returns the full catalog. Cache hits skip the backend entirely; a
// miss fetches and refills. The cache holds the backend's answer verbatim,
// inactive services included, so views decide what to show.
func (s *CatalogService) List(ctx context.Context, sess *domain.Session) ([]domain.Service, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()

	services, err := s.services.FindAll(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, services)
	return services, nil
}

// Purchase creates an order for the session's own user. Coin balance and
// service availability are the backend's call; its rejection message is
// propagated untouched for the form to show.
func (s *CatalogService) Purchase(ctx context.Context, sess *domain.Session, serviceID string) (*domain.Order, error) {
	order, err := s.orders.Create(ctx, sess.Token, sess.ID, serviceID)
	if err != nil {
		metrics.PurchasesTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	metrics.PurchasesTotal.WithLabelValues("success").Inc()
	s.log.Info().
		Str("user_id", sess.ID).
		Str("service_id", serviceID).
		Str("order_id", order.ID).
		Msg("service purchased")
	return order, nil
}
