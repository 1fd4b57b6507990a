package ports

import (
	"context"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// ServiceRepository fetches the service catalog from the backend.
type ServiceRepository interface {
	FindAll(ctx context.Context, token string) ([]domain.Service, error)
}

// CatalogCache is a short-lived read-through cache for the catalog. A failed
// Get is indistinguishable from a miss; Set failures are non-fatal.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Service, bool)
	Set(ctx context.Context, services []domain.Service)
}

// CatalogService serves the storefront catalog and purchases.
type CatalogService interface {
	List(ctx context.Context, sess *domain.Session) ([]domain.Service, error)
	Purchase(ctx context.Context, sess *domain.Session, serviceID string) (*domain.Order, error)
}
