package backend

import (
	"context"
	"net/http"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// ServiceRepository implements ports.ServiceRepository over GET /servicios.
type ServiceRepository struct {
	client *Client
}

func NewServiceRepository(client *Client) *ServiceRepository {
	return &ServiceRepository{client: client}
}

func (r *ServiceRepository) FindAll(ctx context.Context, token string) ([]domain.Service, error) {
	var services []domain.Service
	if err := r.client.do(ctx, "services.list", http.MethodGet, "/servicios", token, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}
