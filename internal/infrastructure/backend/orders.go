package backend

import (
	"context"
	"net/http"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// OrderRepository implements ports.OrderRepository over the /ordenes
// endpoints.
type OrderRepository struct {
	client *Client
}

func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{client: client}
}

type createOrderPayload struct {
	ServiceID string `json:"servicioId"`
}

func (r *OrderRepository) Create(ctx context.Context, token, userID, serviceID string) (*domain.Order, error) {
	var order domain.Order
	err := r.client.do(ctx, "orders.create", http.MethodPost, "/ordenes/"+userID, token,
		createOrderPayload{ServiceID: serviceID}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, token, userID string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.client.do(ctx, "orders.list", http.MethodGet, "/ordenes/mis/"+userID, token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
