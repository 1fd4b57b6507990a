package backend

import (
	"context"
	"net/http"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// UserRepository implements ports.UserRepository over GET /usuarios/{id}.
type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) FindByID(ctx context.Context, token, id string) (*domain.ClientUser, error) {
	var user domain.ClientUser
	if err := r.client.do(ctx, "users.get", http.MethodGet, "/usuarios/"+id, token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
