package ports

import (
	"context"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// UserRepository fetches user records from the backend on behalf of a
// session's bearer token.
type UserRepository interface {
	FindByID(ctx context.Context, token, id string) (*domain.ClientUser, error)
}

// UserService exposes profile reads to the handlers.
type UserService interface {
	// Profile fetches a user record. Clients may only fetch their own.
	Profile(ctx context.Context, sess *domain.Session, id string) (*domain.ClientUser, error)
}
