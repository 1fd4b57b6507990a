package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/core/ports"
)

// UserService serves user records on behalf of a session.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Profile fetches a user record. A client may only read its own record;
// anything else is forbidden regardless of what the backend would say.
func (s *UserService) Profile(ctx context.Context, sess *domain.Session, id string) (*domain.ClientUser, error) {
	if sess == nil || sess.ID != id {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, sess.Token, id)
}
