package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

func TestUserService_Profile_OwnRecord(t *testing.T) {
	svc := NewUserService(&stubUserRepo{
		fn: func(_ context.Context, _, id string) (*domain.ClientUser, error) {
			return &domain.ClientUser{ID: id, Name: "Ana", Coins: 7}, nil
		},
	}, zerolog.Nop())

	user, err := svc.Profile(context.Background(), testSession(), "u1")
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if user.Coins != 7 {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserService_Profile_OtherUserForbidden(t *testing.T) {
	svc := NewUserService(&stubUserRepo{
		fn: func(context.Context, string, string) (*domain.ClientUser, error) {
			t.Fatalf("backend must not be called for foreign profiles")
			return nil, nil
		},
	}, zerolog.Nop())

	if _, err := svc.Profile(context.Background(), testSession(), "someone-else"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
