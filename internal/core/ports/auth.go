package ports

import (
	"context"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// AuthRepository is the outbound auth surface of the storefront backend.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RequestRegistration(ctx context.Context, name, email, password string) (string, error)
	VerifyCode(ctx context.Context, email, code string) (*domain.AuthResult, error)
	// Register is the legacy single-step flow that returns a session
	// immediately, kept for backends predating email verification.
	Register(ctx context.Context, name, email, password string) (*domain.AuthResult, error)
}

// RegistrationStore holds in-flight signup attempts between the request and
// verify steps. Entries expire on their own.
type RegistrationStore interface {
	Put(ctx context.Context, attempt *domain.RegistrationAttempt) error
	// Get returns domain.ErrNoPendingRegistration when no live attempt
	// exists for the email.
	Get(ctx context.Context, email string) (*domain.RegistrationAttempt, error)
	Delete(ctx context.Context, email string) error
}

// AuthService implements login and the two-step signup flow. Every returned
// session is guaranteed to carry a CLIENTE identity.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	RequestRegistration(ctx context.Context, name, email, password string) (string, error)
	VerifyCode(ctx context.Context, email, code string) (*domain.Session, error)
	RegisterLegacy(ctx context.Context, name, email, password string) (*domain.Session, error)
}
