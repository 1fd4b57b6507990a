package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/api/metrics"
	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/core/ports"
)

// AuthService implements login and the two-step signup flow against the
// storefront backend, with the in-flight attempt state held in the
// registration store.
type AuthService struct {
	repo     ports.AuthRepository
	attempts ports.RegistrationStore
	log      zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, attempts ports.RegistrationStore, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, attempts: attempts, log: log}
}

// Login exchanges credentials for a session. Only CLIENTE identities are
// accepted; any other role is rejected without a session, mirroring the
// backend's own authorization as defense-in-depth.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	res, err := s.repo.Login(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return nil, asAuthFailure(err)
	}

	if res.Role != domain.RoleClient {
		metrics.LoginsTotal.WithLabelValues("role_rejected").Inc()
		s.log.Warn().Str("role", string(res.Role)).Str("email", email).Msg("non-client login rejected")
		return nil, domain.ErrRoleNotAllowed
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", res.ID).Msg("client logged in")
	return res.Session(), nil
}

// RequestRegistration starts the two-step flow: forwards the details to the
// backend and, once the backend has mailed a code, records an awaiting_code
// attempt so the verify step has something to transition. Failure leaves no
// state behind.
func (s *AuthService) RequestRegistration(ctx context.Context, name, email, password string) (string, error) {
	msg, err := s.repo.RequestRegistration(ctx, name, email, password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("request", "failure").Inc()
		return "", asAuthFailure(err)
	}

	attempt := &domain.RegistrationAttempt{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		State:       domain.RegistrationAwaitingCode,
		RequestedAt: time.Now().UTC(),
	}
	if err := s.attempts.Put(ctx, attempt); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("request", "failure").Inc()
		return "", err
	}

	metrics.RegistrationsTotal.WithLabelValues("request", "success").Inc()
	s.log.Info().Str("attempt_id", attempt.ID).Str("email", email).Msg("registration code requested")
	return msg, nil
}

// VerifyCode completes the flow. A wrong or expired code keeps the attempt
// alive so the same email can retry; success consumes the attempt and
// yields a session.
func (s *AuthService) VerifyCode(ctx context.Context, email, code string) (*domain.Session, error) {
	attempt, err := s.attempts.Get(ctx, email)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("verify", "failure").Inc()
		return nil, err
	}
	if !attempt.State.CanTransitionTo(domain.RegistrationVerified) {
		metrics.RegistrationsTotal.WithLabelValues("verify", "failure").Inc()
		return nil, domain.ErrNoPendingRegistration
	}

	res, err := s.repo.VerifyCode(ctx, email, code)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("verify", "failure").Inc()
		return nil, asAuthFailure(err)
	}

	if delErr := s.attempts.Delete(ctx, email); delErr != nil {
		// The attempt will age out on its own; not worth failing a
		// successful verification over.
		s.log.Warn().Err(delErr).Str("email", email).Msg("failed to delete verified attempt")
	}

	if res.Role != domain.RoleClient {
		metrics.RegistrationsTotal.WithLabelValues("verify", "failure").Inc()
		return nil, domain.ErrRoleNotAllowed
	}

	metrics.RegistrationsTotal.WithLabelValues("verify", "success").Inc()
	s.log.Info().Str("user_id", res.ID).Msg("registration verified")
	return res.Session(), nil
}

// RegisterLegacy is the single-step flow for backends predating email
// verification: register and get a session in one call.
func (s *AuthService) RegisterLegacy(ctx context.Context, name, email, password string) (*domain.Session, error) {
	res, err := s.repo.Register(ctx, name, email, password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("legacy", "failure").Inc()
		return nil, asAuthFailure(err)
	}
	if res.Role != domain.RoleClient {
		metrics.RegistrationsTotal.WithLabelValues("legacy", "failure").Inc()
		return nil, domain.ErrRoleNotAllowed
	}

	metrics.RegistrationsTotal.WithLabelValues("legacy", "success").Inc()
	return res.Session(), nil
}

// asAuthFailure reinterprets the client's blanket 401 normalization for the
// anonymous auth endpoints, where a 401 means bad credentials rather than a
// dead session.
func asAuthFailure(err error) error {
	if errors.Is(err, domain.ErrSessionExpired) {
		return domain.ErrInvalidCredentials
	}
	return err
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}
