package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is an authentication failure on a form: bad
	// email/password or a wrong/expired verification code.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRoleNotAllowed marks an identity whose role this application must
	// never accept (anything other than CLIENTE).
	ErrRoleNotAllowed = errors.New("role not allowed in client portal")

	// ErrSessionExpired is the normalized form of a backend 401: the bearer
	// credential is no longer accepted and the session must be torn down.
	ErrSessionExpired = errors.New("session expired")

	// ErrMalformedSession marks persisted session state that cannot be
	// decoded. Treated as no session, with best-effort cookie cleanup.
	ErrMalformedSession = errors.New("malformed session state")

	// ErrForbidden is a valid session attempting an operation on resources
	// it does not own.
	ErrForbidden = errors.New("access forbidden")

	// ErrNoPendingRegistration means a verification code arrived for an
	// email with no live signup attempt (never started, or expired).
	ErrNoPendingRegistration = errors.New("no pending registration for email")

	// ErrBackendUnavailable covers transport-level failures reaching the
	// storefront backend. Surfaced as a generic "could not load" message.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// BackendError preserves a rejection the backend explained itself, so forms
// can show the backend's own message inline.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request (status %d)", e.StatusCode)
	}
	return e.Message
}
