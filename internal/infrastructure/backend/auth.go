package backend

import (
	"context"
	"net/http"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// AuthRepository implements ports.AuthRepository over the backend's
// /auth endpoints. All calls are anonymous (no bearer token yet).
type AuthRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerPayload struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type verifyPayload struct {
	Email string `json:"email"`
	Code  string `json:"codigo"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (r *AuthRepository) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	var res domain.AuthResult
	err := r.client.do(ctx, "auth.login", http.MethodPost, "/auth/login", "",
		loginPayload{Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *AuthRepository) RequestRegistration(ctx context.Context, name, email, password string) (string, error) {
	var res messageResponse
	err := r.client.do(ctx, "auth.request_registration", http.MethodPost, "/auth/solicitar-registro", "",
		registerPayload{Name: name, Email: email, Password: password}, &res)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (r *AuthRepository) VerifyCode(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	var res domain.AuthResult
	err := r.client.do(ctx, "auth.verify_code", http.MethodPost, "/auth/verificar-codigo", "",
		verifyPayload{Email: email, Code: code}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *AuthRepository) Register(ctx context.Context, name, email, password string) (*domain.AuthResult, error) {
	var res domain.AuthResult
	err := r.client.do(ctx, "auth.register_legacy", http.MethodPost, "/auth/register", "",
		registerPayload{Name: name, Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
