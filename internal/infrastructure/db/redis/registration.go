package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// RegistrationStore keeps in-flight signup attempts in Redis, one key per
// email. Key format: signup:<lowercased email>. Entries expire after the
// configured TTL; expiry is the abandoned terminal state.
type RegistrationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRegistrationStore creates a RegistrationStore with the given TTL.
func NewRegistrationStore(client *redis.Client, ttl time.Duration) *RegistrationStore {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &RegistrationStore{client: client, ttl: ttl}
}

func (s *RegistrationStore) Put(ctx context.Context, attempt *domain.RegistrationAttempt) error {
	raw, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("registration store: encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(attempt.Email), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("registration store: put: %w", err)
	}
	return nil
}

func (s *RegistrationStore) Get(ctx context.Context, email string) (*domain.RegistrationAttempt, error) {
	raw, err := s.client.Get(ctx, s.key(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoPendingRegistration
	}
	if err != nil {
		return nil, fmt.Errorf("registration store: get: %w", err)
	}

	var attempt domain.RegistrationAttempt
	if err := json.Unmarshal(raw, &attempt); err != nil {
		// Undecodable state is as good as no state; drop it.
		_ = s.client.Del(ctx, s.key(email)).Err()
		return nil, domain.ErrNoPendingRegistration
	}
	return &attempt, nil
}

func (s *RegistrationStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, s.key(email)).Err(); err != nil {
		return fmt.Errorf("registration store: delete: %w", err)
	}
	return nil
}

func (s *RegistrationStore) key(email string) string {
	return "signup:" + strings.ToLower(email)
}
