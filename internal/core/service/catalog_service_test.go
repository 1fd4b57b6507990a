package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

type stubServiceRepo struct {
	calls int
	out   []domain.Service
	err   error
}

func (r *stubServiceRepo) FindAll(_ context.Context, _ string) ([]domain.Service, error) {
	r.calls++
	return r.out, r.err
}

type stubOrderRepo struct {
	createFn func(ctx context.Context, token, userID, serviceID string) (*domain.Order, error)
	listFn   func(ctx context.Context, token, userID string) ([]domain.Order, error)
}

func (r *stubOrderRepo) Create(ctx context.Context, token, userID, serviceID string) (*domain.Order, error) {
	return r.createFn(ctx, token, userID, serviceID)
}

func (r *stubOrderRepo) FindByUser(ctx context.Context, token, userID string) ([]domain.Order, error) {
	return r.listFn(ctx, token, userID)
}

type memCatalogCache struct {
	services []domain.Service
	full     bool
	sets     int
}

func (c *memCatalogCache) Get(context.Context) ([]domain.Service, bool) {
	return c.services, c.full
}

func (c *memCatalogCache) Set(_ context.Context, services []domain.Service) {
	c.services = services
	c.full = true
	c.sets++
}

func testSession() *domain.Session {
	return &domain.Session{
		Identity: domain.Identity{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: domain.RoleClient},
		Token:    "tok",
	}
}

func TestCatalogService_List_CacheMissFillsCache(t *testing.T) {
	repo := &stubServiceRepo{out: []domain.Service{{ID: "svc1", Name: "Streaming VIP", Active: true}}}
	cache := &memCatalogCache{}
	svc := NewCatalogService(repo, &stubOrderRepo{}, cache, zerolog.Nop())

	got, err := svc.List(context.Background(), testSession())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "svc1" {
		t.Fatalf("unexpected catalog: %+v", got)
	}
	if repo.calls != 1 || cache.sets != 1 {
		t.Fatalf("expected one fetch and one cache fill, got %d/%d", repo.calls, cache.sets)
	}

	// Second call is served from cache.
	if _, err := svc.List(context.Background(), testSession()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("cache hit should not hit the backend, got %d calls", repo.calls)
	}
}

func TestCatalogService_List_BackendErrorPropagates(t *testing.T) {
	repo := &stubServiceRepo{err: domain.ErrBackendUnavailable}
	svc := NewCatalogService(repo, &stubOrderRepo{}, &memCatalogCache{}, zerolog.Nop())

	if _, err := svc.List(context.Background(), testSession()); !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestCatalogService_Purchase(t *testing.T) {
	orders := &stubOrderRepo{
		createFn: func(_ context.Context, token, userID, serviceID string) (*domain.Order, error) {
			if token != "tok" || userID != "u1" || serviceID != "svc1" {
				t.Fatalf("unexpected args: %s %s %s", token, userID, serviceID)
			}
			return &domain.Order{ID: "o1", UserID: userID, ServiceID: serviceID, Status: domain.OrderPending}, nil
		},
	}
	svc := NewCatalogService(&stubServiceRepo{}, orders, &memCatalogCache{}, zerolog.Nop())

	order, err := svc.Purchase(context.Background(), testSession(), "svc1")
	if err != nil {
		t.Fatalf("Purchase error: %v", err)
	}
	if order.ID != "o1" || order.Status != domain.OrderPending {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestCatalogService_Purchase_BackendRejection(t *testing.T) {
	orders := &stubOrderRepo{
		createFn: func(context.Context, string, string, string) (*domain.Order, error) {
			return nil, &domain.BackendError{StatusCode: 400, Message: "monedas insuficientes"}
		},
	}
	svc := NewCatalogService(&stubServiceRepo{}, orders, &memCatalogCache{}, zerolog.Nop())

	_, err := svc.Purchase(context.Background(), testSession(), "svc1")
	var be *domain.BackendError
	if !errors.As(err, &be) || be.Message != "monedas insuficientes" {
		t.Fatalf("expected backend rejection message, got %v", err)
	}
}
