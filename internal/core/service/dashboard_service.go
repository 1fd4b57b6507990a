package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/core/ports"
)

// latestOrdersOnDashboard is how many recent orders the landing page shows.
const latestOrdersOnDashboard = 3

// DashboardService aggregates the landing page's independent fetches.
type DashboardService struct {
	users  ports.UserService
	orders ports.OrderService
	log    zerolog.Logger
}

func NewDashboardService(users ports.UserService, orders ports.OrderService, log zerolog.Logger) *DashboardService {
	return &DashboardService{users: users, orders: orders, log: log}
}

// Summary fetches the fresh user record and the newest orders in parallel
// and awaits them jointly: the first failure cancels the sibling fetch and
// the whole summary fails, never a partial one.
func (s *DashboardService) Summary(ctx context.Context, sess *domain.Session) (*ports.DashboardSummary, error) {
	var summary ports.DashboardSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := s.users.Profile(gctx, sess, sess.ID)
		if err != nil {
			return err
		}
		summary.User = user
		return nil
	})
	g.Go(func() error {
		orders, err := s.orders.LatestMine(gctx, sess, latestOrdersOnDashboard)
		if err != nil {
			return err
		}
		summary.LatestOrders = orders
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}
