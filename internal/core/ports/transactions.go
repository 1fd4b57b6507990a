package ports

import (
	"context"

	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/core/filter"
)

// TransactionRepository is the outbound ledger surface of the backend.
type TransactionRepository interface {
	FindByUser(ctx context.Context, token, userID string) ([]domain.Transaction, error)
}

// TransactionService serves a client's own ledger, sorted and faceted.
type TransactionService interface {
	ListMine(ctx context.Context, sess *domain.Session, facets filter.TransactionFacets) ([]domain.Transaction, error)
}
