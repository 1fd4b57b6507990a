package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/core/domain"
	"github.com/sistemasvip/client-portal/internal/core/filter"
	"github.com/sistemasvip/client-portal/internal/core/ports"
)

// TransactionService serves a client's own ledger with local faceting.
type TransactionService struct {
	repo ports.TransactionRepository
	log  zerolog.Logger
}

func NewTransactionService(repo ports.TransactionRepository, log zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, log: log}
}

func (s *TransactionService) ListMine(ctx context.Context, sess *domain.Session, facets filter.TransactionFacets) ([]domain.Transaction, error) {
	txs, err := s.repo.FindByUser(ctx, sess.Token, sess.ID)
	if err != nil {
		return nil, err
	}
	return filter.Transactions(txs, facets), nil
}
