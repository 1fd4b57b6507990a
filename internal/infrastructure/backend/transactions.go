package backend

import (
	"context"
	"net/http"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// TransactionRepository implements ports.TransactionRepository over
// GET /transacciones/mis/{userId}.
type TransactionRepository struct {
	client *Client
}

func NewTransactionRepository(client *Client) *TransactionRepository {
	return &TransactionRepository{client: client}
}

func (r *TransactionRepository) FindByUser(ctx context.Context, token, userID string) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := r.client.do(ctx, "transactions.list", http.MethodGet, "/transacciones/mis/"+userID, token, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
