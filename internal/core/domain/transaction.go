package domain

import "time"

// TransactionType classifies a coin ledger movement. The sign of the amount
// follows the type (top-ups positive, spends negative).
type TransactionType string

const (
	TransactionTopUp  TransactionType = "RECARGA"
	TransactionSpend  TransactionType = "GASTO"
	TransactionRefund TransactionType = "REEMBOLSO"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTopUp, TransactionSpend, TransactionRefund:
		return true
	}
	return false
}

// Transaction is one append-only coin ledger entry, owned by the backend.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"usuarioId"`
	UserName    string          `json:"usuarioNombre"`
	Type        TransactionType `json:"tipo"`
	Amount      int             `json:"cantidad"`
	Description string          `json:"descripcion"`
	Timestamp   time.Time       `json:"fecha"`
}
