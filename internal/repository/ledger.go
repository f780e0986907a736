package repository

import (
	"context"

	"github.com/oakfield/trackside/internal/domain"
)

// Ledger defines the interface for account and transaction persistence
type Ledger interface {
	GetAccount(ctx context.Context, userID int64) (*domain.Account, error)
	CreateAccount(ctx context.Context, userID int64, openingBalance int64) error
	ListTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error)
	GetTransactionByCorrelationID(ctx context.Context, correlationID string) (*domain.Transaction, error)

	// BeginLedgerTx starts a transaction for atomic balance changes
	BeginLedgerTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx performs balance changes under a row lock
type LedgerTx interface {
	Tx

	GetAccountForUpdate(ctx context.Context, userID int64) (*domain.Account, error)

	// ApplyTransaction inserts a ledger entry and moves the account balance.
	// Returns false without error when the correlation id was already applied.
	ApplyTransaction(ctx context.Context, txn *domain.Transaction) (bool, error)
}
