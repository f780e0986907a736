package repository

import (
	"context"

	"github.com/oakfield/trackside/internal/domain"
)

// Wager defines the interface for wager persistence
type Wager interface {
	GetWager(ctx context.Context, wagerID int64) (*domain.Wager, error)
	ListWagersByRace(ctx context.Context, raceID int64) ([]domain.Wager, error)
	ListWagersByUser(ctx context.Context, userID int64, limit int) ([]domain.Wager, error)

	// ListSettledWagersByUser returns a user's settled wagers ordered by
	// settlement time, oldest first. Used to rebuild stats from history.
	ListSettledWagersByUser(ctx context.Context, userID int64) ([]domain.Wager, error)

	// BeginWagerTx starts a transaction for atomic wager placement
	BeginWagerTx(ctx context.Context) (WagerTx, error)
}

// WagerTx wraps wager placement in a single atomic transaction: the account
// is locked, the stake debited and the wager inserted together.
type WagerTx interface {
	Tx

	GetAccountForUpdate(ctx context.Context, userID int64) (*domain.Account, error)
	InsertWager(ctx context.Context, wager *domain.Wager) (int64, error)

	// ApplyTransaction inserts a ledger entry and moves the account balance.
	// It returns false without error when the correlation id was already
	// applied, making the operation idempotent.
	ApplyTransaction(ctx context.Context, txn *domain.Transaction) (bool, error)
}
