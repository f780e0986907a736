package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/repository"
)

const transactionColumns = `id, user_id, type, amount, balance_before, balance_after, reason, correlation_id, created_at`

type ledgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new PostgreSQL ledger repository
func NewLedgerRepository(db *pgxpool.Pool) repository.Ledger {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	query := `SELECT user_id, balance, updated_at FROM accounts WHERE user_id = $1`

	var account domain.Account
	err := r.db.QueryRow(ctx, query, userID).Scan(&account.UserID, &account.Balance, &account.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	return &account, nil
}

func (r *ledgerRepository) CreateAccount(ctx context.Context, userID int64, openingBalance int64) error {
	query := `
		INSERT INTO accounts (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, userID, openingBalance); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateAccount, err)
	}
	return nil
}

func (r *ledgerRepository) ListTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM account_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTransactions, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(
			&txn.ID, &txn.UserID, &txn.Type, &txn.Amount, &txn.BalanceBefore,
			&txn.BalanceAfter, &txn.Reason, &txn.CorrelationID, &txn.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTransactions, err)
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

func (r *ledgerRepository) GetTransactionByCorrelationID(ctx context.Context, correlationID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM account_transactions WHERE correlation_id = $1`

	var txn domain.Transaction
	err := r.db.QueryRow(ctx, query, correlationID).Scan(
		&txn.ID, &txn.UserID, &txn.Type, &txn.Amount, &txn.BalanceBefore,
		&txn.BalanceAfter, &txn.Reason, &txn.CorrelationID, &txn.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTransaction, err)
	}
	return &txn, nil
}

func (r *ledgerRepository) BeginLedgerTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &ledgerTx{tx: tx}, nil
}

// ledgerTx implements repository.LedgerTx on a pgx transaction
type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *ledgerTx) GetAccountForUpdate(ctx context.Context, userID int64) (*domain.Account, error) {
	query := `SELECT user_id, balance, updated_at FROM accounts WHERE user_id = $1 FOR UPDATE`

	var account domain.Account
	err := t.tx.QueryRow(ctx, query, userID).Scan(&account.UserID, &account.Balance, &account.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockAccount, err)
	}
	return &account, nil
}

func (t *ledgerTx) ApplyTransaction(ctx context.Context, txn *domain.Transaction) (bool, error) {
	return applyTransaction(ctx, t.tx, txn)
}
